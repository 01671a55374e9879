package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Pixel holds quantized channel values. They are not clamped: over-bright
// linear colors may exceed 255 and NaN inputs produce whatever the float to
// int conversion yields.
type Pixel struct {
	R, G, B int
}

// Frame is a rendered image with pixels stored in output scan order
// (top row first, left to right)
type Frame struct {
	Width  int
	Height int
	Pixels []Pixel
}

// NewFrame allocates an empty frame
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pixels: make([]Pixel, width*height)}
}

// At returns the pixel at raster position (x, y), y growing downward
func (f *Frame) At(x, y int) Pixel {
	return f.Pixels[y*f.Width+x]
}

// EncodePixel gamma-encodes a linear color with a square root and quantizes
// each channel with floor(255.99 * c)
func EncodePixel(linear core.Vec3) Pixel {
	c := linear.Sqrt()
	return Pixel{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
	}
}

func quantize(c float64) int {
	return int(math.Floor(255.99 * c))
}

// WritePPM writes the frame as a plain-text P3 pixel map
func (f *Frame) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	for _, p := range f.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}

// ToRGBA converts the frame to an 8-bit image. The container cannot hold
// values outside [0,255], so channels are clamped here, unlike the P3 stream.
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: clampChannel(p.R),
				G: clampChannel(p.G),
				B: clampChannel(p.B),
				A: 255,
			})
		}
	}
	return img
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}
