// Package canvas provides a fixed-size raster drawing surface for notebook
// pages.
package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/akeil/inkbook/internal/imaging"
	"github.com/akeil/inkbook/internal/logging"
)

// Point is a position on the canvas in pixels.
type Point struct {
	X float64
	Y float64
}

// Canvas is an in-memory raster image of a single page.
//
// A canvas remembers the PNG data it was loaded from. As long as nothing is
// drawn, Snapshot returns that data unchanged instead of re-encoding.
type Canvas struct {
	mx    sync.Mutex
	img   *image.RGBA
	src   []byte
	dirty bool
}

// New creates a blank, transparent canvas with the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Bounds returns the size of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Load replaces the canvas content with the given PNG image.
//
// Empty data loads a blank page.
// Images with a different size are scaled to the canvas size.
func (c *Canvas) Load(data []byte) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if len(data) == 0 {
		c.reset()
		c.src = []byte{}
		return nil
	}

	i, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("cannot decode page image: %v", err)
	}

	b := c.img.Bounds()
	if i.Bounds().Dx() != b.Dx() || i.Bounds().Dy() != b.Dy() {
		logging.Debug("Scale page image from %v to %v", i.Bounds().Size(), b.Size())
	}
	c.img = imaging.Fit(i, b)
	c.src = append([]byte{}, data...)
	c.dirty = false

	return nil
}

// Clear shows a blank page. The canvas is not considered modified.
func (c *Canvas) Clear() {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.reset()
}

// Erase wipes the page content. Unlike Clear, this counts as a modification
// and the blank page is written on the next save.
func (c *Canvas) Erase() {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.reset()
	c.dirty = true
}

// Modified tells if anything was drawn since the last Load or Clear.
func (c *Canvas) Modified() bool {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.dirty
}

// Stroke draws a free-hand line through the given points.
// A single point is drawn as a dot.
func (c *Canvas) Stroke(points []Point, col color.Color, width float64) {
	if len(points) == 0 {
		return
	}

	c.mx.Lock()
	defer c.mx.Unlock()

	gc := draw2dimg.NewGraphicContext(c.img)
	gc.SetLineWidth(width)
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)

	if len(points) == 1 {
		gc.SetFillColor(col)
		draw2dkit.Circle(gc, points[0].X, points[0].Y, width/2)
		gc.Fill()
	} else {
		gc.SetStrokeColor(col)
		gc.BeginPath()
		gc.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			gc.LineTo(p.X, p.Y)
		}
		gc.Stroke()
	}

	c.dirty = true
}

// Snapshot returns the canvas content as PNG data.
func (c *Canvas) Snapshot() ([]byte, error) {
	c.mx.Lock()
	defer c.mx.Unlock()

	if !c.dirty {
		return append([]byte{}, c.src...), nil
	}

	var buf bytes.Buffer
	err := png.Encode(&buf, c.img)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Image returns a copy of the current canvas content.
func (c *Canvas) Image() *image.RGBA {
	c.mx.Lock()
	defer c.mx.Unlock()
	return imaging.Fit(c.img, c.img.Bounds())
}

func (c *Canvas) reset() {
	imaging.Fill(c.img, color.Transparent)
	c.src = nil
	c.dirty = false
}
