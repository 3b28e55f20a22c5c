package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{255, 0, 0, 255}

func TestNewCanvasIsBlank(t *testing.T) {
	c := New(80, 60)
	assert.Equal(t, image.Rect(0, 0, 80, 60), c.Bounds())
	assert.False(t, c.Modified())

	data, err := c.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, data, "blank canvas should not produce page data")
}

func TestStrokeAndSnapshot(t *testing.T) {
	c := New(80, 60)
	c.Stroke([]Point{{X: 10, Y: 30}, {X: 70, Y: 30}}, red, 4)
	assert.True(t, c.Modified())

	data, err := c.Snapshot()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, c.Bounds(), img.Bounds())

	_, _, _, a := img.At(40, 30).RGBA()
	assert.NotZero(t, a, "stroke should be painted")
	_, _, _, a = img.At(40, 5).RGBA()
	assert.Zero(t, a, "background should stay transparent")
}

func TestDot(t *testing.T) {
	c := New(20, 20)
	c.Stroke([]Point{{X: 10, Y: 10}}, red, 6)

	_, _, _, a := c.Image().At(10, 10).RGBA()
	assert.NotZero(t, a)
}

func TestLoadKeepsBytes(t *testing.T) {
	src := New(80, 60)
	src.Stroke([]Point{{X: 0, Y: 0}, {X: 80, Y: 60}}, red, 2)
	data, err := src.Snapshot()
	require.NoError(t, err)

	c := New(80, 60)
	err = c.Load(data)
	require.NoError(t, err)
	assert.False(t, c.Modified())

	again, err := c.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, data, again, "untouched page must not be re-encoded")

	c.Stroke([]Point{{X: 0, Y: 60}, {X: 80, Y: 0}}, red, 2)
	changed, err := c.Snapshot()
	require.NoError(t, err)
	assert.NotEqual(t, data, changed)
}

func TestLoadScales(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for x := 0; x < 40; x++ {
		for y := 0; y < 30; y++ {
			small.Set(x, y, red)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, small))

	c := New(80, 60)
	require.NoError(t, c.Load(buf.Bytes()))
	assert.Equal(t, image.Rect(0, 0, 80, 60), c.Image().Bounds())

	r, _, _, a := c.Image().At(60, 45).RGBA()
	assert.NotZero(t, a)
	assert.NotZero(t, r)
}

func TestLoadEmptyAndInvalid(t *testing.T) {
	c := New(10, 10)
	c.Stroke([]Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, red, 2)

	require.NoError(t, c.Load([]byte{}))
	assert.False(t, c.Modified())
	data, err := c.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, data)

	err = c.Load([]byte("not a png"))
	assert.Error(t, err)
}

func TestEraseIsModification(t *testing.T) {
	c := New(10, 10)
	c.Erase()
	assert.True(t, c.Modified())

	data, err := c.Snapshot()
	require.NoError(t, err)
	assert.NotEmpty(t, data, "an erased page is written as a blank image")

	c.Clear()
	assert.False(t, c.Modified())
}
