package windows

import (
	"image/color"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/inkbook"
	"github.com/akeil/inkbook/pkg/canvas"
	"github.com/akeil/inkbook/pkg/fs"
)

func setup(t *testing.T) (*Manager, *fs.Registry) {
	store := fs.NewStore()
	reg := fs.NewRegistry(filepath.Join(t.TempDir(), "notebooks"), store)
	return NewManager(store, Options{Width: 80, Height: 60}), reg
}

func TestShowHome(t *testing.T) {
	m, _ := setup(t)

	w, created := m.ShowHome()
	assert.True(t, created)
	assert.Equal(t, Home, w.Kind)
	assert.Nil(t, w.Session)

	again, created := m.ShowHome()
	assert.False(t, created)
	assert.Equal(t, w.ID, again.ID)

	require.NoError(t, m.Close(w.ID))
	assert.Empty(t, m.Windows())

	other, created := m.ShowHome()
	assert.True(t, created)
	assert.NotEqual(t, w.ID, other.ID)
}

func TestOpenAndCloseNotebook(t *testing.T) {
	m, reg := setup(t)
	dir, err := reg.Create("Trip")
	require.NoError(t, err)

	w, err := m.OpenNotebook(dir)
	require.NoError(t, err)
	assert.Equal(t, Notebook, w.Kind)
	assert.Equal(t, dir, w.Dir)
	require.NotNil(t, w.Session)
	assert.True(t, w.Session.IsOpen())
	assert.Equal(t, 80, w.Canvas.Bounds().Dx())

	got, err := m.Get(w.ID)
	require.NoError(t, err)
	assert.Same(t, w, got)

	w.Canvas.Stroke([]canvas.Point{{X: 0, Y: 0}, {X: 80, Y: 60}}, color.Black, 3)
	require.NoError(t, m.Close(w.ID))
	assert.False(t, w.Session.IsOpen())

	_, err = m.Get(w.ID)
	assert.True(t, inkbook.IsNotFound(err))

	// closing saved the drawing
	data, err := fs.NewStore().ReadPage(dir, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestOpenMissingNotebook(t *testing.T) {
	m, reg := setup(t)
	_, err := m.OpenNotebook(reg.Dir("nope"))
	assert.True(t, inkbook.IsNotFound(err))
	assert.Empty(t, m.Windows())
}

func TestCloseUnknown(t *testing.T) {
	m, _ := setup(t)
	err := m.Close("nope")
	assert.True(t, inkbook.IsNotFound(err))
}

func TestWindowsOrder(t *testing.T) {
	m, reg := setup(t)
	a, err := reg.Create("A")
	require.NoError(t, err)
	b, err := reg.Create("B")
	require.NoError(t, err)

	home, _ := m.ShowHome()
	wa, err := m.OpenNotebook(a)
	require.NoError(t, err)
	wb, err := m.OpenNotebook(b)
	require.NoError(t, err)

	ids := func() []string {
		l := make([]string, 0)
		for _, w := range m.Windows() {
			l = append(l, w.ID)
		}
		return l
	}
	assert.Equal(t, []string{home.ID, wa.ID, wb.ID}, ids())

	require.NoError(t, m.Close(wa.ID))
	assert.Equal(t, []string{home.ID, wb.ID}, ids())

	require.NoError(t, m.CloseAll())
	assert.Empty(t, m.Windows())
}

func TestConcurrentOpen(t *testing.T) {
	m, reg := setup(t)
	dir, err := reg.Create("Shared")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.OpenNotebook(dir)
			assert.NoError(t, err)
			m.ShowHome()
		}()
	}
	wg.Wait()

	assert.Len(t, m.Windows(), 9)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "home", Home.String())
	assert.Equal(t, "notebook", Notebook.String())
}
