package render

import (
	"io"

	"github.com/akeil/inkbook"
)

// Options control the layout of exported documents.
type Options struct {
	// PageSize is the document page format, e.g. "A4" or "Letter".
	PageSize string
	// Margin is the distance from the page edge to the page image, in mm.
	Margin float64
	// Footer adds page numbers and the notebook name to each page.
	Footer bool
}

// DefaultOptions returns A4 pages with a 10mm margin and a footer.
func DefaultOptions() Options {
	return Options{
		PageSize: "A4",
		Margin:   10,
		Footer:   true,
	}
}

// Context holds parameters for rendering operations.
//
// If multiple notebooks are exported, they can share the same Context.
type Context struct {
	opts Options
}

// NewContext sets up a new rendering context.
func NewContext(opts Options) *Context {
	if opts.PageSize == "" {
		opts.PageSize = "A4"
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	return &Context{opts: opts}
}

// DefaultContext is a rendering context with DefaultOptions.
func DefaultContext() *Context {
	return NewContext(DefaultOptions())
}

// PDF renders the given pages into a PDF document
// and writes the result to w.
//
// It can be passed to Session.Export.
func (c *Context) PDF(w io.Writer, title string, pages []inkbook.PageSource) error {
	return renderPDF(c, w, title, pages)
}
