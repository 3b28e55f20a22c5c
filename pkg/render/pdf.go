package render

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/akeil/inkbook"
	"github.com/akeil/inkbook/internal/logging"
)

func renderPDF(c *Context, w io.Writer, title string, pages []inkbook.PageSource) error {
	logging.Debug("Render PDF for notebook %q with %d pages", title, len(pages))
	pdf := setupPDF(c.opts, title)

	for _, p := range pages {
		err := renderPage(c, pdf, p)
		if err != nil {
			return err
		}
	}

	return pdf.Output(w)
}

func setupPDF(opts Options, title string) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "mm"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, opts.PageSize, fontDir)

	pdf.SetMargins(opts.Margin, opts.Margin, opts.Margin)
	// the footer is placed inside the bottom margin
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer("inkbook", true)
	pdf.SetTitle(title, true)

	if opts.Footer {
		pdf.AliasNbPages("{totalPages}")
		pdf.SetFont("helvetica", "", 8)
		pdf.SetTextColor(127, 127, 127)
		pdf.SetFooterFunc(func() {
			pdf.SetY(-(opts.Margin + 5))
			pdf.SetX(opts.Margin)
			pdf.CellFormat(0, 5, fmt.Sprintf("%d / {totalPages}  |  %v", pdf.PageNo(), title),
				"", 0, "L", false, 0, "")
		})
	}

	return pdf
}

// renderPage adds one document page with the page image.
// Pages without image data are left blank.
func renderPage(c *Context, pdf *gofpdf.Fpdf, p inkbook.PageSource) error {
	pdf.AddPage()

	data, err := pageData(p)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		logging.Info("Page %d is blank", p.Index)
		return nil
	}

	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if !pdf.Ok() {
		return fmt.Errorf("cannot add image for page %d: %v", p.Index, pdf.Error())
	}

	// The image is scaled to the usable page width,
	// the height follows from the aspect ratio.
	wPage, _ := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()
	w := wPage - left - right

	x := left
	y := top
	h := 0.0
	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, x, y, w, h, flow, opts, link, linkStr)

	return pdf.Error()
}

// pageData returns the in-memory image or reads it from the page path.
// A missing page file is treated as a blank page.
func pageData(p inkbook.PageSource) ([]byte, error) {
	if p.InMemory() {
		return p.Data, nil
	}
	if p.Path == "" {
		return nil, nil
	}

	logging.Debug("Read page %d from %q", p.Index, p.Path)
	data, err := ioutil.ReadFile(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// CountPages reads a PDF document and returns its number of pages.
func CountPages(rs io.ReadSeeker) (int, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(rs, conf)
	if err != nil {
		return 0, fmt.Errorf("pdfcpu read: %w", err)
	}
	return ctx.PageCount, nil
}
