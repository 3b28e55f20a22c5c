package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/inkbook"
	"github.com/akeil/inkbook/pkg/canvas"
	"github.com/akeil/inkbook/pkg/fs"
	"github.com/akeil/inkbook/pkg/render"
)

func doExport(s settings, match, outDir string) error {
	reg := setupRegistry(s)

	entries, err := reg.List()
	if err != nil {
		return err
	}

	entries = fs.Filter(entries, match)
	if len(entries) == 0 {
		fmt.Printf("No matching notebooks for %q\n", match)
		return nil
	}

	err = os.MkdirAll(outDir, 0755)
	if err != nil {
		return err
	}

	rc := render.DefaultContext()

	var group errgroup.Group
	for _, e := range entries {
		e := e
		group.Go(func() error {
			return exportPdf(s, rc, reg.Store(), e, outDir)
		})
	}
	return group.Wait()
}

func exportPdf(s settings, rc *render.Context, repo inkbook.Repository, e inkbook.Entry, outDir string) error {
	fmt.Printf("%v read %q\n", ellipsis, e.Name)
	session := inkbook.NewSession(repo, canvas.New(s.cfg.PageWidth, s.cfg.PageHeight))
	err := session.Open(e.Dir)
	if err != nil {
		fmt.Printf("%v Failed to read %q: %v\n", crossmark, e.Name, err)
		return err
	}

	path := filepath.Join(outDir, e.Name+".pdf")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("%v render %q\n", ellipsis, e.Name)
	err = session.Export(f, rc.PDF)
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, e.Name, err)
		return err
	}

	err = verify(f, session.PageCount())
	if err != nil {
		fmt.Printf("%v Invalid PDF for %q: %v\n", crossmark, e.Name, err)
		return err
	}

	fmt.Printf("%v notebook %q saved as %q.\n", checkmark, e.Name, path)
	return nil
}

// verify reads back the written document and checks its page count.
func verify(f *os.File, expected int) error {
	_, err := f.Seek(0, 0)
	if err != nil {
		return err
	}

	n, err := render.CountPages(f)
	if err != nil {
		return err
	}
	if n != expected {
		return fmt.Errorf("document has %d pages, expected %d", n, expected)
	}
	return nil
}
