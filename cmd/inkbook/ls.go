package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akeil/inkbook"
	"github.com/akeil/inkbook/pkg/fs"
)

func doLs(s settings, format, match string) error {
	reg := setupRegistry(s)

	entries, err := reg.List()
	if err != nil {
		return err
	}

	entries = fs.Filter(entries, match)
	if len(entries) == 0 {
		fmt.Println("Found no matching notebooks.")
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	switch format {
	case "plain":
		for _, e := range entries {
			fmt.Println(e.Name)
		}
	case "list":
		fmt.Println("Notebooks")
		fmt.Println("---------")
		showList(reg.Store(), entries)
	default:
		return fmt.Errorf("unsupported format, choose one of 'list', 'plain'")
	}

	return nil
}

func showList(repo inkbook.Repository, entries []inkbook.Entry) {
	for _, e := range entries {
		m, err := repo.ReadMetadata(e.Dir)
		if err != nil {
			fmt.Printf("%v %v (%v)\n", crossmark, e.Name, err)
			continue
		}

		unit := "pages"
		if m.Pages == 1 {
			unit = "page"
		}
		fmt.Printf("%4d %-5s | %v\n", m.Pages, unit, e.Name)
	}
}
