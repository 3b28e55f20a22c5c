package main

import (
	"fmt"

	"github.com/akeil/inkbook"
	"github.com/akeil/inkbook/pkg/canvas"
)

func doCreate(s settings, name string) error {
	reg := setupRegistry(s)

	dir, err := reg.Create(name)
	if err != nil {
		if inkbook.IsAlreadyExists(err) {
			fmt.Printf("%v Notebook %q already exists\n", crossmark, name)
		}
		return err
	}

	fmt.Printf("%v Created notebook %q in %q\n", checkmark, name, dir)
	return nil
}

func doAddPage(s settings, name string) error {
	reg := setupRegistry(s)

	c := canvas.New(s.cfg.PageWidth, s.cfg.PageHeight)
	session := inkbook.NewSession(reg.Store(), c)
	session.VersionCheck = s.cfg.StrictVersions

	err := session.Open(reg.Dir(name))
	if err != nil {
		if inkbook.IsNotFound(err) {
			fmt.Printf("%v No notebook named %q\n", crossmark, name)
		}
		return err
	}

	err = session.AddPage()
	if err != nil {
		fmt.Printf("%v Failed to add page to %q: %v\n", crossmark, name, err)
		return err
	}

	err = session.Close()
	if err != nil {
		return err
	}

	fmt.Printf("%v Notebook %q now has %d pages\n", checkmark, name, session.PageCount())
	return nil
}
