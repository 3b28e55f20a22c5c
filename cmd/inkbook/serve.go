package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/akeil/inkbook/pkg/server"
	"github.com/akeil/inkbook/pkg/windows"
)

func doServe(s settings) error {
	reg := setupRegistry(s)
	wm := windows.NewManager(reg.Store(), windows.Options{
		Width:        s.cfg.PageWidth,
		Height:       s.cfg.PageHeight,
		VersionCheck: s.cfg.StrictVersions,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(reg, wm).ListenAndServe(ctx, s.cfg.Listen)
}
