package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/inkbook"
	"github.com/akeil/inkbook/internal/config"
	"github.com/akeil/inkbook/pkg/fs"
)

const (
	checkmark = "\u2713"
	crossmark = "\u2717"
	ellipsis  = "\u2026"
)

type settings struct {
	cfg *config.Config
}

func main() {
	app := kingpin.New("inkbook", "Handwritten notebooks")
	app.HelpFlag.Short('h')

	var (
		configPath = app.Flag("config", "Path to the config file").Short('c').Default(config.DefaultPath()).String()
		rootDir    = app.Flag("root", "Directory that holds the notebooks").Short('r').String()
		logLevel   = app.Flag("log-level", "Log level (debug, info, warning, error)").Short('l').String()
	)

	ls := app.Command("ls", "List notebooks").Default()
	var (
		format = ls.Flag("format", "Output format").Short('f').Default("list").Enum("list", "plain")
		match  = ls.Arg("match", "Name must match this").String()
	)

	create := app.Command("create", "Create a new notebook")
	name := create.Arg("name", "Name of the notebook").Required().String()

	addPage := app.Command("add-page", "Append a blank page to a notebook")
	addName := addPage.Arg("name", "Name of the notebook").Required().String()

	export := app.Command("export", "Export one or more notebooks in PDF format")
	var (
		matchExport = export.Arg("match", "Name must match this").String()
		outDir      = export.Flag("output", "Output directory").Short('o').Default(".").String()
	)

	serve := app.Command("serve", "Run the command server")
	var (
		listen = serve.Flag("listen", "Listen address").String()
		strict = serve.Flag("strict", "Reject saves from stale sessions").Bool()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	s, err := loadSettings(*configPath, *rootDir, *logLevel)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "ls":
		err = doLs(s, *format, *match)
	case "create":
		err = doCreate(s, *name)
	case "add-page":
		err = doAddPage(s, *addName)
	case "export":
		err = doExport(s, *matchExport, *outDir)
	case "serve":
		if *listen != "" {
			s.cfg.Listen = *listen
		}
		if *strict {
			s.cfg.StrictVersions = true
		}
		err = doServe(s)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

// loadSettings reads the config file and applies command line overrides.
func loadSettings(path, rootDir, logLevel string) (settings, error) {
	// log config problems at warning level, before the configured level is known
	inkbook.SetLogLevel("warning")

	cfg, err := config.LoadOptional(path)
	if err != nil {
		return settings{}, err
	}

	if rootDir != "" {
		cfg.RootDir = rootDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	err = cfg.Validate()
	if err != nil {
		return settings{}, err
	}

	inkbook.SetLogLevel(cfg.LogLevel)
	return settings{cfg: cfg}, nil
}

func setupRegistry(s settings) *fs.Registry {
	return fs.NewRegistry(s.cfg.RootDir, fs.NewStore())
}
