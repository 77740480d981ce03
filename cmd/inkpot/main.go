// Package main is the entry point for the inkpot editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/inkpot-editor/inkpot/internal/app"
	"github.com/inkpot-editor/inkpot/internal/config"
	"github.com/inkpot-editor/inkpot/internal/renderer/backend"
	"github.com/inkpot-editor/inkpot/internal/renderer/rsync"
	"github.com/inkpot-editor/inkpot/internal/storage"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		return 1
	}

	log := app.NewLogger(app.ParseLogLevel(cfg.LogLevel), os.Stderr)
	doc := app.NewDocument(cfg, log)

	var store storage.Store
	if cfg.StorePath != "" {
		fs, err := storage.NewFileStore(cfg.StorePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		store = fs
	} else {
		store = storage.NewMemStore()
	}

	if opts.file != "" {
		content, err := os.ReadFile(opts.file)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		text := string(content)
		// A stored draft takes precedence over the on-disk content.
		if draft, ok := store.Get(opts.file); ok {
			text = draft
		}
		doc.Open(opts.file, languageFor(opts.file), text)
	} else {
		doc.Open("untitled", "plaintext", "")
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	doc.Mirror().Attach(backend.ScrollSurface{Term: term, LineHeight: doc.Metrics().LineHeight}, rsync.MirrorVertical)

	_, rows := term.Size()
	doc.SetViewHeight(float64(rows * doc.Metrics().LineHeight))

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		term.Shutdown()
		os.Exit(1)
	}()

	return eventLoop(doc, term, store, log)
}

// eventLoop runs the terminal session until quit.
func eventLoop(doc *app.Document, term *backend.Terminal, store storage.Store, log *app.Logger) int {
	saver := storage.FileSaver{}
	draw := func() {
		term.Draw(doc.Snapshot(), doc.Cursors(), doc.Matches(), doc.CurrentMatchIndex())
	}
	draw()

	for {
		ev := term.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventResize:
			_, rows := term.Size()
			doc.SetViewHeight(float64(rows * doc.Metrics().LineHeight))
			draw()

		case *tcell.EventKey:
			switch tev.Key() {
			case tcell.KeyCtrlC, tcell.KeyCtrlQ:
				return 0
			case tcell.KeyCtrlZ:
				doc.Undo()
				draw()
				continue
			case tcell.KeyCtrlY:
				doc.Redo()
				draw()
				continue
			case tcell.KeyCtrlS:
				if doc.Name() != "untitled" {
					if err := saver.Save(doc.Name(), doc.Content()); err != nil {
						log.Errorf("save: %v", err)
						continue
					}
					if err := store.Remove(doc.Name()); err != nil {
						log.Warnf("drop draft: %v", err)
					}
				}
				continue
			}

			if mev, ok := backend.ClassifyKey(tev); ok {
				if doc.HandleInput(mev) {
					if err := store.Set(doc.Name(), doc.Content()); err != nil {
						log.Warnf("stash draft: %v", err)
					}
					draw()
				}
			}
		}
	}
}

// languageFor derives the highlight language from the file extension.
func languageFor(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "plaintext"
	}
	return ext
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Inkpot - text editing core demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inkpot [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("inkpot %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		opts.file = args[0]
	}
	return opts
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "inkpot.toml"
	}
	return filepath.Join(dir, "inkpot", "inkpot.toml")
}
