package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vecview/internal/config"
	"vecview/internal/ingest"
	"vecview/internal/logging"
	"vecview/internal/snapshot"
	"vecview/internal/tui"
	"vecview/internal/viewer"
	"vecview/internal/window"
)

func main() {
	var (
		windowMode = flag.Bool("window", false, "open a desktop window instead of the terminal UI")
		exportPath = flag.String("export", "", "render one frame of `file` to this PNG path and exit")
		configPath = flag.String("config", "", "TOML configuration file")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: vecview [flags] [file]\n\nSupported files: %v\n\n", ingest.Extensions)
		flag.PrintDefaults()
	}
	flag.Parse()
	path := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	level, _ := cfg.Level()

	switch {
	case *exportPath != "":
		logger := logging.New(os.Stderr, level)
		if path == "" {
			log.Fatal("-export needs an input file")
		}
		if err := export(cfg, logger, path, *exportPath); err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
	case *windowMode:
		logger := logging.New(os.Stderr, level)
		if err := window.Run(cfg, logger, path); err != nil {
			logger.Error("window", "error", err)
			os.Exit(1)
		}
	default:
		if err := runTUI(cfg, level, path); err != nil {
			log.Fatal(err)
		}
	}
}

func runTUI(cfg config.Config, level slog.Level, path string) error {
	logger, closer, err := logging.ToFile(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	var m tui.Model
	if path != "" {
		m, err = tui.NewWithPath(cfg, logger, path)
	} else {
		m, err = tui.New(cfg, logger)
	}
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if fm, ok := final.(tui.Model); ok {
		_ = fm.Close()
	}
	return err
}

// export renders the document at its home view.
func export(cfg config.Config, logger *slog.Logger, in, out string) error {
	doc, err := ingest.Load(in)
	if err != nil {
		return err
	}
	ctrl, err := viewer.New(nil, cfg.ViewerOptions(logger))
	if err != nil {
		return err
	}
	if err := ctrl.Load(doc); err != nil {
		return err
	}
	if ctrl.BoundsOverrun() {
		logger.Warn(viewer.OverrunWarning, "file", in)
	}
	err = snapshot.Export(out, ctrl.Camera(), ctrl.Scene(), snapshot.Options{
		Width:      cfg.WindowWidth,
		Height:     cfg.WindowHeight,
		Background: cfg.Background(),
		LineWidth:  cfg.LineWidth,
	})
	if err != nil {
		return err
	}
	logger.Info("exported", "in", in, "out", out)
	return nil
}
