// Package main implements the nescore emulator command line frontend.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"nescore/internal/app"
	"nescore/internal/graphics"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	rom    string
	config string

	backend string
	frames  int

	debug       bool
	quiet       bool
	showVersion bool
}

func main() {
	options := readArguments()
	logger := createLogger(options)

	if options.showVersion {
		fmt.Printf("nescore version: %s\n", buildinfo.Version(version, commit, date))
		return
	}

	if err := run(logger, options); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.StringVar(&options.config, "config", app.DefaultConfigPath(), "name of the JSON config file to load")
	flags.StringVar(&options.backend, "backend", "", "graphics backend to use, overrides the config file (ebitengine, headless)")
	flags.IntVar(&options.frames, "frames", 0, "number of frames to run in headless mode before exiting")
	flags.BoolVar(&options.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&options.showVersion, "version", false, "print the version and exit")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || (len(args) == 0 && !options.showVersion) {
		fmt.Printf("usage: nescore [options] <iNES file to run>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	if len(args) > 0 {
		options.rom = args[0]
	}

	return options
}

func createLogger(options optionFlags) *log.Logger {
	cfg := log.DefaultConfig()
	if options.debug {
		cfg.Level = log.DebugLevel
	} else if options.quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func run(logger *log.Logger, options optionFlags) error {
	config := app.NewConfig()
	if err := config.LoadFromFile(options.config); err != nil {
		return err
	}

	backendName := config.Video.Backend
	if options.backend != "" {
		backendName = options.backend
	}

	backend, err := graphics.CreateBackend(backendName, graphics.Options{
		WindowTitle:       "nescore - " + options.rom,
		Scale:             config.Window.Scale,
		Fullscreen:        config.Window.Fullscreen,
		VSync:             config.Video.VSync,
		Filter:            config.Video.Filter,
		ShowPatternTables: config.Debug.ShowPatternTables,
		ShowPalettes:      config.Debug.ShowPalettes,
		Frames:            options.frames,
	})
	if err != nil {
		return err
	}

	emulator := app.NewEmulator(logger)
	if err := emulator.LoadROM(options.rom); err != nil {
		return err
	}

	logger.Info("Starting emulation",
		log.String("backend", backend.Name()))

	if err := backend.Run(emulator); err != nil {
		return fmt.Errorf("running %s backend: %w", backend.Name(), err)
	}

	logger.Info("Emulation stopped",
		log.Int("frames", int(emulator.Frames())))
	return nil
}
