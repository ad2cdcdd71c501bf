// Package main is the entry point for the hookstorm input hook.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/hookstorm/internal/config"
	"github.com/dshills/hookstorm/internal/event"
	"github.com/dshills/hookstorm/internal/filter"
	"github.com/dshills/hookstorm/internal/hook"
	"github.com/dshills/hookstorm/internal/logging"
	"github.com/dshills/hookstorm/internal/monitor"
	"github.com/dshills/hookstorm/internal/xrecord"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := parseFlags()

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: os.Stderr,
	})

	var flt hook.Filter
	if cfg.FilterScript != "" {
		lf, err := filter.NewFromFile(cfg.FilterScript, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load filter: %v\n", err)
			return 1
		}
		defer lf.Close()
		flt = lf
	}

	sink := event.NewChanSink(cfg.QueueSize)
	h := hook.New(xrecord.New(log),
		hook.WithSink(sink),
		hook.WithFilter(flt),
		hook.WithLogger(log),
		hook.WithDisplay(cfg.Display),
		hook.WithMultiClickInterval(cfg.MultiClickInterval()),
	)
	if err := h.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start hook: %v\n", err)
		return 1
	}
	defer stopHook(h, log)

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if cfg.Monitor {
		return runMonitor(sink, signals)
	}
	return runPlain(sink, signals, log)
}

// runPlain logs every captured event until a signal arrives.
func runPlain(sink *event.ChanSink, signals <-chan os.Signal, log *logging.Logger) int {
	log.Info("capturing input events, interrupt to stop")
	for {
		select {
		case <-signals:
			return 0
		case ev, ok := <-sink.Events():
			if !ok {
				return 0
			}
			log.Info("%s", ev)
		}
	}
}

// runMonitor hands the event stream to the interactive terminal viewer.
func runMonitor(sink *event.ChanSink, signals <-chan os.Signal) int {
	mon, err := monitor.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create monitor: %v\n", err)
		return 1
	}
	go func() {
		<-signals
		mon.Stop()
	}()
	if err := mon.Run(sink.Events()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: monitor failed: %v\n", err)
		return 1
	}
	return 0
}

func stopHook(h *hook.Hook, log *logging.Logger) {
	if err := h.Stop(); err != nil && !errors.Is(err, hook.ErrNotRunning) {
		log.Error("stop failed: %v", err)
	}
}

func parseFlags() *config.Config {
	var (
		configPath   string
		display      string
		logLevel     string
		filterScript string
		useMonitor   bool
		showVersion  bool
		showHelp     bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&display, "display", "", "X display to attach to (defaults to $DISPLAY)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&filterScript, "filter", "", "Path to a Lua event filter script")
	flag.BoolVar(&useMonitor, "monitor", false, "Show the interactive terminal event viewer")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Hookstorm - global X11 input hook\n\n")
		fmt.Fprintf(os.Stderr, "Usage: hookstorm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hookstorm                       Log all input events to stderr\n")
		fmt.Fprintf(os.Stderr, "  hookstorm -monitor              Interactive event viewer\n")
		fmt.Fprintf(os.Stderr, "  hookstorm -filter drop_motion.lua\n")
		fmt.Fprintf(os.Stderr, "  hookstorm -display :1 -log-level debug\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("Hookstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	cfg := loadConfig(configPath)
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Flags win over file and environment.
	if display != "" {
		cfg.Display = display
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if filterScript != "" {
		cfg.FilterScript = filterScript
	}
	if useMonitor {
		cfg.Monitor = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrFileNotFound) {
			fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
			return config.Default()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
