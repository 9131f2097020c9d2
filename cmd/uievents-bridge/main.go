// Package main serves browser input over a websocket and answers each
// frame with a snapshot of the page's input state.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kataras/golog"

	"github.com/dshills/uievents/internal/bridge"
	"github.com/dshills/uievents/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	addr       string
	logLevel   string
	anyOrigin  bool
	watch      bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	opts.override(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg.Logging.Apply(nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverOpts := bridge.OptionsFromConfig(cfg)
	if opts.anyOrigin {
		serverOpts.CheckOrigin = func(*http.Request) bool { return true }
	}
	srv := bridge.NewServer(serverOpts)

	if opts.watch && opts.configPath != "" {
		go func() {
			err := config.Watch(ctx, opts.configPath, func(c *config.Config, err error) {
				if err != nil {
					golog.Warnf("config not reloaded: %v", err)
					return
				}
				opts.override(c)
				c.Logging.Apply(nil)
				srv.SetReducerOptions(c.ToOptions())
				golog.Infof("config reloaded; new sessions use scale %.2f", c.Pointer.ScaleFactor)
			})
			if err != nil && ctx.Err() == nil {
				golog.Errorf("config watch stopped: %v", err)
			}
		}()
	}

	if err := srv.ListenAndServe(ctx, cfg.Bridge.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// override applies the command-line settings on top of c. It runs on the
// first load and on every reload.
func (o options) override(c *config.Config) {
	if o.addr != "" {
		c.Bridge.Addr = o.addr
	}
	if o.logLevel != "" {
		c.Logging.Level = o.logLevel
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.addr, "addr", "", "Listen address (overrides bridge.addr)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.anyOrigin, "any-origin", false, "Accept connections from pages on any origin")
	flag.BoolVar(&opts.watch, "watch", false, "Reload the configuration file when it changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "uievents-bridge - browser input over websocket\n\n")
		fmt.Fprintf(os.Stderr, "Usage: uievents-bridge [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nConnect a page to ws://<addr>/ws and send DOM events as JSON.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("uievents-bridge %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
