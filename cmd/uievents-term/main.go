// Package main shows the terminal's input state live, one frame at a time.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/uievents/internal/backend"
	"github.com/dshills/uievents/internal/backend/term"
	"github.com/dshills/uievents/internal/config"
	"github.com/dshills/uievents/internal/input/framestate"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const frameRate = 60

type options struct {
	configPath string
	logFile    string
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

	// The screen owns stdout; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	cfg.Logging.Apply(logOut)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v := &viewer{
		screen:  screen,
		reducer: term.NewReducer(),
		opts:    cfg.ToOptions(),
	}
	return v.loop(events)
}

type viewer struct {
	screen  tcell.Screen
	reducer *term.Reducer
	opts    backend.Options
	state   framestate.InputState
	frame   uint64
}

func (v *viewer) loop(events <-chan tcell.Event) int {
	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return 0
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyCtrlC {
					return 0
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.state.ProcessAll(v.reducer.Reduce(v.opts, ev))
		case <-ticker.C:
			v.frame++
			v.draw(render(v.frame, v.state.Snapshot()))
			v.state.ClearFrame()
		}
	}
}

func (v *viewer) draw(lines []string) {
	v.screen.Clear()
	for y, line := range lines {
		x := 0
		for _, r := range line {
			v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	v.screen.Show()
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logFile, "log", "", "Append logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "uievents-term - live terminal input state\n\n")
		fmt.Fprintf(os.Stderr, "Usage: uievents-term [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nPress Ctrl+C to quit.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("uievents-term %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
