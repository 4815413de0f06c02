// CLI spinner so users know a long search isn't hanging.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// spinner animates on stdout from its own goroutine. startSpinner
// returns nil when stdout is not a terminal; stop is nil-safe, so
// callers never need to care.
type spinner struct {
	done chan struct{}
	idle chan struct{}
}

func startSpinner() *spinner {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil
	}

	s := &spinner{
		done: make(chan struct{}),
		idle: make(chan struct{}),
	}
	go s.spin()

	return s
}

func (s *spinner) spin() {
	defer close(s.idle)

	delay := cfgSpinnerDelay
	if delay <= 0 {
		delay = defaultSpinnerDelayMS * time.Millisecond
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-s.done:
			fmt.Print(" \b")
			return
		case <-ticker.C:
			f := spinnerFrames[frame%len(spinnerFrames)]
			if !cfgNoColor {
				f = spinnerStyle.Render(f)
			}
			fmt.Print(f + "\b")
			frame++
		}
	}
}

// stop ends the animation and waits for the cursor to be cleaned up.
func (s *spinner) stop() {
	if s == nil {
		return
	}
	close(s.done)
	<-s.idle
}
