package main

import (
	"os"
	"sync"

	"github.com/gosuri/uiprogress"
	"github.com/mattn/go-isatty"
)

// stepProgress renders a fixed-step pipeline bar on stderr. It stays
// disabled when stderr is not a terminal so piped or cron runs get clean
// log output.
type stepProgress struct {
	enabled bool
	mu      sync.Mutex
	current string
	p       *uiprogress.Progress
	bar     *uiprogress.Bar
}

// newStepProgress creates a progress tracker over a known number of steps.
func newStepProgress(enabled bool, totalSteps int) *stepProgress {
	if !enabled || !isatty.IsTerminal(os.Stderr.Fd()) {
		return &stepProgress{enabled: false}
	}

	sp := &stepProgress{enabled: true}

	sp.p = uiprogress.New()
	sp.p.Out = os.Stderr

	sp.bar = sp.p.AddBar(totalSteps)
	sp.bar.AppendCompleted()
	sp.bar.PrependFunc(func(b *uiprogress.Bar) string {
		sp.mu.Lock()
		defer sp.mu.Unlock()
		return sp.current
	})

	sp.p.Start()
	return sp
}

// Step records the start of a named pipeline step and advances the bar for
// the previous one.
func (sp *stepProgress) Step(name string) {
	if !sp.enabled {
		return
	}

	sp.mu.Lock()
	first := sp.current == ""
	sp.current = name
	sp.mu.Unlock()

	if !first {
		sp.bar.Incr()
	}
}

// Done completes the bar and stops rendering.
func (sp *stepProgress) Done() {
	if !sp.enabled {
		return
	}

	sp.mu.Lock()
	sp.current = "done"
	sp.mu.Unlock()

	sp.bar.Incr()
	sp.p.Stop()
}
