// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// ProgressBar implements a concurrent progress bar. Drawing happens in
// a separate goroutine so that the progress bar runs concurrently with
// the process it measures; Increment and IncrementBy never block.
type ProgressBar struct {
	// width determines the number of characters wide that the
	// progress bar should be
	width int

	// max determines the amount of progress at which the bar reaches
	// 100%
	max int64

	// progress measures the accumulated Increment/IncrementBy calls
	progress int64

	updateEvery time.Duration
	closeEvent  chan struct{}
	closed      bool
}

// New returns a new progress bar that is width characters wide and
// reaches 100% once IncrementBy calls have accumulated max progress.
// The bar redraws every updateEvery.
func New(width, max int, updateEvery time.Duration) *ProgressBar {
	return &ProgressBar{
		width:       width,
		max:         int64(max),
		updateEvery: updateEvery,
		closeEvent:  make(chan struct{}),
	}
}

// Increment increments the internal progress counter by one
func (p *ProgressBar) Increment() {
	p.IncrementBy(1)
}

// IncrementBy increments the internal progress counter by n
func (p *ProgressBar) IncrementBy(n int) {
	atomic.AddInt64(&p.progress, int64(n))
}

// Close closes the progress bar so that it will no longer display to
// the screen
func (p *ProgressBar) Close() {
	if p.closed {
		panic("close: close on closed progress bar")
	}
	close(p.closeEvent)
	p.closed = true
	fmt.Println() // Jump to next line after printed bar
}

// Display displays the progress bar on the screen. It should only be
// called once.
func (p *ProgressBar) Display() {
	go func() {
		tick := time.NewTicker(p.updateEvery)
		defer tick.Stop()

		var elapsed time.Duration
		for {
			select {
			case <-tick.C:
				elapsed += p.updateEvery
				p.draw(elapsed)

			case <-p.closeEvent:
				p.draw(elapsed)
				return
			}
		}
	}()
}

// draw redraws the bar in place on the current terminal line
func (p *ProgressBar) draw(elapsed time.Duration) {
	progress := atomic.LoadInt64(&p.progress)
	fraction := float64(progress) / float64(p.max)
	if fraction > 1 {
		fraction = 1
	}

	var bar strings.Builder
	bar.WriteString("|")

	filled := int(fraction * float64(p.width))
	for i := 0; i < filled; i++ {
		bar.WriteString("█")
	}
	for i := filled; i < p.width; i++ {
		bar.WriteString(" ")
	}
	fmt.Fprintf(&bar, "| [%.2f%% | elapsed: %v]", fraction*100, elapsed)

	fmt.Printf("\n\033[1A\033[K%v", bar.String())
}
