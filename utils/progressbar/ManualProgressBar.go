// Package progressbar implements functionality of printing a progress
// bar to a terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gosuri/uilive"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed to the screen.
// Each call to Display() overwrites the previously displayed bar.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	width           float64
	maxProgress     float64
	currentProgress float64
	bar             strings.Builder
	startTime       time.Time
	writer          *uilive.Writer
}

// NewManualProgressBar returns a new ManualProgressBar which is width
// characters wide, reaches 100% after max calls to Increment() and is
// displayed on out
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	writer := uilive.New()
	writer.Out = out

	return &ManualProgressBar{
		width:           float64(width),
		maxProgress:     float64(max),
		currentProgress: 0,
		startTime:       time.Now(),
		writer:          writer,
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Progress returns the fraction of progress made, in [0, 1]
func (p *ManualProgressBar) Progress() float64 {
	if p.maxProgress <= 0 {
		return 1.0
	}
	return p.currentProgress / p.maxProgress
}

// Display displays the progress bar, replacing the last one displayed
func (p *ManualProgressBar) Display() error {
	p.bar.Reset()
	p.bar.WriteString("|")

	width := int(p.width)
	filled := int(p.Progress() * p.width)
	p.bar.WriteString(strings.Repeat("█", filled))
	p.bar.WriteString(strings.Repeat(" ", width-filled))
	p.bar.WriteString(fmt.Sprintf("| [%.2f%v | elapsed: %v]",
		p.Progress()*100, "%", time.Since(p.startTime).Truncate(time.Second)))

	fmt.Fprintln(p.writer, p.bar.String())
	return p.writer.Flush()
}
