package ui

import (
	"fmt"
	"io"
	"time"
)

// Steps shown while generating a single AIBOM.
const (
	StepModel = iota
	StepReadme
	StepDatasets
	StepWrite
)

var generateSteps = []string{
	"Fetching model metadata",
	"Reading model card",
	"Resolving datasets",
	"Writing AIBOM",
}

// GenerateUI renders the generate command's progress. With animate set it
// drives a spinner; otherwise every update is printed as a plain status line.
type GenerateUI struct {
	writer  io.Writer
	quiet   bool
	animate bool
	tracker *ProgressTracker

	startTime time.Time
	pending   []string // notes held back while the spinner owns the terminal
}

// NewGenerateUI creates a new UI handler for the generate command
func NewGenerateUI(w io.Writer, quiet, animate bool) *GenerateUI {
	return &GenerateUI{writer: w, quiet: quiet, animate: animate && !quiet, startTime: time.Now()}
}

// Start begins the progress display for modelID.
func (g *GenerateUI) Start(modelID string) {
	g.startTime = time.Now()
	if !g.animate {
		return
	}
	g.tracker = NewProgressTracker("Generating AIBOM for "+modelID, generateSteps)
	g.tracker.Start()
}

// Running marks a step as in progress.
func (g *GenerateUI) Running(step int, message string) {
	if g.tracker != nil {
		g.tracker.UpdateStep(step, StatusRunning, message)
	}
}

// Done marks a step as complete and reports message.
func (g *GenerateUI) Done(step int, message string) {
	if g.tracker != nil {
		g.tracker.UpdateStep(step, StatusComplete, message)
		return
	}
	g.line(GetCheckMark(), message)
}

// Skipped marks a step as skipped; reason is shown as a warning.
func (g *GenerateUI) Skipped(step int, reason string) {
	if g.tracker != nil {
		g.tracker.UpdateStep(step, StatusSkipped, reason)
		g.pending = append(g.pending, GetWarnMark()+" "+reason)
		return
	}
	g.line(GetWarnMark(), reason)
}

// Failed marks a step as failed.
func (g *GenerateUI) Failed(step int, message string) {
	if g.tracker != nil {
		g.tracker.UpdateStep(step, StatusFailed, message)
		return
	}
	g.line(GetCrossMark(), message)
}

// Warn reports a recoverable problem without changing step state.
func (g *GenerateUI) Warn(message string) {
	if g.tracker != nil {
		g.tracker.SetMessage(message)
		g.pending = append(g.pending, GetWarnMark()+" "+message)
		return
	}
	g.line(GetWarnMark(), message)
}

// Finish stops the spinner (if any) and flushes held-back warnings.
func (g *GenerateUI) Finish(err error) {
	if g.tracker != nil {
		g.tracker.Complete(err)
		g.tracker = nil
		if !g.quiet {
			fmt.Fprintln(g.writer)
			for _, n := range g.pending {
				fmt.Fprintln(g.writer, n)
			}
		}
	}
	g.pending = nil
}

// PrintWritten reports the output file.
func (g *GenerateUI) PrintWritten(path string, datasets int) {
	if g.quiet {
		return
	}
	elapsed := time.Since(g.startTime).Round(time.Millisecond)
	fmt.Fprintf(g.writer, "%s AIBoM successfully created: %s\n", GetCheckMark(), Highlight.Render(path))
	fmt.Fprintln(g.writer, "  "+FormatKeyValue("Datasets", fmt.Sprintf("%d", datasets)))
	fmt.Fprintln(g.writer, "  "+FormatKeyValue("Duration", elapsed.String()))
}

func (g *GenerateUI) line(icon, message string) {
	if g.quiet {
		return
	}
	fmt.Fprintf(g.writer, "%s %s\n", icon, message)
}
