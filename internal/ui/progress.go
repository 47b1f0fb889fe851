package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// StepStatus represents the status of a step
type StepStatus int

const (
	StatusPending StepStatus = iota
	StatusRunning
	StatusComplete
	StatusFailed
	StatusSkipped
)

// Step represents a single step in the progress
type Step struct {
	Name    string
	Status  StepStatus
	Message string
}

// ProgressModel is the Bubble Tea model for progress display
type ProgressModel struct {
	spinner    spinner.Model
	steps      []Step
	title      string
	done       bool
	err        error
	quitting   bool
	subMessage string
}

// NewProgressModel creates a progress model with the given step names, all pending.
func NewProgressModel(title string, steps []string) ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorSecondary)

	m := ProgressModel{spinner: s, title: title, steps: make([]Step, len(steps))}
	for i, name := range steps {
		m.steps[i] = Step{Name: name, Status: StatusPending}
	}
	return m
}

// Init initializes the model
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// ProgressMsg is sent to update progress. StepIndex -1 only updates the sub-message.
type ProgressMsg struct {
	StepIndex  int
	Status     StepStatus
	Message    string
	SubMessage string
}

// DoneMsg signals that the operation is complete
type DoneMsg struct {
	Err error
}

// Update handles messages
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProgressMsg:
		if msg.StepIndex >= 0 && msg.StepIndex < len(m.steps) {
			m.steps[msg.StepIndex].Status = msg.Status
			m.steps[msg.StepIndex].Message = msg.Message
		}
		m.subMessage = msg.SubMessage
		return m, nil

	case DoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the progress display
func (m ProgressModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m ProgressModel) render() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(Title.Render(m.title))
		b.WriteString("\n\n")
	}

	for i, step := range m.steps {
		var icon string
		var style styleWrapper

		switch step.Status {
		case StatusPending:
			icon = Muted.Render("○")
			style = StepPending
		case StatusRunning:
			icon = m.spinner.View()
			style = StepRunning
		case StatusComplete:
			icon = GetCheckMark()
			style = StepComplete
		case StatusFailed:
			icon = GetCrossMark()
			style = StepFailed
		case StatusSkipped:
			icon = Warning.Render("⊘")
			style = StepSkipped
		}

		b.WriteString(fmt.Sprintf("%s %s", icon, style.Render(step.Name)))
		if step.Message != "" && step.Status != StatusPending {
			b.WriteString(Dim.Render(" → " + step.Message))
		}
		if i < len(m.steps)-1 {
			b.WriteString("\n")
		}
	}

	if m.subMessage != "" && !m.done {
		b.WriteString("\n\n")
		b.WriteString(Dim.Render(m.subMessage))
	}
	return b.String()
}

// ProgressTracker drives a ProgressModel from ordinary (non Bubble Tea) code.
// All methods are safe to call on a tracker that was never started.
type ProgressTracker struct {
	title   string
	steps   []string
	program *tea.Program
	mu      sync.Mutex
	running bool
	exited  chan struct{}
}

// NewProgressTracker creates a new progress tracker
func NewProgressTracker(title string, steps []string) *ProgressTracker {
	return &ProgressTracker{title: title, steps: steps}
}

// Start begins rendering in a background goroutine.
func (pt *ProgressTracker) Start() {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.running {
		return
	}

	pt.program = tea.NewProgram(NewProgressModel(pt.title, pt.steps), tea.WithoutSignalHandler())
	pt.running = true
	pt.exited = make(chan struct{})

	go func(p *tea.Program, exited chan struct{}) {
		defer close(exited)
		_, _ = p.Run()
	}(pt.program, pt.exited)
}

// UpdateStep updates a specific step's status
func (pt *ProgressTracker) UpdateStep(index int, status StepStatus, message string) {
	pt.send(ProgressMsg{StepIndex: index, Status: status, Message: message})
}

// SetMessage sets the sub-message displayed below the steps
func (pt *ProgressTracker) SetMessage(message string) {
	pt.send(ProgressMsg{StepIndex: -1, SubMessage: message})
}

func (pt *ProgressTracker) send(msg tea.Msg) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.program == nil || !pt.running {
		return
	}
	pt.program.Send(msg)
}

// Complete renders the final state and waits (briefly) for the program to exit.
func (pt *ProgressTracker) Complete(err error) {
	pt.mu.Lock()
	if pt.program == nil || !pt.running {
		pt.mu.Unlock()
		return
	}
	pt.program.Send(DoneMsg{Err: err})
	pt.running = false
	exited := pt.exited
	pt.mu.Unlock()

	select {
	case <-exited:
	case <-time.After(500 * time.Millisecond):
	}
}
