package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate defines the refresh frequency of the enumeration
// spinner.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner abstracts the behavior of a terminal spinner, decoupling callers
// from the concrete spinner implementation for easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() { rs.s.Start() }

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// NewSpinner is the spinner constructor. Tests replace it to observe spinner
// lifecycle without terminal output.
var NewSpinner = func(out io.Writer, label string) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(out))
	s.Suffix = " " + label
	return &realSpinner{s}
}

// nullSpinner is a no-op Spinner for quiet mode.
type nullSpinner struct{}

func (nullSpinner) Start()                {}
func (nullSpinner) Stop()                 {}
func (nullSpinner) UpdateSuffix(s string) {}

// NewNullSpinner returns a Spinner that displays nothing.
func NewNullSpinner() Spinner { return nullSpinner{} }
