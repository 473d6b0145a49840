package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ProgressPanel shows the server's progress messages during a submission:
// a spinner with the current message, hidden while nothing is in flight.
// One message is visible at a time; pacing is the queue's job.
type ProgressPanel struct {
	box     *fyne.Container
	label   *widget.Label
	spinner *widget.ProgressBarInfinite
}

// NewProgressPanel creates a hidden progress panel
func NewProgressPanel() *ProgressPanel {
	p := &ProgressPanel{
		label:   widget.NewLabel(""),
		spinner: widget.NewProgressBarInfinite(),
	}
	p.label.Alignment = fyne.TextAlignLeading
	p.spinner.Hide()
	p.box = container.NewHBox(p.spinner, container.NewPadded(p.label))
	p.box.Hide()
	return p
}

// Container returns the panel's root container
func (p *ProgressPanel) Container() fyne.CanvasObject {
	return p.box
}

// Show displays one progress message. Safe to call from any goroutine.
func (p *ProgressPanel) Show(message string) {
	fyne.Do(func() {
		p.label.SetText(message)
		p.spinner.Show()
		p.box.Show()
		p.box.Refresh()
	})
}

// Hide clears the current message and hides the panel
func (p *ProgressPanel) Hide() {
	fyne.Do(func() {
		p.label.SetText("")
		p.spinner.Hide()
		p.box.Hide()
	})
}
