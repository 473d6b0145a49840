package ui

import "fyne.io/fyne/v2/widget"

// fieldEntry is a widget.Entry that reports focus loss, so a field can be
// validated when the user leaves it rather than on every keystroke
type fieldEntry struct {
	widget.Entry
	onFocusLost func()
}

// newFieldEntry creates a single-line entry with blur notification
func newFieldEntry() *fieldEntry {
	e := &fieldEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// FocusLost implements fyne.Focusable
func (e *fieldEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onFocusLost != nil {
		e.onFocusLost()
	}
}
