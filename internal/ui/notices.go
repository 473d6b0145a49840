package ui

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/termoapp/termo-desk/internal/model"
)

// NoticeCenter presents errors on two channels: transient global notices
// stacked under the form header, and one inline annotation per field.
// Notices expire independently after a fixed visible duration; a field's
// annotation is replaced when a new one is set and cleared when the user
// starts typing again.
type NoticeCenter struct {
	mu sync.Mutex

	stack    *fyne.Container
	autoHide time.Duration

	fields map[string]*canvas.Text
	status map[string]model.FieldStatus
	order  []string
}

// NewNoticeCenter creates a notice center with the default auto-hide delay
func NewNoticeCenter() *NoticeCenter {
	return &NoticeCenter{
		stack:    container.NewVBox(),
		autoHide: NoticeAutoHide,
		fields:   make(map[string]*canvas.Text),
		status:   make(map[string]model.FieldStatus),
	}
}

// Stack returns the container visible global notices are stacked in
func (nc *NoticeCenter) Stack() fyne.CanvasObject {
	return nc.stack
}

// Notify shows one transient global notice. Multiple notices stack and
// each disappears on its own timer. Safe to call from any goroutine.
func (nc *NoticeCenter) Notify(message string) {
	if message == "" {
		return
	}

	card := newNoticeCard(message)
	fyne.Do(func() {
		nc.stack.Add(card)
		nc.stack.Refresh()
	})

	go func() {
		time.Sleep(nc.autoHide)
		fyne.Do(func() {
			nc.stack.Remove(card)
			nc.stack.Refresh()
		})
	}()
}

// RegisterField attaches an annotation label to a field name. Registration
// order defines which field counts as first for FirstInvalid.
func (nc *NoticeCenter) RegisterField(name string, label *canvas.Text) {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	if _, exists := nc.fields[name]; !exists {
		nc.order = append(nc.order, name)
	}
	nc.fields[name] = label
}

// Annotate sets the inline error for a field, replacing any prior one and
// marking the field Invalid. Unknown fields are ignored; callers route
// those to Notify instead.
func (nc *NoticeCenter) Annotate(field, message string) {
	nc.mu.Lock()
	label, exists := nc.fields[field]
	if exists {
		nc.status[field] = model.FieldStatusInvalid
	}
	nc.mu.Unlock()
	if !exists {
		return
	}

	fyne.Do(func() {
		label.Text = message
		label.Show()
		label.Refresh()
	})
}

// Clear removes a field's inline annotation and returns it to Pristine
func (nc *NoticeCenter) Clear(field string) {
	nc.mu.Lock()
	label, exists := nc.fields[field]
	delete(nc.status, field)
	nc.mu.Unlock()
	if !exists {
		return
	}

	fyne.Do(func() {
		label.Text = ""
		label.Hide()
	})
}

// ClearAll removes every inline annotation
func (nc *NoticeCenter) ClearAll() {
	nc.mu.Lock()
	names := make([]string, 0, len(nc.status))
	for name := range nc.status {
		names = append(names, name)
	}
	nc.mu.Unlock()

	for _, name := range names {
		nc.Clear(name)
	}
}

// FieldStatus returns the presentation status of a field: Invalid while
// its annotation is showing, Pristine once cleared. Valid verdicts are the
// form state's to report.
func (nc *NoticeCenter) FieldStatus(field string) model.FieldStatus {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	if status, tracked := nc.status[field]; tracked {
		return status
	}
	return model.FieldStatusPristine
}

// Knows returns whether the field has a registered annotation label
func (nc *NoticeCenter) Knows(field string) bool {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	_, exists := nc.fields[field]
	return exists
}

// FirstInvalid returns the first currently annotated field in registration
// order, or empty when none is annotated
func (nc *NoticeCenter) FirstInvalid() string {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	for _, name := range nc.order {
		if nc.status[name] == model.FieldStatusInvalid {
			return name
		}
	}
	return ""
}

// NewErrorLabel creates the small red annotation label shown under a field
func NewErrorLabel() *canvas.Text {
	label := canvas.NewText("", theme.Color(theme.ColorNameError))
	label.TextSize = ErrorLabelTextSize
	label.Hide()
	return label
}

// newNoticeCard builds one visible notice: an error-colored strip with the
// message wrapped inside
func newNoticeCard(message string) fyne.CanvasObject {
	background := canvas.NewRectangle(color.NRGBA{R: 183, G: 28, B: 28, A: 40})
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	return container.NewStack(background, label)
}
