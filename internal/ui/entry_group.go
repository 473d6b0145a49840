package ui

import (
	"image/color"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/termoapp/termo-desk/internal/form"
	"github.com/termoapp/termo-desk/internal/model"
)

// EntryGroup renders the repeatable asset entries of the form. One entry
// always exists; adding grows the group container, removing back down to a
// single entry collapses it into the inline layout again. Entry rows are
// keyed by the form state's never-reused ids.
type EntryGroup struct {
	state        *form.State
	localization *Localization
	notify       func(message string)

	box         *fyne.Container
	widthSpacer *canvas.Rectangle
	addBtn      *widget.Button

	// mu guards rows: the UI thread adds and removes them while the
	// submission goroutine routes server errors to them
	mu   sync.Mutex
	rows []*entryRow
}

// entryRow is the widget set for one asset entry
type entryRow struct {
	id         int64
	assetEntry *fieldEntry
	noteEntry  *fieldEntry
	assetError *canvas.Text
	noteError  *canvas.Text
	removeBtn  *widget.Button
	box        fyne.CanvasObject
}

// NewEntryGroup creates the asset entry group bound to the form state
func NewEntryGroup(state *form.State, localization *Localization, notify func(string)) *EntryGroup {
	eg := &EntryGroup{
		state:        state,
		localization: localization,
		notify:       notify,
		box:          container.NewVBox(),
		widthSpacer:  canvas.NewRectangle(color.Transparent),
	}

	eg.addBtn = widget.NewButton(IconAdd+" "+localization.GetText(KeyAddAsset), eg.onAdd)
	eg.rebuild()
	return eg
}

// Container returns the group's root container
func (eg *EntryGroup) Container() fyne.CanvasObject {
	return container.NewVBox(
		container.NewStack(eg.widthSpacer, eg.box),
		container.NewHBox(eg.addBtn),
	)
}

// onAdd appends a new empty entry. The form state debounces the add while
// the previous insertion is still settling.
func (eg *EntryGroup) onAdd() {
	entry, ok, err := eg.state.AddEntry()
	if err != nil {
		eg.notify(err.Error())
		return
	}
	if !ok {
		return
	}

	row := eg.newRow(entry)
	eg.mu.Lock()
	eg.rows = append(eg.rows, row)
	eg.mu.Unlock()
	eg.refreshLayout()

	// Re-arm the add once the insertion transition settles
	go func() {
		time.Sleep(GroupAddSettleDelay)
		eg.state.SettleAdd()
	}()
}

// onRemove deletes the entry with the given id. When one entry remains the
// group collapses back to the inline representation.
func (eg *EntryGroup) onRemove(id int64) {
	collapsed, ok := eg.state.RemoveEntry(id)
	if !ok {
		return
	}

	eg.mu.Lock()
	for i, row := range eg.rows {
		if row.id == id {
			eg.rows = append(eg.rows[:i], eg.rows[i+1:]...)
			break
		}
	}
	eg.mu.Unlock()
	if collapsed {
		log.Printf("Entry group collapsed to inline layout")
	}
	eg.refreshLayout()
}

// newRow builds the widgets for one asset entry
func (eg *EntryGroup) newRow(entry model.AssetEntry) *entryRow {
	row := &entryRow{id: entry.ID}

	row.assetError = NewErrorLabel()
	row.noteError = NewErrorLabel()

	row.assetEntry = newFieldEntry()
	row.assetEntry.SetPlaceHolder("CEL001, PC123, ...")
	row.assetEntry.SetText(entry.Asset)
	row.assetEntry.OnChanged = func(value string) {
		eg.state.SetEntryAsset(row.id, value)
		// Typing clears the annotation optimistically
		hideError(row.assetError)
	}
	row.assetEntry.onFocusLost = func() {
		asset, _ := eg.state.ValidateEntry(row.id)
		if !asset.Valid {
			showError(row.assetError, asset.Message)
		} else {
			hideError(row.assetError)
		}
	}

	row.noteEntry = newFieldEntry()
	row.noteEntry.SetPlaceHolder(eg.localization.GetText(KeyNote))
	row.noteEntry.SetText(entry.Note)
	row.noteEntry.OnChanged = func(value string) {
		eg.state.SetEntryNote(row.id, value)
		hideError(row.noteError)
	}
	row.noteEntry.onFocusLost = func() {
		_, note := eg.state.ValidateEntry(row.id)
		if !note.Valid {
			showError(row.noteError, note.Message)
		} else {
			hideError(row.noteError)
		}
	}

	row.removeBtn = widget.NewButton(IconRemove, func() { eg.onRemove(row.id) })
	row.removeBtn.Importance = widget.LowImportance

	fields := container.NewVBox(
		widget.NewLabel(eg.localization.GetText(KeyAsset)),
		row.assetEntry,
		row.assetError,
		widget.NewLabel(eg.localization.GetText(KeyNote)),
		row.noteEntry,
		row.noteError,
	)
	row.box = container.NewBorder(nil, widget.NewSeparator(), nil, row.removeBtn, fields)
	return row
}

// rebuild recreates every row from the form state
func (eg *EntryGroup) rebuild() {
	var rows []*entryRow
	for _, entry := range eg.state.Entries() {
		rows = append(rows, eg.newRow(entry))
	}
	eg.mu.Lock()
	eg.rows = rows
	eg.mu.Unlock()
	eg.refreshLayout()
}

// refreshLayout syncs the row containers, the remove buttons and the group
// width with the current entry count
func (eg *EntryGroup) refreshLayout() {
	eg.box.Objects = nil
	for _, row := range eg.rows {
		eg.box.Add(row.box)
	}

	// A lone entry is the inline layout: no remove button, base width
	for _, row := range eg.rows {
		if len(eg.rows) == 1 {
			row.removeBtn.Hide()
		} else {
			row.removeBtn.Show()
		}
	}

	eg.widthSpacer.SetMinSize(fyne.NewSize(eg.state.ContainerWidth(), 0))
	eg.box.Refresh()
}

// Annotate routes a server or validation error to the right entry row.
// Handled shapes: "patrimonio_<i>", "observacao_<i>" and the cross-field
// "patrimonio". Returns false for anything else. Safe to call from the
// submission goroutine; the label update hops to the UI thread.
func (eg *EntryGroup) Annotate(field, message string) bool {
	eg.mu.Lock()
	defer eg.mu.Unlock()

	if field == model.FieldPatrimonio {
		if len(eg.rows) > 0 {
			showError(eg.rows[0].assetError, message)
			return true
		}
		return false
	}

	name, index, ok := splitIndexedField(field)
	if !ok || index >= len(eg.rows) {
		return false
	}

	switch name {
	case model.FieldPatrimonio:
		showError(eg.rows[index].assetError, message)
		return true
	case model.FieldObservacao:
		showError(eg.rows[index].noteError, message)
		return true
	}
	return false
}

// FirstAnnotated returns the focusable widget of the first visibly
// annotated row, or nil
func (eg *EntryGroup) FirstAnnotated() fyne.Focusable {
	eg.mu.Lock()
	defer eg.mu.Unlock()
	for _, row := range eg.rows {
		if row.assetError.Visible() && row.assetError.Text != "" {
			return row.assetEntry
		}
		if row.noteError.Visible() && row.noteError.Text != "" {
			return row.noteEntry
		}
	}
	return nil
}

// ClearAnnotations hides every row annotation
func (eg *EntryGroup) ClearAnnotations() {
	eg.mu.Lock()
	defer eg.mu.Unlock()
	for _, row := range eg.rows {
		hideError(row.assetError)
		hideError(row.noteError)
	}
}

// Reset rebuilds the group after the form state was reset
func (eg *EntryGroup) Reset() {
	eg.rebuild()
}

// splitIndexedField parses "patrimonio_3" into ("patrimonio", 3, true)
func splitIndexedField(field string) (string, int, bool) {
	pos := strings.LastIndex(field, "_")
	if pos < 0 {
		return "", 0, false
	}
	index, err := strconv.Atoi(field[pos+1:])
	if err != nil || index < 0 {
		return "", 0, false
	}
	return field[:pos], index, true
}

func showError(label *canvas.Text, message string) {
	fyne.Do(func() {
		label.Text = message
		label.Show()
		label.Refresh()
	})
}

func hideError(label *canvas.Text) {
	fyne.Do(func() {
		label.Text = ""
		label.Hide()
	})
}
