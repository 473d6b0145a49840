package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/termoapp/termo-desk/internal/client"
	"github.com/termoapp/termo-desk/internal/config"
	"github.com/termoapp/termo-desk/internal/form"
	"github.com/termoapp/termo-desk/internal/model"
	"github.com/termoapp/termo-desk/internal/platform"
	"github.com/termoapp/termo-desk/internal/submit"
)

// selectOption pairs the value submitted to the server with the label shown
// in the dropdown
type selectOption struct {
	value string
	label string
}

// Dropdown contents. Values are what the server expects; labels are the
// display names.
var (
	roleOptions = []selectOption{
		{"tecnico", "Técnico"},
		{"analista", "Analista"},
		{"supervisor", "Supervisor"},
		{"coordenador", "Coordenador"},
		{"gerente", "Gerente"},
		{"estagiario", "Estagiário"},
		{"outros", "Outros"},
	}

	departmentOptions = []selectOption{
		{"ti", "TI"},
		{"rh", "People & Culture"},
		{"administrativo", "ADM/Financeiro"},
		{"marketing", "Marketing"},
		{"comercial", "Comercial"},
		{"desenvolvimento", "Desenvolvimento"},
		{"central", "Central de REL."},
		{"juridico", "Juridico"},
	}

	companyOptions = []selectOption{
		{"matriz", "Matriz"},
		{"filial", "Filial"},
	}
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	formState    *form.State
	apiClient    *client.Client
	orchestrator *submit.Orchestrator
	settings     *config.Settings
	localization *Localization

	notices       *NoticeCenter
	entryGroup    *EntryGroup
	progressPanel *ProgressPanel

	submitBtn *widget.Button

	// Scalar field widgets keyed by field name, for focusing the first
	// invalid one
	focusables map[string]fyne.Focusable
	selects    map[string]*widget.Select
	entries    map[string]*fieldEntry

	// The specific-role row is only visible while the role is "outros"
	otherRoleRow *fyne.Container

	// Field caption labels keyed by text key, updated on language change
	captions map[string]*widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, formState *form.State, apiClient *client.Client) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		formState:    formState,
		apiClient:    apiClient,
		settings:     settings,
		localization: localization,
		notices:      NewNoticeCenter(),
		focusables:   make(map[string]fyne.Focusable),
		selects:      make(map[string]*widget.Select),
		entries:      make(map[string]*fieldEntry),
		captions:     make(map[string]*widget.Label),
	}

	log.Printf("RootUI initialized with server %s", settings.GetServerURL())

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// The hooks bind UI components, so the layout must exist first
	ui.setupUI()
	ui.orchestrator = submit.New(formState, apiClient, ui.hooks())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.progressPanel = NewProgressPanel()
	ui.entryGroup = NewEntryGroup(ui.formState, ui.localization, ui.notices.Notify)

	// Scalar text fields validate when focus leaves them
	nameEntry := ui.newScalarEntry(model.FieldNome)
	phoneEntry := ui.newScalarEntry(model.FieldTelefone)
	phoneEntry.SetPlaceHolder("(31) 93333-4444")

	otherRoleEntry := ui.newScalarEntry(model.FieldOutrosFuncao)
	ui.otherRoleRow = container.NewVBox(
		ui.caption(KeyOtherRole),
		otherRoleEntry,
		ui.annotation(model.FieldOutrosFuncao),
	)
	ui.otherRoleRow.Hide()

	// Selects validate on selection; the role select also toggles the
	// specific-role row
	roleSelect := ui.newScalarSelect(model.FieldFuncao, roleOptions, ui.onRoleChanged)
	departmentSelect := ui.newScalarSelect(model.FieldDepartamento, departmentOptions, nil)
	companySelect := ui.newScalarSelect(model.FieldEmpresa, companyOptions, nil)

	// Create submit button
	ui.submitBtn = widget.NewButton(ui.localization.GetText(KeySubmit), ui.onSubmitClick)
	ui.submitBtn.Importance = widget.HighImportance

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	formBox := container.NewVBox(
		ui.caption(KeyName),
		nameEntry,
		ui.annotation(model.FieldNome),

		ui.caption(KeyRole),
		roleSelect,
		ui.annotation(model.FieldFuncao),

		ui.otherRoleRow,

		ui.caption(KeyDepartment),
		departmentSelect,
		ui.annotation(model.FieldDepartamento),

		ui.caption(KeyPhone),
		phoneEntry,
		ui.annotation(model.FieldTelefone),

		ui.caption(KeyCompany),
		companySelect,
		ui.annotation(model.FieldEmpresa),

		widget.NewSeparator(),

		ui.entryGroup.Container(),

		container.NewHBox(ui.submitBtn, settingsBtn),
	)

	// Notices and the progress panel sit above the scrollable form
	topPanel := container.NewVBox(ui.notices.Stack(), ui.progressPanel.Container())

	content := container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		container.NewVScroll(container.NewPadded(formBox)),
	)

	ui.window.SetContent(content)

	// UI setup completed
	log.Printf("UI setup completed successfully")
}

// caption creates and registers a field caption label
func (ui *RootUI) caption(textKey string) *widget.Label {
	label := widget.NewLabel(ui.localization.GetText(textKey))
	ui.captions[textKey] = label
	return label
}

// annotation creates and registers the inline error label for a field
func (ui *RootUI) annotation(field string) *canvas.Text {
	label := NewErrorLabel()
	ui.notices.RegisterField(field, label)
	return label
}

// newScalarEntry creates a text field wired to the form state: edits update
// the state and clear the annotation, leaving the field validates it
func (ui *RootUI) newScalarEntry(field string) *fieldEntry {
	entry := newFieldEntry()
	entry.OnChanged = func(value string) {
		ui.formState.SetValue(field, value)
		// Typing clears the annotation optimistically
		ui.notices.Clear(field)
	}
	entry.onFocusLost = func() {
		ui.validateScalar(field)
	}

	ui.entries[field] = entry
	ui.focusables[field] = entry
	return entry
}

// newScalarSelect creates a dropdown wired to the form state. Selection
// updates the state, validates immediately and invokes the optional hook
// with the selected value.
func (ui *RootUI) newScalarSelect(field string, options []selectOption, onValue func(value string)) *widget.Select {
	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = option.label
	}

	sel := widget.NewSelect(labels, nil)
	sel.PlaceHolder = ui.localization.GetText(KeySelectOption)
	sel.OnChanged = func(label string) {
		value := ""
		for _, option := range options {
			if option.label == label {
				value = option.value
				break
			}
		}

		ui.formState.SetValue(field, value)
		ui.validateScalar(field)
		if onValue != nil {
			onValue(value)
		}
	}

	ui.selects[field] = sel
	ui.focusables[field] = sel
	return sel
}

// validateScalar validates one scalar field and syncs its annotation
func (ui *RootUI) validateScalar(field string) {
	result := ui.formState.ValidateField(field)
	if result.Valid {
		ui.notices.Clear(field)
	} else {
		ui.notices.Annotate(field, result.Message)
	}
}

// onRoleChanged toggles the specific-role row. Hiding it also clears the
// field's value and annotation so a stale entry never reaches validation.
func (ui *RootUI) onRoleChanged(value string) {
	if value == "outros" {
		ui.otherRoleRow.Show()
		return
	}

	ui.otherRoleRow.Hide()
	ui.formState.SetValue(model.FieldOutrosFuncao, "")
	if entry, ok := ui.entries[model.FieldOutrosFuncao]; ok {
		entry.SetText("")
	}
	ui.notices.Clear(model.FieldOutrosFuncao)
}

// onSubmitClick handles the submit button click
func (ui *RootUI) onSubmitClick() {
	log.Printf("Submission triggered, state=%s", ui.orchestrator.State())
	ui.orchestrator.Submit()
}

// hooks builds the orchestrator callbacks. All of them may be invoked from
// a background goroutine; the UI hops happen inside the components.
func (ui *RootUI) hooks() submit.Hooks {
	return submit.Hooks{
		AnnotateField: ui.annotateField,
		Notice:        ui.notices.Notify,
		AggregateNotice: func(count int) {
			if count == 1 {
				ui.notices.Notify(ui.localization.GetText(KeyErrorsFoundOne))
				return
			}
			ui.notices.Notify(fmt.Sprintf(ui.localization.GetText(KeyErrorsFoundMany), count))
		},
		ScrollToFirstInvalid: ui.focusFirstInvalid,
		SetBusy:              ui.setBusy,
		ShowProgress:         ui.progressPanel.Show,
		HideProgress:         ui.progressPanel.Hide,
		SavePDF: func(filename string, data []byte) (string, error) {
			return platform.SaveDeliveryPDF(ui.settings.GetDownloadDirectory(), filename, data)
		},
		OnSuccess: ui.onSubmissionSuccess,
	}
}

// annotateField routes an error to the right presentation: a registered
// scalar annotation, an entry row annotation, or a global notice when the
// field is unknown
func (ui *RootUI) annotateField(field, message string) {
	if ui.notices.Knows(field) {
		ui.notices.Annotate(field, message)
		return
	}
	if ui.entryGroup.Annotate(field, message) {
		return
	}
	ui.notices.Notify(message)
}

// focusFirstInvalid moves keyboard focus to the first annotated field so
// the scroll container brings it into view
func (ui *RootUI) focusFirstInvalid() {
	fyne.Do(func() {
		if name := ui.notices.FirstInvalid(); name != "" {
			if focusable, ok := ui.focusables[name]; ok {
				ui.window.Canvas().Focus(focusable)
				return
			}
		}
		if focusable := ui.entryGroup.FirstAnnotated(); focusable != nil {
			ui.window.Canvas().Focus(focusable)
		}
	})
}

// setBusy disables the submit button while a submission is in flight
func (ui *RootUI) setBusy(busy bool) {
	fyne.Do(func() {
		if busy {
			ui.submitBtn.SetText(ui.localization.GetText(KeySubmitting))
			ui.submitBtn.Disable()
		} else {
			ui.submitBtn.SetText(ui.localization.GetText(KeySubmit))
			ui.submitBtn.Enable()
		}
	})
}

// onSubmissionSuccess presents the saved document and resets the form once
// the overlay is dismissed
func (ui *RootUI) onSubmissionSuccess(path string) {
	fyne.Do(func() {
		ShowSuccessOverlay(ui.window, ui.localization, path, ui.onRevealFile, ui.onOpenFile, ui.resetForm)
	})

	if ui.settings.GetAutoRevealOnComplete() {
		log.Printf("Auto-revealing generated document: %s", path)
		ui.onRevealFile(path)
	}
}

// resetForm returns every field to its initial state after a completed
// submission
func (ui *RootUI) resetForm() {
	ui.formState.Reset()
	ui.notices.ClearAll()
	ui.entryGroup.Reset()

	for _, entry := range ui.entries {
		entry.SetText("")
	}
	for _, sel := range ui.selects {
		sel.ClearSelected()
	}
	ui.otherRoleRow.Hide()

	log.Printf("Form reset after completed submission")
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	log.Printf("onRevealFile called for path: %s", filePath)

	if filePath == "" {
		log.Printf("Error: onRevealFile called with empty filePath")
		return
	}

	err := platform.OpenFileInManager(filePath)
	if err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.notices.Notify(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}

	log.Printf("File revealed successfully: %s", filePath)
}

// onOpenFile handles opening a generated document with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	log.Printf("onOpenFile called for path: %s", filePath)

	if filePath == "" {
		log.Printf("Error: onOpenFile called with empty filePath")
		return
	}

	err := platform.OpenFileWithDefaultApp(filePath)
	if err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		ui.notices.Notify(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}

	log.Printf("File opened successfully: %s", filePath)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	dialog := NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved)
	dialog.Show()
}

// onSettingsSaved applies saved settings: the server client is rebuilt so
// the address and timeout take effect on the next submission
func (ui *RootUI) onSettingsSaved() {
	if ui.orchestrator.State() != model.StateIdle {
		log.Printf("Settings saved mid-submission, client rebuild deferred to next launch")
		return
	}

	ui.apiClient = client.New(
		ui.settings.GetServerURL(),
		time.Duration(ui.settings.GetRequestTimeout())*time.Second,
	)
	ui.orchestrator = submit.New(ui.formState, ui.apiClient, ui.hooks())

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	log.Printf("Settings applied, server %s", ui.settings.GetServerURL())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update UI elements
	if ui.orchestrator.State() == model.StateIdle {
		ui.submitBtn.SetText(ui.localization.GetText(KeySubmit))
	}
	for textKey, label := range ui.captions {
		label.SetText(ui.localization.GetText(textKey))
	}
	for _, sel := range ui.selects {
		sel.PlaceHolder = ui.localization.GetText(KeySelectOption)
		sel.Refresh()
	}
}
