package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/termoapp/termo-desk/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverURLEntry   *widget.Entry
	timeoutEntry     *widget.Entry
	downloadDirEntry *widget.Entry
	autoRevealCheck  *widget.Check
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Server address
	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)

	// Request timeout in seconds
	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.DefaultRequestTimeout))

	// Documents directory selection
	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Reveal after generation
	sd.autoRevealCheck = widget.NewCheck(sd.localization.GetText(KeyAutoReveal), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeySelectOption)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyServerURL)+":"),
		sd.serverURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(sd.localization.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		sd.autoRevealCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 400))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeout()))
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.serverURLEntry.Text != "" {
		sd.settings.SetServerURL(sd.serverURLEntry.Text)
	}

	if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetRequestTimeout(seconds)
	}

	if sd.downloadDirEntry.Text != "" {
		sd.settings.SetDownloadDirectory(sd.downloadDirEntry.Text)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
