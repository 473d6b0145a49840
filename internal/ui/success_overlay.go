package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShowSuccessOverlay presents the post-submission overlay: confirmation,
// the saved path and reveal/open actions. It dismisses itself after a
// fixed delay and calls onDismiss exactly once, whether the user closed it
// or the timer did.
func ShowSuccessOverlay(window fyne.Window, localization *Localization, path string, onReveal, onOpen func(string), onDismiss func()) {
	titleLabel := widget.NewLabel(IconSuccess + " " + localization.GetText(KeySuccessTitle))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	pathLabel := widget.NewLabel(localization.GetText(KeySuccessSaved) + ": " + path)
	pathLabel.Wrapping = fyne.TextWrapWord

	revealBtn := widget.NewButton(localization.GetText(KeyReveal), func() { onReveal(path) })
	revealBtn.Importance = widget.HighImportance
	openBtn := widget.NewButton(localization.GetText(KeyOpen), func() { onOpen(path) })

	var popup *widget.PopUp
	dismissed := make(chan struct{})
	dismiss := func() {
		select {
		case <-dismissed:
			return
		default:
			close(dismissed)
		}
		popup.Hide()
		if onDismiss != nil {
			onDismiss()
		}
	}

	closeBtn := widget.NewButton(IconClose, dismiss)
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		pathLabel,
		container.NewHBox(revealBtn, openBtn),
	)

	popup = widget.NewModalPopUp(content, window.Canvas())
	popup.Resize(fyne.NewSize(SuccessOverlayWidth, SuccessOverlayHeight))
	popup.Show()

	log.Printf("Success overlay shown for %s", path)

	go func() {
		select {
		case <-time.After(SuccessOverlayAutoHide):
			fyne.Do(dismiss)
		case <-dismissed:
		}
	}()
}
