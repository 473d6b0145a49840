package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/termoapp/termo-desk/internal/client"
	"github.com/termoapp/termo-desk/internal/config"
	"github.com/termoapp/termo-desk/internal/form"
	"github.com/termoapp/termo-desk/internal/platform"
	"github.com/termoapp/termo-desk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.termoapp.termo-desk"
	AppName = "Termo de Entrega"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowMinWidth, ui.WindowMinHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		fmt.Printf("failed to ensure documents dir: %v\n", err)
	}

	apiClient := client.New(
		settings.GetServerURL(),
		time.Duration(settings.GetRequestTimeout())*time.Second,
	)
	formState := form.NewState()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, formState, apiClient)

	// Show and run
	myWindow.ShowAndRun()
}
