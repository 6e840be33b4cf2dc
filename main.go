package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/jobpdf/internal/config"
	"github.com/ytget/jobpdf/internal/download"
	"github.com/ytget/jobpdf/internal/platform"
	"github.com/ytget/jobpdf/internal/render"
	"github.com/ytget/jobpdf/internal/session"
	"github.com/ytget/jobpdf/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.jobpdf"
	AppName = "Job Description PDF Downloader"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	settings := config.NewSettings()

	renderer, err := render.New(settings.GetRenderer(), render.Options{
		WkhtmltopdfPath: settings.GetWkhtmltopdfPath(),
		ChromePath:      settings.GetChromePath(),
	})
	if err != nil {
		log.Fatalf("failed to configure renderer: %v", err)
	}
	if err := renderer.Available(); err != nil {
		// Not fatal: the user gets the install hint on the first download
		log.Printf("Warning: %s", render.InstallHint(renderer))
	}

	convertSvc := download.NewService(renderer, settings.GetOutputDirectory())
	convertSvc.SetRenderTimeout(settings.GetRenderTimeout())

	titleSvc := platform.NewPageTitleService()
	titleSvc.SetTimeout(settings.GetTitleTimeout())

	controller := session.NewController(convertSvc, platform.NewDesktop())

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAppTheme())
	myApp.SetIcon(ui.AppIconResource())

	myWindow := myApp.NewWindow(AppName)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, controller, titleSvc, settings)
	myWindow.SetOnClosed(rootUI.Shutdown)

	// Show and run
	myWindow.ShowAndRun()
}
