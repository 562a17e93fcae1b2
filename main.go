package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/orpheus-gui/internal/command"
	"github.com/ytget/orpheus-gui/internal/config"
	"github.com/ytget/orpheus-gui/internal/download"
	"github.com/ytget/orpheus-gui/internal/platform"
	"github.com/ytget/orpheus-gui/internal/provider"
	"github.com/ytget/orpheus-gui/internal/provider/orpheus"
	"github.com/ytget/orpheus-gui/internal/provider/youtube"
	"github.com/ytget/orpheus-gui/internal/queue"
	"github.com/ytget/orpheus-gui/internal/search"
	"github.com/ytget/orpheus-gui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.orpheus-gui"
	AppName = "Orpheus GUI"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err != nil {
		log.Printf("Failed to load app icon: %v", err)
	} else {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	baseDir := settings.GetBaseDirectory()

	python := settings.GetPythonCommand()
	if python == config.DefaultPythonCommand {
		if found, err := platform.FindPython(); err == nil {
			python = found
		}
	}

	client := orpheus.NewClient(baseDir, python)
	if err := client.Validate(); err != nil {
		log.Printf("OrpheusDL not available, built-in modules only: %v", err)
	}

	registry := provider.NewRegistry(client)
	registry.Register(youtube.NewBackend())

	rootUI := ui.NewRootUI(myWindow, myApp, ui.Services{
		Settings: settings,
		Store:    config.NewStore(baseDir),
		Search:   search.NewService(registry),
		Builtins: registry.Builtins(),
		Queue:    queue.NewStore(),
		Batch:    download.NewService(registry),
		Runner:   command.NewRunner(),
	})
	defer rootUI.Close()

	myWindow.ShowAndRun()
}
