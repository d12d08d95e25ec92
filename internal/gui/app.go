package gui

import (
	"fmt"
	"image/color"
	"strings"

	"dropzone/internal/config"
	"dropzone/internal/dropzone"
	"dropzone/internal/log"
	"dropzone/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI demo application hosting one drop target.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config

	target  *DropTarget
	zone    *dropzone.Container
	dropped []types.Verdict
	results *widget.List
	status  *widget.Label

	// Theme settings
	accentColor color.NRGBA
	bgColor     color.NRGBA
}

// NewApp creates the demo application around the configured drop zone.
func NewApp(cfg *config.Config) (*App, error) {
	fyneApp := app.NewWithID("io.github.dropzone")

	a := &App{
		fyneApp:     fyneApp,
		cfg:         cfg,
		accentColor: color.NRGBA{R: 255, G: 165, B: 0, A: 255},
		bgColor:     color.NRGBA{R: 16, G: 16, B: 16, A: 255},
	}

	a.mainWindow = a.fyneApp.NewWindow("Dropzone")

	zone, err := dropzone.New(dropzone.Options{
		Accept:    cfg.AcceptList(),
		Disabled:  cfg.Settings.Disabled,
		LabelText: cfg.Settings.LabelText,
		Multiple:  cfg.Settings.Multiple,
		Name:      cfg.Settings.Name,
		Pattern:   cfg.Accept.Pattern,
		OnAddFiles: func(_ types.TransferEvent, added []types.Verdict) {
			a.appendVerdicts(added)
		},
		OnClick: func() {
			log.Debugf("drop target clicked")
		},
		OpenSelector: func() {
			a.openFilePicker()
		},
	})
	if err != nil {
		return nil, err
	}

	a.zone = zone
	a.target = NewDropTarget(zone)

	return a, nil
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run starts the GUI application
func (a *App) Run() {
	a.setupMainWindow()

	a.mainWindow.Show()

	a.fyneApp.Run()
}

// setupMainWindow sets up the main window content
func (a *App) setupMainWindow() {
	a.mainWindow.Resize(fyne.NewSize(640, 480))

	title := canvas.NewText("Dropzone", a.accentColor)
	title.TextStyle.Bold = true
	title.TextSize = 22
	title.Alignment = fyne.TextAlignCenter

	acceptSummary := widget.NewLabelWithStyle(
		a.describeAcceptList(), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	a.results = widget.NewList(
		func() int {
			return len(a.dropped)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.ConfirmIcon()),
				widget.NewLabel("Template file name"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(a.dropped) {
				return
			}

			verdict := a.dropped[id]
			icon := obj.(*fyne.Container).Objects[0].(*widget.Icon)
			label := obj.(*fyne.Container).Objects[1].(*widget.Label)

			if verdict.Rejected() {
				icon.SetResource(theme.ErrorIcon())
				label.SetText(fmt.Sprintf("%s — %s", verdict.File.Name, verdict.Reason))
			} else {
				icon.SetResource(theme.ConfirmIcon())
				label.SetText(verdict.File.String())
			}
		},
	)

	a.status = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{})
	a.updateStatus()

	clearButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		a.dropped = nil
		a.results.Refresh()
		a.updateStatus()
	})

	statusBar := container.NewHBox(
		a.status,
		layout.NewSpacer(),
		clearButton,
	)

	content := container.NewBorder(
		container.NewVBox(
			title,
			acceptSummary,
			canvas.NewLine(a.accentColor),
		),
		statusBar,
		nil,
		nil,
		container.NewVSplit(
			container.NewPadded(a.target),
			container.NewScroll(a.results),
		),
	)

	a.mainWindow.SetContent(content)

	// Window-level drops are the only drop surface fyne exposes, so
	// every drop on the window lands in the target
	a.mainWindow.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		a.target.Drop(types.NewTransferEvent(DescriptorsFromURIs(uris)))
	})

	a.mainWindow.Canvas().Focus(a.target)
}

// openFilePicker shows the native file-open dialog and feeds the
// selection through the container's change path.
func (a *App) openFilePicker() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.ShowError("File selection failed", err)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		defer reader.Close()

		files := DescriptorsFromURIs([]fyne.URI{reader.URI()})
		a.zone.Change(types.NewTransferEvent(files))
	}, a.mainWindow)
	fileDialog.Show()
}

func (a *App) appendVerdicts(added []types.Verdict) {
	a.dropped = append(a.dropped, added...)
	rejected := 0
	for _, v := range added {
		if v.Rejected() {
			rejected++
		}
	}
	if rejected > 0 {
		a.ShowNotification("Invalid files", fmt.Sprintf("%d of %d files have an invalid type", rejected, len(added)))
	}
	if a.results != nil {
		a.results.Refresh()
	}
	a.updateStatus()
}

func (a *App) updateStatus() {
	if a.status == nil {
		return
	}
	rejected := 0
	for _, v := range a.dropped {
		if v.Rejected() {
			rejected++
		}
	}
	a.status.SetText(fmt.Sprintf("%d files, %d invalid", len(a.dropped), rejected))
}

func (a *App) describeAcceptList() string {
	accept := a.cfg.AcceptList()
	if accept.Empty() {
		return "All file types accepted"
	}
	return "Accepts: " + strings.Join([]string(accept), ", ")
}

// ShowError displays an error dialog
func (a *App) ShowError(title string, err error) {
	if err == nil {
		return
	}
	dialog.ShowError(err, a.mainWindow)

	a.ShowNotification("Error: "+title, err.Error())
}

// ShowNotification displays a system notification if enabled
func (a *App) ShowNotification(title, content string) {
	if a.cfg.Settings.EnableNotifications {
		a.fyneApp.SendNotification(fyne.NewNotification(title, content))
	}
}
