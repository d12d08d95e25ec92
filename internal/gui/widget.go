package gui

import (
	"image/color"
	"mime"
	"path/filepath"

	"dropzone/internal/dropzone"
	"dropzone/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DropTarget is the fyne widget face of a dropzone.Container. It
// renders the accessible label inside a dashed-look border whose color
// follows the drag state, and forwards taps and Enter/Space key
// presses to the container's activation path.
type DropTarget struct {
	widget.BaseWidget

	zone   *dropzone.Container
	label  *widget.Label
	border *canvas.Rectangle

	accentColor color.NRGBA
	idleColor   color.NRGBA
	focused     bool
}

// NewDropTarget wraps a container in a renderable widget.
func NewDropTarget(zone *dropzone.Container) *DropTarget {
	d := &DropTarget{
		zone:        zone,
		accentColor: color.NRGBA{R: 255, G: 165, B: 0, A: 255},
		idleColor:   color.NRGBA{R: 110, G: 110, B: 110, A: 255},
	}

	d.label = widget.NewLabel(zone.LabelText())
	d.label.Alignment = fyne.TextAlignCenter
	d.label.Wrapping = fyne.TextWrapWord

	d.border = canvas.NewRectangle(color.Transparent)
	d.border.StrokeColor = d.idleColor
	d.border.StrokeWidth = 2
	d.border.CornerRadius = 8

	d.ExtendBaseWidget(d)
	return d
}

// Zone returns the wrapped container.
func (d *DropTarget) Zone() *dropzone.Container {
	return d.zone
}

// CreateRenderer builds the widget's visual tree.
func (d *DropTarget) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewStack(
		d.border,
		container.NewPadded(container.NewCenter(d.label)),
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps the target large enough to hit comfortably.
func (d *DropTarget) MinSize() fyne.Size {
	min := d.BaseWidget.MinSize()
	return fyne.NewSize(fyne.Max(min.Width, 280), fyne.Max(min.Height, 120))
}

// Tapped activates the container's click path.
func (d *DropTarget) Tapped(_ *fyne.PointEvent) {
	d.zone.Click()
}

// FocusGained highlights the border while the widget holds focus.
func (d *DropTarget) FocusGained() {
	d.focused = true
	d.refreshBorder()
}

// FocusLost removes the focus highlight.
func (d *DropTarget) FocusLost() {
	d.focused = false
	d.refreshBorder()
}

// TypedRune treats a space press as keyboard activation.
func (d *DropTarget) TypedRune(r rune) {
	if r == ' ' {
		d.zone.Activate()
	}
}

// TypedKey treats Enter and Return as keyboard activation.
func (d *DropTarget) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter, fyne.KeySpace:
		d.zone.Activate()
	}
}

// DragEnter marks the target active while a drag hovers it.
func (d *DropTarget) DragEnter() {
	d.zone.DragEnter()
	d.refreshBorder()
}

// DragLeave returns the target to idle when the drag moves away.
func (d *DropTarget) DragLeave() {
	d.zone.DragLeave()
	d.refreshBorder()
}

// Drop hands a completed drop gesture to the container.
func (d *DropTarget) Drop(ev types.TransferEvent) {
	d.zone.Drop(ev)
	d.refreshBorder()
}

// SetDisabled freezes or unfreezes the target.
func (d *DropTarget) SetDisabled(disabled bool) {
	d.zone.SetDisabled(disabled)
	d.refreshBorder()
}

func (d *DropTarget) refreshBorder() {
	switch {
	case d.zone.State() == dropzone.StateActive, d.focused:
		d.border.StrokeColor = d.accentColor
	default:
		d.border.StrokeColor = d.idleColor
	}
	d.border.Refresh()
}

// DescriptorsFromURIs converts dropped fyne URIs to file descriptors.
// The MIME type comes from the URI when the toolkit knows it, otherwise
// from the extension table.
func DescriptorsFromURIs(uris []fyne.URI) []types.FileDescriptor {
	files := make([]types.FileDescriptor, 0, len(uris))
	for _, u := range uris {
		mimeType := u.MimeType()
		if mimeType == "" || mimeType == "application/octet-stream" {
			if byExt := mime.TypeByExtension(filepath.Ext(u.Name())); byExt != "" {
				mimeType = byExt
			}
		}
		files = append(files, types.FileDescriptor{
			Name:     u.Name(),
			MIMEType: mimeType,
		})
	}
	return files
}
