package gui

import (
	"testing"

	"dropzone/internal/dropzone"
	"dropzone/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTarget(t *testing.T, opts dropzone.Options) *DropTarget {
	t.Helper()
	if opts.LabelText == "" {
		opts.LabelText = "Drop files here"
	}
	zone, err := dropzone.New(opts)
	require.NoError(t, err)
	return NewDropTarget(zone)
}

func TestTappedOpensSelector(t *testing.T) {
	test.NewApp()

	opened := false
	target := newTestTarget(t, dropzone.Options{
		OpenSelector: func() { opened = true },
	})

	test.Tap(target)
	assert.True(t, opened)
}

func TestKeyboardActivation(t *testing.T) {
	test.NewApp()

	activations := 0
	target := newTestTarget(t, dropzone.Options{
		OpenSelector: func() { activations++ },
	})

	target.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	target.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEnter})
	target.TypedRune(' ')
	assert.Equal(t, 3, activations)

	// Unrelated keys do nothing
	target.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	target.TypedRune('x')
	assert.Equal(t, 3, activations)
}

func TestDragHighlight(t *testing.T) {
	test.NewApp()

	target := newTestTarget(t, dropzone.Options{})

	target.DragEnter()
	assert.Equal(t, dropzone.StateActive, target.Zone().State())
	assert.Equal(t, target.accentColor, target.border.StrokeColor)

	target.DragLeave()
	assert.Equal(t, dropzone.StateIdle, target.Zone().State())
	assert.Equal(t, target.idleColor, target.border.StrokeColor)
}

func TestFocusHighlight(t *testing.T) {
	test.NewApp()

	target := newTestTarget(t, dropzone.Options{})

	target.FocusGained()
	assert.Equal(t, target.accentColor, target.border.StrokeColor)

	target.FocusLost()
	assert.Equal(t, target.idleColor, target.border.StrokeColor)
}

func TestDropForwardsVerdicts(t *testing.T) {
	test.NewApp()

	var verdicts []types.Verdict
	target := newTestTarget(t, dropzone.Options{
		Accept: types.AcceptList{".png"},
		OnAddFiles: func(_ types.TransferEvent, added []types.Verdict) {
			verdicts = added
		},
	})

	target.DragEnter()
	target.Drop(types.NewTransferEvent([]types.FileDescriptor{
		{Name: "a.png"},
		{Name: "b.txt", MIMEType: "text/plain"},
	}))

	assert.Equal(t, dropzone.StateIdle, target.Zone().State())
	assert.Equal(t, target.idleColor, target.border.StrokeColor)
	require.Len(t, verdicts, 2)
	assert.False(t, verdicts[0].Rejected())
	assert.True(t, verdicts[1].Rejected())
}

func TestSetDisabled(t *testing.T) {
	test.NewApp()

	opened := false
	target := newTestTarget(t, dropzone.Options{
		OpenSelector: func() { opened = true },
	})

	target.SetDisabled(true)
	test.Tap(target)
	target.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.False(t, opened)

	target.DragEnter()
	assert.Equal(t, dropzone.StateIdle, target.Zone().State())
	assert.Equal(t, target.idleColor, target.border.StrokeColor)
}

func TestMinSize(t *testing.T) {
	test.NewApp()

	target := newTestTarget(t, dropzone.Options{})
	size := target.MinSize()
	assert.GreaterOrEqual(t, size.Width, float32(280))
	assert.GreaterOrEqual(t, size.Height, float32(120))
}

func TestDescriptorsFromURIs(t *testing.T) {
	uris := []fyne.URI{
		storage.NewFileURI("/tmp/photo.png"),
		storage.NewFileURI("/tmp/archive"),
	}

	files := DescriptorsFromURIs(uris)
	require.Len(t, files, 2)

	assert.Equal(t, "photo.png", files[0].Name)
	assert.Equal(t, "image/png", files[0].MIMEType)
	assert.Equal(t, "archive", files[1].Name)
}
