package dropzone

import (
	"testing"

	"dropzone/internal/errors"
	"dropzone/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T, opts Options) *Container {
	t.Helper()
	if opts.LabelText == "" {
		opts.LabelText = "Drop files here"
	}
	if opts.IDs == nil {
		opts.IDs = &types.SequenceGenerator{Prefix: "dz"}
	}
	c, err := New(opts)
	require.NoError(t, err)
	return c
}

func TestNewRequiresLabelText(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New(Options{LabelText: "Drop files here", Pattern: `([`})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidPattern(err))
}

func TestNewGeneratesDistinctIDs(t *testing.T) {
	c := newTestContainer(t, Options{IDs: &types.SequenceGenerator{Prefix: "dz"}})

	assert.Equal(t, "dz-1", c.LabelID())
	assert.Equal(t, "dz-2", c.InputID())

	// Default generator still yields distinct IDs
	d := newTestContainer(t, Options{IDs: types.UUIDGenerator{}})
	assert.NotEmpty(t, d.LabelID())
	assert.NotEmpty(t, d.InputID())
	assert.NotEqual(t, d.LabelID(), d.InputID())
}

func TestDragEnterLeave(t *testing.T) {
	c := newTestContainer(t, Options{})

	c.DragEnter()
	assert.Equal(t, StateActive, c.State())

	c.DragLeave()
	assert.Equal(t, StateIdle, c.State())
}

func TestDragEnterLeaveFiresNoCallback(t *testing.T) {
	calls := 0
	c := newTestContainer(t, Options{
		OnAddFiles: func(types.TransferEvent, []types.Verdict) { calls++ },
	})

	c.DragEnter()
	c.DragLeave()
	c.DragEnter()

	assert.Zero(t, calls, "drag transitions must not deliver files")
}

func TestDropClassifiesAndNotifies(t *testing.T) {
	var gotEvent types.TransferEvent
	var gotVerdicts []types.Verdict
	calls := 0

	c := newTestContainer(t, Options{
		Accept: types.AcceptList{".png", "image/jpeg"},
		OnAddFiles: func(event types.TransferEvent, added []types.Verdict) {
			calls++
			gotEvent = event
			gotVerdicts = added
		},
	})

	event := types.NewTransferEvent([]types.FileDescriptor{
		{Name: "a.png"},
		{Name: "b.txt", MIMEType: "text/plain"},
		{Name: "c.jpg", MIMEType: "image/jpeg"},
	})

	c.DragEnter()
	c.Drop(event)

	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, 1, calls)
	assert.Same(t, event, gotEvent)
	assert.True(t, event.DefaultPrevented)
	assert.False(t, event.Propagation)

	require.Len(t, gotVerdicts, 3)
	assert.False(t, gotVerdicts[0].Rejected())
	assert.True(t, gotVerdicts[1].Rejected())
	assert.Equal(t, types.ReasonInvalidFileType, gotVerdicts[1].Reason)
	assert.False(t, gotVerdicts[2].Rejected())
}

func TestDropWhileDisabledIsIgnored(t *testing.T) {
	calls := 0
	c := newTestContainer(t, Options{
		Disabled:   true,
		OnAddFiles: func(types.TransferEvent, []types.Verdict) { calls++ },
	})

	event := types.NewTransferEvent([]types.FileDescriptor{{Name: "a.png"}})

	c.DragEnter()
	assert.Equal(t, StateIdle, c.State())

	c.Drop(event)
	assert.Zero(t, calls)
	assert.False(t, event.DefaultPrevented, "ignored drops keep default handling")
	assert.True(t, event.Propagation)
}

func TestClickRunsCallbackThenSelector(t *testing.T) {
	var order []string
	c := newTestContainer(t, Options{
		OnClick:      func() { order = append(order, "click") },
		OpenSelector: func() { order = append(order, "selector") },
	})

	c.Click()
	assert.Equal(t, []string{"click", "selector"}, order)

	order = nil
	c.Activate()
	assert.Equal(t, []string{"click", "selector"}, order)
}

func TestClickWhileDisabledIsIgnored(t *testing.T) {
	opened := false
	clicked := false
	c := newTestContainer(t, Options{
		Disabled:     true,
		OnClick:      func() { clicked = true },
		OpenSelector: func() { opened = true },
	})

	c.Click()
	c.Activate()

	assert.False(t, clicked)
	assert.False(t, opened)
}

func TestChangeNotifiesAndResetsInputValue(t *testing.T) {
	calls := 0
	var seenValue string

	c := newTestContainer(t, Options{
		Accept: types.AcceptList{".png"},
		IDs:    &types.SequenceGenerator{Prefix: "dz"},
	})
	c.opts.OnAddFiles = func(types.TransferEvent, []types.Verdict) {
		calls++
		seenValue = c.InputValue()
	}

	event := types.NewTransferEvent([]types.FileDescriptor{{Name: "a.png"}})
	c.Change(event)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "a.png", seenValue, "value holds the selection while the callback runs")
	assert.Empty(t, c.InputValue(), "value resets so re-selecting the same file notifies again")

	// Selecting the identical file again fires again
	c.Change(types.NewTransferEvent([]types.FileDescriptor{{Name: "a.png"}}))
	assert.Equal(t, 2, calls)
}

func TestChangeWhileDisabledIsIgnored(t *testing.T) {
	calls := 0
	c := newTestContainer(t, Options{
		Disabled:   true,
		OnAddFiles: func(types.TransferEvent, []types.Verdict) { calls++ },
	})

	c.Change(types.NewTransferEvent([]types.FileDescriptor{{Name: "a.png"}}))
	assert.Zero(t, calls)
}

func TestSetDisabledToggles(t *testing.T) {
	c := newTestContainer(t, Options{})

	c.DragEnter()
	c.SetDisabled(true)
	assert.True(t, c.Disabled())
	assert.Equal(t, StateIdle, c.State())

	c.SetDisabled(false)
	c.DragEnter()
	assert.Equal(t, StateActive, c.State())
}

func TestSetAccept(t *testing.T) {
	c := newTestContainer(t, Options{Accept: types.AcceptList{".png"}})

	require.NoError(t, c.SetAccept(types.AcceptList{".txt"}))

	var verdicts []types.Verdict
	c.opts.OnAddFiles = func(_ types.TransferEvent, added []types.Verdict) { verdicts = added }
	c.Drop(types.NewTransferEvent([]types.FileDescriptor{{Name: "notes.txt"}}))

	require.Len(t, verdicts, 1)
	assert.False(t, verdicts[0].Rejected())

	err := c.SetAccept(types.AcceptList{""})
	require.Error(t, err)
}

func TestOptionAccessors(t *testing.T) {
	c := newTestContainer(t, Options{
		LabelText: "Drop invoices here",
		Multiple:  true,
		Name:      "invoices",
	})

	assert.Equal(t, "Drop invoices here", c.LabelText())
	assert.True(t, c.Multiple())
	assert.Equal(t, "invoices", c.Name())
}
