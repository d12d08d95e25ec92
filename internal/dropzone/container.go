// Package dropzone implements the framework-agnostic drop container:
// the drag-state machine, accept-list classification of dropped or
// selected files, and click/keyboard activation of the host file
// selector. UI toolkits wrap a Container and forward their native
// events through the types.TransferEvent interface.
package dropzone

import (
	"dropzone/internal/classify"
	"dropzone/internal/config"
	"dropzone/internal/errors"
	"dropzone/internal/log"
	"dropzone/pkg/types"
)

// AddFilesFunc receives the classified files of one drop or native
// selection gesture.
type AddFilesFunc func(event types.TransferEvent, added []types.Verdict)

// Options is the public configuration surface of the container.
// LabelText is required; every other field has a usable zero value.
type Options struct {
	// Accept lists permitted MIME types and extensions; empty accepts
	// everything.
	Accept types.AcceptList
	// Disabled freezes drag state and suppresses activation and drops.
	Disabled bool
	// LabelText is the accessible label. Required.
	LabelText string
	// Multiple is forwarded to the native file-selection input.
	Multiple bool
	// Name is forwarded to the native file-selection input.
	Name string
	// Pattern extracts extension tokens from file names. Defaults to
	// the trailing dot-extension pattern.
	Pattern string
	// OnAddFiles is invoked once per successful drop or native
	// selection with the classified file sequence.
	OnAddFiles AddFilesFunc
	// OnClick is invoked before the default click-to-open behavior;
	// both run.
	OnClick func()
	// OpenSelector opens the host's native file picker. Supplied by
	// the toolkit layer.
	OpenSelector func()
	// IDs generates the identifiers pairing the label with the input.
	// Defaults to a UUID generator.
	IDs types.IDGenerator
}

// Container is one drop-zone component instance. All methods must be
// called from the host UI thread; the host's event delivery serializes
// them.
type Container struct {
	opts       Options
	machine    *Machine
	engine     *classify.Engine
	labelID    string
	inputID    string
	inputValue string
}

// New creates a container, supplying defaults for the accept list,
// pattern and ID generator so no nil guards are needed further in.
func New(opts Options) (*Container, error) {
	if opts.LabelText == "" {
		return nil, errors.NewConfigError("label text is required", "LabelText", errors.InvalidConfig, nil)
	}
	if opts.Pattern == "" {
		opts.Pattern = config.DefaultExtensionPattern
	}
	if opts.IDs == nil {
		opts.IDs = types.UUIDGenerator{}
	}

	engine := classify.New()
	if err := engine.SetPattern(opts.Pattern); err != nil {
		return nil, err
	}
	if err := engine.SetAcceptList(opts.Accept); err != nil {
		return nil, err
	}

	machine := NewMachine()
	machine.SetDisabled(opts.Disabled)

	return &Container{
		opts:    opts,
		machine: machine,
		engine:  engine,
		labelID: opts.IDs.NextID(),
		inputID: opts.IDs.NextID(),
	}, nil
}

// LabelID returns the generated identifier of the accessible label.
func (c *Container) LabelID() string { return c.labelID }

// InputID returns the generated identifier of the paired input.
func (c *Container) InputID() string { return c.inputID }

// LabelText returns the accessible label.
func (c *Container) LabelText() string { return c.opts.LabelText }

// Multiple reports whether multi-file selection is forwarded to the
// native input.
func (c *Container) Multiple() bool { return c.opts.Multiple }

// Name returns the name forwarded to the native input.
func (c *Container) Name() string { return c.opts.Name }

// State returns the current drag state.
func (c *Container) State() DragState { return c.machine.State() }

// Disabled reports whether the container is frozen.
func (c *Container) Disabled() bool { return c.machine.Disabled() }

// SetDisabled freezes or unfreezes the container.
func (c *Container) SetDisabled(disabled bool) {
	c.machine.SetDisabled(disabled)
}

// SetAccept replaces the accept list.
func (c *Container) SetAccept(accept types.AcceptList) error {
	if err := c.engine.SetAcceptList(accept); err != nil {
		return err
	}
	c.opts.Accept = accept
	return nil
}

// InputValue returns the stored native input value. It is cleared
// after every processed selection so picking the identical file set
// twice still notifies.
func (c *Container) InputValue() string { return c.inputValue }

// DragEnter handles a drag gesture entering the target.
func (c *Container) DragEnter() {
	if c.machine.Enter() {
		log.Debugf("drop target %s active", c.inputID)
	}
}

// DragLeave handles a drag gesture leaving the target.
func (c *Container) DragLeave() {
	if c.machine.Leave() {
		log.Debugf("drop target %s idle", c.inputID)
	}
}

// Drop handles a completed drop gesture: the drag state returns to
// idle, the transferred files are classified, and OnAddFiles is
// invoked with the verdicts. While disabled the event is ignored
// entirely and no callback fires.
func (c *Container) Drop(event types.TransferEvent) {
	if !c.machine.Drop() {
		return
	}
	event.PreventDefault()
	event.StopPropagation()
	c.addFiles(event)
}

// Click handles pointer activation: OnClick runs first, then the host
// file selector opens. Suppressed while disabled.
func (c *Container) Click() {
	if c.machine.Disabled() {
		return
	}
	if c.opts.OnClick != nil {
		c.opts.OnClick()
	}
	if c.opts.OpenSelector != nil {
		c.opts.OpenSelector()
	}
}

// Activate handles keyboard activation (Enter or Space while the
// control has focus); it performs the same action as Click.
func (c *Container) Activate() {
	c.Click()
}

// Change processes a native file-selection event. The stored input
// value is cleared after the callback runs; hosts normally suppress the
// change notification when the same file is picked twice in a row
// unless the value is reset.
func (c *Container) Change(event types.TransferEvent) {
	if c.machine.Disabled() {
		return
	}
	files := event.Files()
	if len(files) > 0 {
		c.inputValue = files[0].Name
	}
	c.addFiles(event)
	c.inputValue = ""
}

func (c *Container) addFiles(event types.TransferEvent) {
	verdicts := c.engine.Classify(event.Files())
	if c.opts.OnAddFiles != nil {
		c.opts.OnAddFiles(event, verdicts)
	}
}
