package types

// TransferEvent is the minimal capability surface the drop zone needs
// from a host toolkit's drop or file-selection event. Keeping the
// interface this narrow avoids a dependency on any particular UI
// framework's event types.
type TransferEvent interface {
	// Files returns the descriptors of the transferred files.
	Files() []FileDescriptor
	// PreventDefault suppresses the host's default handling.
	PreventDefault()
	// StopPropagation stops the event from bubbling in the host.
	StopPropagation()
}

// BasicTransferEvent is a plain TransferEvent implementation for hosts
// whose native events carry no default behavior of their own, and for
// tests.
type BasicTransferEvent struct {
	Transferred      []FileDescriptor
	DefaultPrevented bool
	Propagation      bool
}

// NewTransferEvent wraps a file list in a BasicTransferEvent.
func NewTransferEvent(files []FileDescriptor) *BasicTransferEvent {
	return &BasicTransferEvent{Transferred: files, Propagation: true}
}

// Files returns the transferred file list.
func (e *BasicTransferEvent) Files() []FileDescriptor {
	return e.Transferred
}

// PreventDefault records that default handling was suppressed.
func (e *BasicTransferEvent) PreventDefault() {
	e.DefaultPrevented = true
}

// StopPropagation records that bubbling was stopped.
func (e *BasicTransferEvent) StopPropagation() {
	e.Propagation = false
}
