package dropzone

// DragState tracks whether a file drag gesture is currently hovering
// the drop target.
type DragState int

const (
	// StateIdle means no drag gesture is over the target.
	StateIdle DragState = iota
	// StateActive means a drag gesture is hovering the target.
	StateActive
)

// String returns the state as a display word.
func (s DragState) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// Machine is the flat two-state drag machine. It has no queued
// transitions and no locking; the host toolkit delivers one UI event at
// a time, which serializes all transitions.
type Machine struct {
	state    DragState
	disabled bool
}

// NewMachine creates a machine in the idle state.
func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

// State returns the current drag state.
func (m *Machine) State() DragState {
	return m.state
}

// Disabled reports whether transitions are suppressed.
func (m *Machine) Disabled() bool {
	return m.disabled
}

// SetDisabled freezes or unfreezes the machine. Disabling forces the
// state back to idle so a target never stays highlighted.
func (m *Machine) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.state = StateIdle
	}
}

// Enter handles drag-enter. Reports whether the target became active.
func (m *Machine) Enter() bool {
	if m.disabled || m.state == StateActive {
		return false
	}
	m.state = StateActive
	return true
}

// Leave handles drag-leave. Reports whether the target became idle.
func (m *Machine) Leave() bool {
	if m.disabled || m.state == StateIdle {
		return false
	}
	m.state = StateIdle
	return true
}

// Drop handles a drop gesture: the state returns to idle and the caller
// may hand the transferred files off. Reports whether the drop should
// be processed; while disabled, drops are ignored entirely.
func (m *Machine) Drop() bool {
	if m.disabled {
		return false
	}
	m.state = StateIdle
	return true
}
