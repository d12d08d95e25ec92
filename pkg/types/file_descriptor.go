package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileDescriptor describes one candidate file handed to the drop zone.
// The MIME type may be empty; hosts that cannot determine it pass "".
type FileDescriptor struct {
	Name     string `json:"name"`
	MIMEType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// Ext returns the trailing dot-extension of the file name, or "" if the
// name has none. Classification uses the configured extension pattern
// instead; this is a convenience for display code.
func (f FileDescriptor) Ext() string {
	return filepath.Ext(f.Name)
}

// String returns a human-readable representation
func (f FileDescriptor) String() string {
	var sb strings.Builder
	sb.WriteString(f.Name)
	if f.MIMEType != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", f.MIMEType))
	}
	return sb.String()
}
