package types

// VerdictKind tags the outcome of classifying a single file.
type VerdictKind int

const (
	VerdictAccepted VerdictKind = iota
	VerdictRejected
)

// String returns the kind as a display word.
func (k VerdictKind) String() string {
	switch k {
	case VerdictAccepted:
		return "accepted"
	case VerdictRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// RejectReason explains why a file was rejected.
type RejectReason string

// ReasonInvalidFileType marks a file whose extension and MIME type are
// both absent from a non-empty accept list.
const ReasonInvalidFileType RejectReason = "invalid file type"

// Verdict is the classification result for a single file. Files are
// never removed by classification; each file with a recognizable
// extension appears in the output exactly once, either accepted or
// rejected with a reason. The input descriptor is carried by value, so
// callers' data is never mutated.
type Verdict struct {
	File   FileDescriptor
	Kind   VerdictKind
	Reason RejectReason // empty unless Kind is VerdictRejected
}

// Accept builds an accepted verdict for the file.
func Accept(f FileDescriptor) Verdict {
	return Verdict{File: f, Kind: VerdictAccepted}
}

// Reject builds a rejected verdict with the given reason.
func Reject(f FileDescriptor, reason RejectReason) Verdict {
	return Verdict{File: f, Kind: VerdictRejected, Reason: reason}
}

// Rejected reports whether the verdict flags the file as invalid.
func (v Verdict) Rejected() bool {
	return v.Kind == VerdictRejected
}
