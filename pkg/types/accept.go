package types

// AcceptList is the configured set of permitted MIME types and file
// extensions for upload. Each entry is either a MIME type (e.g.
// "image/png"), a MIME wildcard (e.g. "image/*") or an extension token
// (e.g. ".png"). An empty list accepts everything.
type AcceptList []string

// Empty reports whether no accept entries are configured.
func (a AcceptList) Empty() bool {
	return len(a) == 0
}

// Contains reports whether the exact entry is present.
func (a AcceptList) Contains(entry string) bool {
	for _, e := range a {
		if e == entry {
			return true
		}
	}
	return false
}
