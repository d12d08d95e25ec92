// Package classify implements accept-list classification of candidate
// upload files. Classification annotates; it never filters accepted
// files out, so callers can surface invalid selections to the user
// instead of silently losing them.
package classify

import (
	"regexp"
	"strings"

	"dropzone/internal/config"
	"dropzone/internal/errors"
	"dropzone/internal/log"
	"dropzone/pkg/types"

	"github.com/gobwas/glob"
)

// DefaultExtensionPattern matches a trailing dot-extension,
// case-insensitively.
const DefaultExtensionPattern = config.DefaultExtensionPattern

// Engine classifies files against an accept list. An Engine with an
// empty accept list accepts everything. Engines are immutable after the
// Set* calls complete; Classify itself is pure and safe for concurrent
// use.
type Engine struct {
	accept  types.AcceptList
	exact   map[string]struct{} // raw entries, for case-sensitive MIME matching
	lowered map[string]struct{} // lowercased entries, for extension matching
	globs   []glob.Glob         // wildcard entries, matched against the MIME type
	pattern *regexp.Regexp
}

// New creates an Engine with an empty accept list and the default
// extension pattern.
func New() *Engine {
	e := &Engine{}
	// The default pattern is a constant and always compiles
	_ = e.SetPattern(DefaultExtensionPattern)
	_ = e.SetAcceptList(nil)
	return e
}

// NewWithConfig creates an Engine from the application configuration.
func NewWithConfig(cfg *config.Config) (*Engine, error) {
	e := &Engine{}

	pattern := cfg.Accept.Pattern
	if pattern == "" {
		pattern = DefaultExtensionPattern
	}
	if err := e.SetPattern(pattern); err != nil {
		return nil, err
	}
	if err := e.SetAcceptList(cfg.AcceptList()); err != nil {
		return nil, err
	}
	return e, nil
}

// SetPattern compiles and installs the extension-extraction pattern.
func (e *Engine) SetPattern(expr string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return errors.NewRuleError("invalid extension pattern", expr, errors.InvalidPattern, err)
	}
	e.pattern = re
	return nil
}

// SetAcceptList compiles and installs the accept entries. Entries
// containing glob metacharacters (such as "image/*") are matched
// against the MIME type as wildcards; all other entries keep exact
// semantics.
func (e *Engine) SetAcceptList(list types.AcceptList) error {
	exact := make(map[string]struct{}, len(list))
	lowered := make(map[string]struct{}, len(list))
	var globs []glob.Glob

	for _, entry := range list {
		if entry == "" {
			return errors.NewRuleError("invalid accept rule", entry, errors.InvalidRule, nil)
		}
		if strings.ContainsAny(entry, "*?[{") {
			matcher, err := glob.Compile(entry)
			if err != nil {
				return errors.NewRuleError("invalid accept rule", entry, errors.InvalidRule, err)
			}
			globs = append(globs, matcher)
			continue
		}
		exact[entry] = struct{}{}
		lowered[strings.ToLower(entry)] = struct{}{}
	}

	e.accept = list
	e.exact = exact
	e.lowered = lowered
	e.globs = globs
	log.Debugf("accept list compiled: %d exact, %d wildcard entries", len(exact), len(globs))
	return nil
}

// AcceptList returns the configured accept entries.
func (e *Engine) AcceptList() types.AcceptList {
	return e.accept
}

// Classify partitions the candidate files into verdicts, preserving
// input order. With an empty accept list every file is accepted and no
// pattern matching occurs. Otherwise each file whose name yields an
// extension is kept, accepted when its MIME type or extension is
// permitted and rejected when neither is; files whose names the pattern
// cannot match are excluded from the result entirely.
func (e *Engine) Classify(files []types.FileDescriptor) []types.Verdict {
	if e.accept.Empty() {
		verdicts := make([]types.Verdict, 0, len(files))
		for _, f := range files {
			verdicts = append(verdicts, types.Accept(f))
		}
		return verdicts
	}

	verdicts := make([]types.Verdict, 0, len(files))
	for _, f := range files {
		loc := e.pattern.FindStringIndex(f.Name)
		if loc == nil {
			// No recognizable extension: excluded, not flagged
			log.Debugf("skipping %q: extension pattern did not match", f.Name)
			continue
		}
		ext := f.Name[loc[0]:loc[1]]
		if e.permits(f.MIMEType, ext) {
			verdicts = append(verdicts, types.Accept(f))
		} else {
			verdicts = append(verdicts, types.Reject(f, types.ReasonInvalidFileType))
		}
	}
	return verdicts
}

// permits reports whether the MIME type (case-sensitive) or the
// extension (case-insensitive) is covered by the accept list.
func (e *Engine) permits(mimeType, ext string) bool {
	if _, ok := e.exact[mimeType]; ok && mimeType != "" {
		return true
	}
	if _, ok := e.lowered[strings.ToLower(ext)]; ok {
		return true
	}
	for _, g := range e.globs {
		if mimeType != "" && g.Match(mimeType) {
			return true
		}
	}
	return false
}
