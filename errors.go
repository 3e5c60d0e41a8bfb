package recordnorm

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes reported to an IssueHandler. None of them fail a transform.
const (
	CodeAmbiguousType   = "ambiguous_type"
	CodeUnresolvedRef   = "unresolved_ref"
	CodeRefDepth        = "ref_depth_exceeded"
	CodeCoercionFailed  = "coercion_failed"
	CodeUnsupportedNode = "unsupported_node"
)

// Issue describes one field the transformer left untouched.
type Issue struct {
	Path    string // JSON Pointer into the record (for example: /items/2/price).
	Code    string
	Message string
	Cause   error
	// Params carries structured details such as the declared type set or the
	// target kind.
	Params map[string]any
}

func (it Issue) String() string {
	if it.Message == "" {
		return fmt.Sprintf("%s at %s", it.Code, it.Path)
	}
	return fmt.Sprintf("%s at %s: %s", it.Code, it.Path, it.Message)
}

// Issues is a collection of issues that implements error, handy for callers
// that collect skips and want to log them in one line.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Collect returns an IssueHandler that appends into dst. The handler is not
// safe for concurrent use; use one collector per Transform call.
func Collect(dst *Issues) IssueHandler {
	return func(it Issue) { *dst = append(*dst, it) }
}

// ErrConfig is matched by every *ConfigError via errors.Is.
var ErrConfig = errors.New("recordnorm: invalid configuration")

// ConfigError reports an invalid flag combination passed to New.
type ConfigError struct {
	Config Config
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("recordnorm: invalid configuration %s: %s", e.Config, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
