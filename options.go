package recordnorm

import "github.com/reoring/recordnorm/jsonschema"

// CustomFunc is the extension point enabled by CustomSchemaNormalization. It
// receives the current value and its reference-resolved schema node, and
// returns a replacement with ok=true, or ok=false to leave the value to the
// default policy.
type CustomFunc func(value any, node *jsonschema.Node) (replacement any, ok bool)

// IssueHandler observes fields the transformer skipped. It is called
// synchronously from Transform.
type IssueHandler func(Issue)

// Option configures a Transformer.
type Option func(*Transformer)

// WithCustomNormalizer installs the callback used when
// CustomSchemaNormalization is set. It is ignored otherwise.
func WithCustomNormalizer(fn CustomFunc) Option {
	return func(t *Transformer) { t.custom = fn }
}

// WithIssueHandler installs an observer for skipped fields. A handler shared
// between concurrent Transform calls must be safe for concurrent use.
func WithIssueHandler(h IssueHandler) Option {
	return func(t *Transformer) { t.onIssue = h }
}

// WithMaxRefDepth bounds the number of references followed for a single
// node. n <= 0 keeps jsonschema.DefaultMaxRefDepth.
func WithMaxRefDepth(n int) Option {
	return func(t *Transformer) {
		if n > 0 {
			t.maxRefDepth = n
		}
	}
}
