package recordnorm

import (
	"strconv"
	"strings"
)

// pointer is a JSON Pointer under construction; nil is the whole document
// (""). Segments are shared with the parent so descending costs one
// allocation and rendering only happens when an issue is reported.
type pointer struct {
	parent *pointer
	token  string
}

func (p *pointer) field(name string) *pointer {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pointer{parent: p, token: esc}
}

func (p *pointer) index(i int) *pointer {
	return &pointer{parent: p, token: strconv.Itoa(i)}
}

func (p *pointer) String() string {
	var parts []string
	for q := p; q != nil; q = q.parent {
		parts = append(parts, q.token)
	}
	if len(parts) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}
