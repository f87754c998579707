package probe

import (
	"fmt"
	"strings"

	"badger-probe/core/utils"

	"github.com/ohler55/ojg/jp"
)

// Body is a parsed JSON response with tolerant field access.
// Reads of absent or null fields never fail: they render as utils.Placeholder
// (or length 0) and are recorded so strict mode can report them.
type Body struct {
	value   any
	prefix  string
	missing *[]string
}

func newBody(value any) Body {
	return Body{value: value, missing: &[]string{}}
}

// Missing returns the fields that were read but absent, in read order.
func (b Body) Missing() []string {
	if b.missing == nil {
		return nil
	}
	return *b.missing
}

// Get returns the value at path, or nil when it is absent.
// path is dotted ("company.name"); the empty path is the body itself.
func (b Body) Get(path string) any {
	if path == "" {
		return b.value
	}
	x, err := jp.ParseString("$." + path)
	if err != nil {
		return nil
	}
	return x.First(b.value)
}

// Str renders the value at path for display.
func (b Body) Str(path string) string {
	v := b.Get(path)
	if v == nil {
		b.markMissing(path)
	}
	return utils.ToString(v)
}

// Len returns the length of the array at path, or 0 when it is absent or not an array.
func (b Body) Len(path string) int {
	list, ok := b.Get(path).([]any)
	if !ok {
		b.markMissing(path)
		return 0
	}
	return len(list)
}

// Items returns up to limit elements of the array at path; a negative limit means all.
func (b Body) Items(path string, limit int) []Body {
	list, ok := b.Get(path).([]any)
	if !ok {
		return nil
	}
	if limit >= 0 && len(list) > limit {
		list = list[:limit]
	}
	items := make([]Body, len(list))
	for i, v := range list {
		items[i] = Body{value: v, prefix: b.join(fmt.Sprintf("[%d]", i)), missing: b.missing}
	}
	return items
}

func (b Body) join(path string) string {
	switch {
	case b.prefix == "":
		return path
	case path == "":
		return b.prefix
	case strings.HasPrefix(path, "["):
		return b.prefix + path
	default:
		return b.prefix + "." + path
	}
}

func (b Body) markMissing(path string) {
	if b.missing == nil {
		return
	}
	name := b.join(path)
	if name == "" {
		name = "$"
	}
	*b.missing = append(*b.missing, name)
}
