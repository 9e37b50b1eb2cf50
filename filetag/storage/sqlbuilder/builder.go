// Package sqlbuilder assembles parameterized SQL for the placeholder
// dialects the storage adapters speak.
package sqlbuilder

import (
	"strconv"
	"strings"
)

type PlaceholderStyle int

const (
	PlaceholderQuestion PlaceholderStyle = iota // sqlite: ?
	PlaceholderDollar                           // postgres: $1, $2, ...
)

// Builder accumulates bind arguments and hands out matching placeholders
type Builder struct {
	style PlaceholderStyle
	args  []any
}

func New(style PlaceholderStyle) *Builder {
	return &Builder{style: style}
}

// Placeholder binds v and returns the placeholder that refers to it
func (b *Builder) Placeholder(v any) string {
	b.args = append(b.args, v)
	if b.style == PlaceholderDollar {
		return "$" + strconv.Itoa(len(b.args))
	}
	return "?"
}

// InList binds every value and returns "(p1, p2, ...)"
func (b *Builder) InList(values []string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.Placeholder(v))
	}
	sb.WriteByte(')')
	return sb.String()
}

func (b *Builder) Args() []any { return b.args }
func (b *Builder) Len() int    { return len(b.args) }

// Chunk splits values into consecutive runs of at most n
func Chunk(values []string, n int) [][]string {
	if n < 1 {
		n = 1
	}
	var out [][]string
	for len(values) > n {
		out = append(out, values[:n])
		values = values[n:]
	}
	if len(values) > 0 {
		out = append(out, values)
	}
	return out
}
