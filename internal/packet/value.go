// Package packet implements the distress-signal packet grammar: a value is
// either an unsigned integer or a bracketed, comma-separated list of values.
// Values carry a total order used to check pair ordering and to sort packets.
package packet

import (
	"strconv"
	"strings"
)

// Kind tags which case of Value is populated.
type Kind uint8

const (
	KindNum Kind = iota
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNum:
		return "num"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a packet value. Exactly one of Num or List is meaningful,
// selected by Kind. The zero Value is Num(0).
type Value struct {
	Kind Kind
	Num  uint64
	List []Value
}

// Num returns an integer value.
func Num(n uint64) Value {
	return Value{Kind: KindNum, Num: n}
}

// List returns a list value. A nil or empty argument yields the empty list.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindList, List: items}
}

// IsList reports whether v is a list.
func (v Value) IsList() bool {
	return v.Kind == KindList
}

// String renders v back into packet syntax.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	if v.Kind == KindNum {
		b.WriteString(strconv.FormatUint(v.Num, 10))
		return
	}
	b.WriteByte('[')
	for i, item := range v.List {
		if i > 0 {
			b.WriteByte(',')
		}
		item.write(b)
	}
	b.WriteByte(']')
}

// Depth returns the list nesting depth; integers have depth 0.
func (v Value) Depth() int {
	if v.Kind == KindNum {
		return 0
	}
	deepest := 0
	for _, item := range v.List {
		deepest = max(deepest, item.Depth())
	}
	return deepest + 1
}
