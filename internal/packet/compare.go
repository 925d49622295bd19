package packet

import (
	"cmp"
	"slices"
)

// Compare returns -1 if a orders before b, 0 if they are equal and +1 if a
// orders after b.
//
// Integers compare numerically. Lists compare element by element and the
// first difference decides; a list that runs out first is smaller. When an
// integer meets a list, the integer is treated as a one-element list.
func Compare(a, b Value) int {
	switch {
	case a.Kind == KindNum && b.Kind == KindNum:
		return cmp.Compare(a.Num, b.Num)
	case a.Kind == KindNum:
		return compareLists([]Value{a}, b.List)
	case b.Kind == KindNum:
		return compareLists(a.List, []Value{b})
	default:
		return compareLists(a.List, b.List)
	}
}

func compareLists(a, b []Value) int {
	for i := range min(len(a), len(b)) {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// Less reports whether a orders strictly before b.
func Less(a, b Value) bool {
	return Compare(a, b) < 0
}

// Equal reports whether a and b are equal under the packet order. Note that
// Num(n) and List(Num(n)) are equal under this order.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// Sort orders values in place. The sort is stable so values that compare
// equal keep their input order.
func Sort(values []Value) {
	slices.SortStableFunc(values, Compare)
}
