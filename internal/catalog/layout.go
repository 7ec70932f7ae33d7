package catalog

import "fmt"

// Layout selects one objective per contested row (rows 2-4 of the grid; the
// first and last rows are fixed anchors). Column indices are 0..2.
type Layout [3]int

// Valid reports whether the layout only ever steps to an adjacent column
// between consecutive rows.
func (l Layout) Valid() bool {
	for _, v := range l {
		if v < 0 || v > 2 {
			return false
		}
	}
	return abs(l[1]-l[0]) <= 1 && abs(l[2]-l[1]) <= 1
}

// String encodes the layout as three concatenated digits, e.g. (0,1,2) → "012".
func (l Layout) String() string {
	return fmt.Sprintf("%d%d%d", l[0], l[1], l[2])
}

// ParseLayout reverses Layout.String. It does not check adjacency.
func ParseLayout(s string) (Layout, error) {
	var l Layout
	if len(s) != 3 {
		return l, &LookupError{Kind: "layout", Key: s}
	}
	for i := 0; i < 3; i++ {
		d := int(s[i] - '0')
		if d < 0 || d > 2 {
			return l, &LookupError{Kind: "layout", Key: s}
		}
		l[i] = d
	}
	return l, nil
}

// LayoutCombinations enumerates every adjacency-valid layout in a fixed
// order. When midpoint is non-nil only layouts whose middle row equals it are
// yielded, preserving the relative order of the unfiltered enumeration. The
// order is load-bearing: persisted selections reference positions in it.
func LayoutCombinations(midpoint *int) []Layout {
	var out []Layout
	for o1 := 0; o1 < 3; o1++ {
		for o2 := max(0, o1-1); o2 <= min(2, o1+1); o2++ {
			if midpoint != nil && *midpoint != o2 {
				continue
			}
			for o3 := max(0, o2-1); o3 <= min(2, o2+1); o3++ {
				out = append(out, Layout{o1, o2, o3})
			}
		}
	}
	return out
}

// LayoutFromFilteredIndex resolves an index into the midpoint-filtered
// enumeration back to a concrete layout.
func LayoutFromFilteredIndex(midpoint, idx int) (Layout, error) {
	filtered := LayoutCombinations(&midpoint)
	if idx < 0 || idx >= len(filtered) {
		return Layout{}, &LookupError{Kind: "layout index", Key: fmt.Sprintf("%d:%d", midpoint, idx)}
	}
	return filtered[idx], nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
