package utils // package utils provides seat addressing helpers shared by services and handlers

import (
	"strconv" // strconv formats column numbers
	"strings" // strings provides trimming and case helpers
)

// MaxRowLabelLen is the longest row label a seat may carry (A..ZZZ).
const MaxRowLabelLen = 3

// IndexToRowLabel converts a zero-based index to an alphabetical row label like A, B, AA.
func IndexToRowLabel(i int) string {
	if i < 0 { // negative indices are invalid
		return ""
	}
	res := []rune{}
	for {
		rem := i % 26
		res = append(res, rune('A'+rem))
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	for j, k := 0, len(res)-1; j < k; j, k = j+1, k-1 { // letters were produced least significant first
		res[j], res[k] = res[k], res[j]
	}
	return string(res)
}

// RowLabelToIndex converts a row label like A or AA into its zero-based index.
// The label is upper-cased first; any byte outside A-Z makes it invalid.
func RowLabelToIndex(label string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if s == "" {
		return -1, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 'A' || ch > 'Z' {
			return -1, false
		}
		n = n*26 + int(ch-'A'+1) // bijective base-26
	}
	return n - 1, true
}

// NormalizeRowLabel trims and upper-cases raw and reports whether the result
// is a valid row label of 1 to MaxRowLabelLen ASCII letters. Unlike a lenient
// strip of foreign characters, anything other than letters is rejected.
func NormalizeRowLabel(raw string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) == 0 || len(s) > MaxRowLabelLen {
		return s, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return s, false
		}
	}
	return s, true
}

// SeatLocation returns the canonical location key of a seat: row label
// followed by the column number, e.g. "A1" or "AB12".
func SeatLocation(row string, column uint32) string {
	return row + strconv.FormatUint(uint64(column), 10)
}

// CompareRows orders row labels by their index so that "B" sorts before "AA".
// Invalid labels fall back to lexical order after all valid ones.
func CompareRows(a, b string) int {
	ia, okA := RowLabelToIndex(a)
	ib, okB := RowLabelToIndex(b)
	switch {
	case okA && okB:
		return ia - ib
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
