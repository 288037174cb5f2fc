package crypto

import (
	"fmt"
	"slices"
)

// Table is the 32-entry permutation driving the polyalphabetic cipher.
// It is a value: Shift returns the next table and leaves the receiver as is,
// so every step of its evolution can be kept and inspected.
type Table [AlphabetSize]rune

// BuildTable places each keyword symbol in order, probing forward around
// the ring past symbols that are already placed, then appends the symbols
// still missing in ring order.
func BuildTable(a *Alphabet, keyword []rune) Table {
	out := make([]rune, 0, AlphabetSize)

	for _, k := range keyword {
		if len(out) >= AlphabetSize {
			break
		}
		if !a.IsValid(k) {
			continue
		}
		tmp := a.Char(a.Value(k))
		for slices.Contains(out, tmp) {
			tmp = a.Successor(tmp)
		}
		out = append(out, tmp)
	}

	for _, c := range a.symbols {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}

	var t Table
	copy(t[:], out)
	return t
}

// Shift moves a pivot to the front of the table. The table is split at bias
// into a fixed head and a mutable tail; the pivot is target advanced past
// any head symbols. If that symbol is not in the tail, the first tail symbol
// absent from the head is used instead. The result is pivot + head + rest of tail.
func (t Table) Shift(a *Alphabet, target rune, bias int) Table {
	bias = ringMod(bias)
	head := t[:bias]
	tail := t[bias:]

	s := target
	for slices.Contains(head, s) {
		s = a.Successor(s)
	}

	at := slices.Index(tail, s)
	if at < 0 {
		for i, c := range tail {
			if !slices.Contains(head, c) {
				at = i
				break
			}
		}
	}
	if at < 0 {
		panic(fmt.Sprintf("crypto: no pivot available in table %q at bias %d", string(t[:]), bias))
	}
	pivot := tail[at]

	var next Table
	next[0] = pivot
	n := 1
	n += copy(next[n:], head)
	n += copy(next[n:], tail[:at])
	copy(next[n:], tail[at+1:])
	return next
}

// IndexOf returns the position of c. A missing symbol means the table is
// no longer a permutation, which is an internal invariant violation.
func (t Table) IndexOf(c rune) int {
	i := slices.Index(t[:], c)
	if i < 0 {
		panic(fmt.Sprintf("crypto: symbol %q missing from table %q", c, string(t[:])))
	}
	return i
}

// IsPermutation reports whether t holds every ring symbol exactly once.
func (t Table) IsPermutation(a *Alphabet) bool {
	var seen [AlphabetSize]bool
	for _, c := range t {
		v, ok := a.Index(c)
		if !ok || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func (t Table) String() string {
	return string(t[:])
}
