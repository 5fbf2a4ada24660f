package pegx

// InputBuffer is the mutable, random-access character source the
// recovering runner splices repair markers into. It is created once per
// top-level run and discarded with the parse result.
//
// Logical indices are what the matcher engine sees; original indices
// identify positions in the immutable text the buffer was built from.
// Every insertion shifts every logical index greater than the insertion
// point up by one; OriginalIndex projects back down.
type InputBuffer struct {
	original []rune
	edits    []editRun // sorted by gap, ascending
}

// editRun groups every currently-live insertion sitting at the same
// original gap (the position strictly between original[gap-1] and
// original[gap]) into one ordered run of synthetic runes.
type editRun struct {
	gap   int
	runes []rune
}

// NewInputBuffer builds a buffer over an immutable source text.
func NewInputBuffer(text string) *InputBuffer {
	return &InputBuffer{original: []rune(text)}
}

// Len returns the current logical length of the buffer.
func (b *InputBuffer) Len() int {
	n := len(b.original)
	for _, e := range b.edits {
		n += len(e.runes)
	}
	return n
}

// CharAt returns the character at logical index i, or EOI if i is out of
// range. It is total and never fails.
func (b *InputBuffer) CharAt(i int) rune {
	if i < 0 {
		return EOI
	}
	originalConsumed, logicalConsumed := 0, 0
	for _, e := range b.edits {
		preSpan := e.gap - originalConsumed
		if i < logicalConsumed+preSpan {
			return b.original[originalConsumed+(i-logicalConsumed)]
		}
		logicalConsumed += preSpan
		originalConsumed = e.gap

		if i < logicalConsumed+len(e.runes) {
			return e.runes[i-logicalConsumed]
		}
		logicalConsumed += len(e.runes)
	}

	finalSpan := len(b.original) - originalConsumed
	if i < logicalConsumed+finalSpan {
		return b.original[originalConsumed+(i-logicalConsumed)]
	}
	return EOI
}

// Test reports whether the rune at i appears in chars.
func (b *InputBuffer) Test(i int, chars string) bool {
	r := b.CharAt(i)
	for _, c := range chars {
		if c == r {
			return true
		}
	}
	return false
}

// Insert splices c at logical index i; every position at or after i
// shifts up by one. Inserting right-to-left at a single index builds up
// a run of synthetic characters in the intended visual order.
func (b *InputBuffer) Insert(i int, c rune) {
	originalConsumed, logicalConsumed := 0, 0
	for idx := range b.edits {
		e := &b.edits[idx]
		preSpan := e.gap - originalConsumed
		if i < logicalConsumed+preSpan {
			gap := originalConsumed + (i - logicalConsumed)
			b.insertEdit(idx, editRun{gap: gap, runes: []rune{c}})
			return
		}
		logicalConsumed += preSpan
		originalConsumed = e.gap

		if i <= logicalConsumed+len(e.runes) {
			offset := i - logicalConsumed
			e.runes = append(e.runes[:offset:offset], append([]rune{c}, e.runes[offset:]...)...)
			return
		}
		logicalConsumed += len(e.runes)
	}

	finalSpan := len(b.original) - originalConsumed
	if i <= logicalConsumed+finalSpan {
		gap := originalConsumed + (i - logicalConsumed)
		b.insertEdit(len(b.edits), editRun{gap: gap, runes: []rune{c}})
		return
	}
	panic(&InvariantViolation{Reason: "Insert: index beyond buffer length"})
}

func (b *InputBuffer) insertEdit(at int, e editRun) {
	b.edits = append(b.edits, editRun{})
	copy(b.edits[at+1:], b.edits[at:])
	b.edits[at] = e
}

// UndoInsert removes the most recent insertion sitting at logical index
// i. It panics with InvariantViolation if i is not currently an inserted
// position.
func (b *InputBuffer) UndoInsert(i int) {
	idx, offset, ok := b.locateEdit(i)
	if !ok {
		panic(&InvariantViolation{Reason: "UndoInsert: no insertion at index"})
	}
	e := &b.edits[idx]
	e.runes = append(e.runes[:offset], e.runes[offset+1:]...)
	if len(e.runes) == 0 {
		b.edits = append(b.edits[:idx], b.edits[idx+1:]...)
	}
}

// ReplaceInserted rewrites an already-inserted character in place,
// leaving original indices unaffected.
func (b *InputBuffer) ReplaceInserted(i int, c rune) {
	idx, offset, ok := b.locateEdit(i)
	if !ok {
		panic(&InvariantViolation{Reason: "ReplaceInserted: no insertion at index"})
	}
	b.edits[idx].runes[offset] = c
}

// locateEdit finds the edit run and offset covering logical index i,
// when i currently names an inserted (not original) position.
func (b *InputBuffer) locateEdit(i int) (idx, offset int, ok bool) {
	originalConsumed, logicalConsumed := 0, 0
	for k := range b.edits {
		e := &b.edits[k]
		preSpan := e.gap - originalConsumed
		if i < logicalConsumed+preSpan {
			return 0, 0, false
		}
		logicalConsumed += preSpan
		originalConsumed = e.gap

		if i < logicalConsumed+len(e.runes) {
			return k, i - logicalConsumed, true
		}
		logicalConsumed += len(e.runes)
	}
	return 0, 0, false
}

// OriginalIndex projects a logical index back to the immutable source,
// returning the largest original index <= i that was not produced by an
// insertion.
func (b *InputBuffer) OriginalIndex(i int) int {
	originalConsumed, logicalConsumed := 0, 0
	for _, e := range b.edits {
		preSpan := e.gap - originalConsumed
		if i < logicalConsumed+preSpan {
			return originalConsumed + (i - logicalConsumed)
		}
		logicalConsumed += preSpan
		originalConsumed = e.gap

		if i < logicalConsumed+len(e.runes) {
			if originalConsumed == 0 {
				return 0
			}
			return originalConsumed - 1
		}
		logicalConsumed += len(e.runes)
	}
	finalSpan := len(b.original) - originalConsumed
	if i < logicalConsumed+finalSpan {
		return originalConsumed + (i - logicalConsumed)
	}
	if len(b.original) == 0 {
		return 0
	}
	return len(b.original) - 1
}

// Extract returns the logical text in [start, end).
func (b *InputBuffer) Extract(start, end int) string {
	rs := make([]rune, 0, end-start)
	for i := start; i < end; i++ {
		c := b.CharAt(i)
		if c == EOI {
			break
		}
		rs = append(rs, c)
	}
	return string(rs)
}

// ExtractLine returns the logical text of line n (zero-based).
func (b *InputBuffer) ExtractLine(n int) string {
	calc := positionCalculator{buf: b}
	start, end := calc.lineSpan(n)
	return b.Extract(start, end)
}

// Position tells the line/column of logical index i.
func (b *InputBuffer) Position(i int) Position {
	calc := positionCalculator{buf: b}
	return calc.calculate(i)
}
