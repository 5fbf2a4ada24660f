package pegx

import "testing"

func TestShiftIndexDeltaByAccumulates(t *testing.T) {
	e := &InvalidInputError{StartIndex: 2, EndIndex: 2}

	e.shiftIndexDeltaBy(2) // an insertion of two sentinel+char runes
	if e.StartIndex != 4 || e.EndIndex != 4 {
		t.Fatalf("after first shift: Start=%d End=%d, want 4 and 4", e.StartIndex, e.EndIndex)
	}

	e.shiftIndexDeltaBy(1) // a deletion marker
	if e.StartIndex != 5 || e.EndIndex != 5 {
		t.Fatalf("after second shift: Start=%d End=%d, want 5 and 5", e.StartIndex, e.EndIndex)
	}
	if e.delta != 3 {
		t.Fatalf("delta => %d, want 3", e.delta)
	}
}

func TestShiftIndexDeltaByLeavesStaleEndIndexAlone(t *testing.T) {
	// An EndIndex recorded before StartIndex's most recent shift does not
	// get pulled forward with it.
	e := &InvalidInputError{StartIndex: 5, EndIndex: 3}
	e.shiftIndexDeltaBy(1)
	if e.StartIndex != 6 {
		t.Fatalf("StartIndex => %d, want 6", e.StartIndex)
	}
	if e.EndIndex != 3 {
		t.Fatalf("EndIndex => %d, want unchanged at 3", e.EndIndex)
	}
}

func TestInvalidInputErrorMessage(t *testing.T) {
	point := &InvalidInputError{StartIndex: 4, EndIndex: 4}
	if got, want := point.Error(), "pegx: invalid input at 4"; got != want {
		t.Fatalf("Error() => %q, want %q", got, want)
	}
	span := &InvalidInputError{StartIndex: 2, EndIndex: 5}
	if got, want := span.Error(), "pegx: invalid input in [2, 5]"; got != want {
		t.Fatalf("Error() => %q, want %q", got, want)
	}
}
