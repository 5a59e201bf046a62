package exam

import (
	"errors"
	"testing"
)

func newTestView(t *testing.T) *SegmentedView {
	t.Helper()
	subjects := []*Subject{
		NewSubject("Alpha", 3),
		NewSubject("Beta", 5),
		NewSubject("Gamma", 2),
	}
	return NewSegmentedView(subjects)
}

func TestSegmentedViewLen(t *testing.T) {
	v := newTestView(t)
	if v.Len() != 10 {
		t.Fatalf("expected length 10, got %d", v.Len())
	}
}

func TestLocateAgreesWithAt(t *testing.T) {
	v := newTestView(t)
	for i := 0; i < v.Len(); i++ {
		if err := v.SetAt(i, Correct); err != nil {
			t.Fatalf("set %d: %v", i, err)
		}
	}
	wantSegments := []struct {
		name  string
		start int
		end   int
	}{
		{"Alpha", 0, 3},
		{"Beta", 3, 8},
		{"Gamma", 8, 10},
	}
	for i := 0; i < v.Len(); i++ {
		name, inner, ok := v.Locate(i)
		if !ok {
			t.Fatalf("locate %d: not found", i)
		}
		found := false
		for _, seg := range wantSegments {
			if i >= seg.start && i < seg.end {
				found = true
				if name != seg.name {
					t.Fatalf("locate %d: expected segment %s, got %s", i, seg.name, name)
				}
				if inner != i-seg.start {
					t.Fatalf("locate %d: expected inner %d, got %d", i, i-seg.start, inner)
				}
			}
		}
		if !found {
			t.Fatalf("index %d not covered by expected segments", i)
		}
		got, err := v.At(i)
		if err != nil {
			t.Fatalf("at %d: %v", i, err)
		}
		if got != Correct {
			t.Fatalf("at %d: expected %q, got %q", i, Correct, got)
		}
	}
}

func TestLocateOutOfRange(t *testing.T) {
	v := newTestView(t)
	for _, i := range []int{-1, 10, 100} {
		if _, _, ok := v.Locate(i); ok {
			t.Fatalf("locate %d: expected not found", i)
		}
	}
}

func TestSetRoundTripIsolation(t *testing.T) {
	v := newTestView(t)
	if err := v.SetAt(4, Wrong); err != nil {
		t.Fatalf("set: %v", err)
	}
	for i := 0; i < v.Len(); i++ {
		got, err := v.At(i)
		if err != nil {
			t.Fatalf("at %d: %v", i, err)
		}
		want := Missing
		if i == 4 {
			want = Wrong
		}
		if got != want {
			t.Fatalf("at %d: expected %q, got %q", i, want, got)
		}
	}
}

func TestAtSetOutOfRange(t *testing.T) {
	v := newTestView(t)
	if _, err := v.At(10); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := v.SetAt(-1, Correct); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestUpdateNextFillsSequentially(t *testing.T) {
	v := newTestView(t)
	for i := 0; i < v.Len(); i++ {
		if v.Cursor() != i {
			t.Fatalf("expected cursor %d, got %d", i, v.Cursor())
		}
		full, err := v.UpdateNext(Empty)
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		wantFull := i == v.Len()-1
		if full != wantFull {
			t.Fatalf("update %d: expected full=%v, got %v", i, wantFull, full)
		}
	}
	if _, err := v.UpdateNext(Empty); !errors.Is(err, ErrCursorExhausted) {
		t.Fatalf("expected ErrCursorExhausted, got %v", err)
	}
}

func TestUpdateThenEraseRestoresSlot(t *testing.T) {
	v := newTestView(t)
	for i := 0; i < 4; i++ {
		if _, err := v.UpdateNext(Correct); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	before := v.Cursor()
	if _, err := v.UpdateNext(Wrong); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !v.EraseLast() {
		t.Fatalf("expected erase to succeed")
	}
	if v.Cursor() != before {
		t.Fatalf("expected cursor back at %d, got %d", before, v.Cursor())
	}
	got, err := v.At(before)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	if got != Missing {
		t.Fatalf("expected slot reset to Missing, got %q", got)
	}
}

func TestEraseAtZeroIsNoOp(t *testing.T) {
	v := newTestView(t)
	if v.EraseLast() {
		t.Fatalf("expected erase at cursor 0 to report false")
	}
	if v.Cursor() != 0 {
		t.Fatalf("expected cursor to stay 0, got %d", v.Cursor())
	}
	for i := 0; i < v.Len(); i++ {
		got, err := v.At(i)
		if err != nil {
			t.Fatalf("at %d: %v", i, err)
		}
		if got != Missing {
			t.Fatalf("at %d: expected Missing, got %q", i, got)
		}
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	v := newTestView(t)
	for i := 0; i < v.Len(); i++ {
		if _, err := v.UpdateNext(Correct); err != nil {
			t.Fatalf("update: %v", err)
		}
		if v.Cursor() < 0 || v.Cursor() > v.Len() {
			t.Fatalf("cursor %d out of [0, %d]", v.Cursor(), v.Len())
		}
	}
	for v.EraseLast() {
		if v.Cursor() < 0 || v.Cursor() > v.Len() {
			t.Fatalf("cursor %d out of [0, %d]", v.Cursor(), v.Len())
		}
	}
	if v.Cursor() != 0 {
		t.Fatalf("expected cursor 0 after erasing everything, got %d", v.Cursor())
	}
}

func TestViewWritesThroughToSubjects(t *testing.T) {
	alpha := NewSubject("Alpha", 3)
	beta := NewSubject("Beta", 2)
	v := NewSegmentedView([]*Subject{alpha, beta})
	if err := v.SetAt(4, Wrong); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := beta.At(1)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	if got != Wrong {
		t.Fatalf("expected write to reach underlying subject, got %q", got)
	}
}
