package exam

import "fmt"

type segment struct {
	name    string
	start   int
	subject *Subject
}

// SegmentedView presents an ordered collection of subjects as one contiguous,
// absolutely-indexed sequence. The segment layout is fixed at construction;
// only slot contents and the fill cursor change afterwards. The view does not
// copy answer data: writes through it mutate the underlying subjects.
type SegmentedView struct {
	segments []segment
	total    int
	cursor   int
}

// NewSegmentedView builds a view over subjects in the given order.
func NewSegmentedView(subjects []*Subject) *SegmentedView {
	segments := make([]segment, 0, len(subjects))
	offset := 0
	for _, s := range subjects {
		segments = append(segments, segment{name: s.Name(), start: offset, subject: s})
		offset += s.Len()
	}
	return &SegmentedView{segments: segments, total: offset}
}

// Len returns the total number of slots across all segments.
func (v *SegmentedView) Len() int {
	return v.total
}

// Cursor returns the next absolute index to be filled, in [0, Len()].
func (v *SegmentedView) Cursor() int {
	return v.cursor
}

func (v *SegmentedView) resolve(index int) (*segment, int, error) {
	if index < 0 || index >= v.total {
		return nil, 0, fmt.Errorf("%w: absolute index %d not in [0, %d)", ErrIndexOutOfRange, index, v.total)
	}
	for i := range v.segments {
		seg := &v.segments[i]
		if index < seg.start+seg.subject.Len() {
			return seg, index - seg.start, nil
		}
	}
	// Unreachable: segments cover [0, total) without gaps.
	return nil, 0, fmt.Errorf("%w: absolute index %d has no segment", ErrIndexOutOfRange, index)
}

// At returns the answer at the absolute index.
func (v *SegmentedView) At(index int) (Answer, error) {
	seg, inner, err := v.resolve(index)
	if err != nil {
		return "", err
	}
	return seg.subject.At(inner)
}

// SetAt writes the answer at the absolute index.
func (v *SegmentedView) SetAt(index int, value Answer) error {
	seg, inner, err := v.resolve(index)
	if err != nil {
		return err
	}
	return seg.subject.SetAt(inner, value)
}

// Locate translates an absolute index to its segment name and internal index.
// Out-of-range indices report ok=false instead of an error.
func (v *SegmentedView) Locate(index int) (name string, inner int, ok bool) {
	seg, inner, err := v.resolve(index)
	if err != nil {
		return "", 0, false
	}
	return seg.name, inner, true
}

// UpdateNext writes the answer at the cursor and advances it. It reports
// whether the view just became full. Calling it on an already full view is a
// caller bug and fails with ErrCursorExhausted.
func (v *SegmentedView) UpdateNext(value Answer) (bool, error) {
	if v.cursor >= v.total {
		return false, fmt.Errorf("%w: cursor %d at capacity %d", ErrCursorExhausted, v.cursor, v.total)
	}
	if err := v.SetAt(v.cursor, value); err != nil {
		return false, err
	}
	v.cursor++
	return v.cursor == v.total, nil
}

// EraseLast steps the cursor back one slot and resets it to Missing. At
// cursor 0 there is nothing to erase and it reports false.
func (v *SegmentedView) EraseLast() bool {
	if v.cursor == 0 {
		return false
	}
	v.cursor--
	// The cursor was within bounds, so the write cannot fail.
	_ = v.SetAt(v.cursor, Missing)
	return true
}
