package exam

import "fmt"

// Subject is a named block of fixed-count answer slots. The length is set at
// construction and never changes; slots are mutated by index only.
type Subject struct {
	name    string
	answers []Answer
}

// NewSubject allocates a subject with count slots, all Missing.
func NewSubject(name string, count int) *Subject {
	answers := make([]Answer, count)
	for i := range answers {
		answers[i] = Missing
	}
	return &Subject{name: name, answers: answers}
}

// Name returns the subject name.
func (s *Subject) Name() string {
	return s.name
}

// Len returns the fixed number of question slots.
func (s *Subject) Len() int {
	return len(s.answers)
}

// At returns the answer at index i.
func (s *Subject) At(i int) (Answer, error) {
	if i < 0 || i >= len(s.answers) {
		return "", fmt.Errorf("%w: subject %s index %d not in [0, %d)", ErrIndexOutOfRange, s.name, i, len(s.answers))
	}
	return s.answers[i], nil
}

// SetAt overwrites the answer at index i.
func (s *Subject) SetAt(i int, value Answer) error {
	if i < 0 || i >= len(s.answers) {
		return fmt.Errorf("%w: subject %s index %d not in [0, %d)", ErrIndexOutOfRange, s.name, i, len(s.answers))
	}
	s.answers[i] = value
	return nil
}

// NumCorrect counts Correct slots.
func (s *Subject) NumCorrect() int {
	return s.count(Correct)
}

// NumWrong counts Wrong slots.
func (s *Subject) NumWrong() int {
	return s.count(Wrong)
}

// NumEmpty counts Empty slots.
func (s *Subject) NumEmpty() int {
	return s.count(Empty)
}

// NumNet returns the net score: correct minus a quarter of wrong.
func (s *Subject) NumNet() float64 {
	return float64(s.NumCorrect()) - float64(s.NumWrong())/4
}

func (s *Subject) count(value Answer) int {
	n := 0
	for _, a := range s.answers {
		if a == value {
			n++
		}
	}
	return n
}

// Record produces the serializable form of the subject.
func (s *Subject) Record() SubjectRecord {
	codes := make([]string, len(s.answers))
	for i, a := range s.answers {
		codes[i] = string(a)
	}
	return SubjectRecord{Name: s.name, Answers: codes}
}
