package exam

import "fmt"

// QuestionsPerCategory is the fixed slot count each category must sum to.
const QuestionsPerCategory = 100

// SubjectSpec is a blueprint entry: a subject name and its question count.
// Specs carry no answer data, so they can be shared freely across quizzes.
type SubjectSpec struct {
	Name      string
	Questions int
}

// Category owns an ordered set of subjects and one segmented view over them.
type Category struct {
	name     string
	subjects []*Subject
	view     *SegmentedView
}

// NewCategory allocates fresh subjects from the blueprint and builds the
// view. The blueprint's question counts must sum to want.
func NewCategory(name string, blueprint []SubjectSpec, want int) (*Category, error) {
	subjects := make([]*Subject, 0, len(blueprint))
	total := 0
	for _, spec := range blueprint {
		subjects = append(subjects, NewSubject(spec.Name, spec.Questions))
		total += spec.Questions
	}
	if total != want {
		return nil, fmt.Errorf("%w: %s has %d questions, want %d", ErrInvalidBlueprint, name, total, want)
	}
	return &Category{name: name, subjects: subjects, view: NewSegmentedView(subjects)}, nil
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Subjects returns the owned subjects in blueprint order.
func (c *Category) Subjects() []*Subject {
	return c.subjects
}

// View returns the category's segmented view.
func (c *Category) View() *SegmentedView {
	return c.view
}

// NumCorrect sums correct counts across subjects.
func (c *Category) NumCorrect() int {
	n := 0
	for _, s := range c.subjects {
		n += s.NumCorrect()
	}
	return n
}

// NumWrong sums wrong counts across subjects.
func (c *Category) NumWrong() int {
	n := 0
	for _, s := range c.subjects {
		n += s.NumWrong()
	}
	return n
}

// NumEmpty sums empty counts across subjects.
func (c *Category) NumEmpty() int {
	n := 0
	for _, s := range c.subjects {
		n += s.NumEmpty()
	}
	return n
}

// NumNet sums net scores across subjects.
func (c *Category) NumNet() float64 {
	n := 0.0
	for _, s := range c.subjects {
		n += s.NumNet()
	}
	return n
}

// Record produces the serializable form of the category.
func (c *Category) Record() CategoryRecord {
	subjects := make(map[string]SubjectRecord, len(c.subjects))
	for _, s := range c.subjects {
		subjects[s.Name()] = s.Record()
	}
	return CategoryRecord{Name: c.name, Subjects: subjects}
}
