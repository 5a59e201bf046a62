package exam

import "time"

// Default blueprints for the two TUS categories.
var (
	DefaultTheoretical = []SubjectSpec{
		{Name: "Anatomi", Questions: 13},
		{Name: "Fizyoloji", Questions: 15},
		{Name: "Biyokimya", Questions: 18},
		{Name: "Mikrobiyoloji", Questions: 18},
		{Name: "Patoloji", Questions: 18},
		{Name: "Farmakoloji", Questions: 18},
	}
	DefaultClinical = []SubjectSpec{
		{Name: "Dahiliye", Questions: 25},
		{Name: "Dahili KS", Questions: 10},
		{Name: "Pediatri", Questions: 25},
		{Name: "Genel Cerrahi", Questions: 21},
		{Name: "Cerrahi KS", Questions: 9},
		{Name: "Kadın Doğum", Questions: 10},
	}
)

// Quiz drives sequential answer entry across the two categories. Entry fills
// the theoretical view first; the moment it fills, input is routed to the
// clinical view for the rest of the quiz's life. Erasing never routes back
// across the category boundary.
type Quiz struct {
	theoretical *Category
	clinical    *Category
	active      *Category
	createdAt   string
}

// NewQuiz builds a quiz from the given blueprints.
func NewQuiz(theoretical, clinical []SubjectSpec, now time.Time) (*Quiz, error) {
	t, err := NewCategory("Temel", theoretical, QuestionsPerCategory)
	if err != nil {
		return nil, err
	}
	c, err := NewCategory("Klinik", clinical, QuestionsPerCategory)
	if err != nil {
		return nil, err
	}
	return &Quiz{
		theoretical: t,
		clinical:    c,
		active:      t,
		createdAt:   now.Format("06_01_02"),
	}, nil
}

// Theoretical returns the theoretical category.
func (q *Quiz) Theoretical() *Category {
	return q.theoretical
}

// Clinical returns the clinical category.
func (q *Quiz) Clinical() *Category {
	return q.clinical
}

// Active returns the category currently receiving input.
func (q *Quiz) Active() *Category {
	return q.active
}

// CreatedAt returns the session identifier the quiz was created with.
func (q *Quiz) CreatedAt() string {
	return q.createdAt
}

// Len returns the combined slot count of both categories.
func (q *Quiz) Len() int {
	return q.theoretical.View().Len() + q.clinical.View().Len()
}

// Update records one answer at the active category's cursor. It reports
// whether the whole quiz is now complete. Filling the theoretical category
// switches routing to clinical on the same call without touching it.
func (q *Quiz) Update(value Answer) (bool, error) {
	full, err := q.active.View().UpdateNext(value)
	if err != nil {
		return false, err
	}
	if !full {
		return false, nil
	}
	if q.active != q.clinical {
		q.active = q.clinical
		return false, nil
	}
	return true, nil
}

// Erase removes the last entered answer of the active category. It reports
// false when there is nothing to erase.
func (q *Quiz) Erase() bool {
	return q.active.View().EraseLast()
}

// Complete reports whether the clinical view is full.
func (q *Quiz) Complete() bool {
	return q.clinical.View().Cursor() == q.clinical.View().Len()
}

// Record produces the serializable form of the quiz.
func (q *Quiz) Record() Record {
	return Record{
		CreatedAt:   q.createdAt,
		Theoretical: q.theoretical.Record(),
		Clinical:    q.clinical.Record(),
	}
}
