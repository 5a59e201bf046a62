package exam

// SubjectRecord is the serializable form of a subject. Answers hold the
// single-character codes, Missing slots included.
type SubjectRecord struct {
	Name    string   `json:"name"`
	Answers []string `json:"answers"`
}

// CategoryRecord is the serializable form of a category.
type CategoryRecord struct {
	Name     string                   `json:"name"`
	Subjects map[string]SubjectRecord `json:"subjects"`
}

// Record is the serializable form of a whole quiz, keyed by its session
// identifier.
type Record struct {
	CreatedAt   string         `json:"created_at"`
	Theoretical CategoryRecord `json:"theoretical"`
	Clinical    CategoryRecord `json:"clinical"`
}
