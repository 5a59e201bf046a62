// Package model defines shared data structures.
package model

import "time"

// Config defines recording settings.
type Config struct {
	RecordsDir string
}

// StatsConfig defines filters for stats output.
type StatsConfig struct {
	Since *time.Time
	Last  int
}

// CategoryScore captures a category's totals for a completed exam.
type CategoryScore struct {
	Correct int
	Wrong   int
	Empty   int
	Net     float64
}

// ExamSummary captures a completed exam sheet for storage.
type ExamSummary struct {
	CreatedAt   string
	RecordedAt  time.Time
	Theoretical CategoryScore
	Clinical    CategoryScore
}

// SubjectScore stores per-subject results for an exam.
type SubjectScore struct {
	Category string
	Subject  string
	Correct  int
	Wrong    int
	Empty    int
	Net      float64
}

// ExamAggregate summarizes a stored exam for reporting.
type ExamAggregate struct {
	ExamID      int64
	CreatedAt   string
	RecordedAt  time.Time
	Theoretical CategoryScore
	Clinical    CategoryScore
}

// TotalNet returns the combined net score of both categories.
func (e ExamAggregate) TotalNet() float64 {
	return e.Theoretical.Net + e.Clinical.Net
}
