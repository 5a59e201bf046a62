// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/okutan/tusnet/internal/exam"
	"github.com/okutan/tusnet/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summarize converts a filled quiz into its storable summary and per-subject
// scores. Subjects keep blueprint order, theoretical first.
func Summarize(q *exam.Quiz, recordedAt time.Time) (model.ExamSummary, []model.SubjectScore) {
	summary := model.ExamSummary{
		CreatedAt:   q.CreatedAt(),
		RecordedAt:  recordedAt,
		Theoretical: categoryScore(q.Theoretical()),
		Clinical:    categoryScore(q.Clinical()),
	}
	var subjects []model.SubjectScore
	for _, cat := range []*exam.Category{q.Theoretical(), q.Clinical()} {
		for _, s := range cat.Subjects() {
			subjects = append(subjects, model.SubjectScore{
				Category: cat.Name(),
				Subject:  s.Name(),
				Correct:  s.NumCorrect(),
				Wrong:    s.NumWrong(),
				Empty:    s.NumEmpty(),
				Net:      s.NumNet(),
			})
		}
	}
	return summary, subjects
}

func categoryScore(c *exam.Category) model.CategoryScore {
	return model.CategoryScore{
		Correct: c.NumCorrect(),
		Wrong:   c.NumWrong(),
		Empty:   c.NumEmpty(),
		Net:     c.NumNet(),
	}
}

// NetSeries extracts the total net score of each exam, oldest first.
func NetSeries(exams []model.ExamAggregate) []float64 {
	out := make([]float64, len(exams))
	for i, e := range exams {
		out[i] = e.TotalNet()
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
