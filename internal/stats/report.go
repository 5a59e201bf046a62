// Package stats contains statistics calculations and reporting.
package stats

import (
	"context"
	"sort"

	"github.com/okutan/tusnet/internal/model"
	"github.com/okutan/tusnet/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Exams           []model.ExamAggregate
	SubjectScores   map[int64][]model.SubjectScore
	SubjectAverages []SubjectAverage
}

// SubjectAverage aggregates one subject's results across exams.
type SubjectAverage struct {
	Category string
	Subject  string
	Exams    int
	AvgNet   float64
	BestNet  float64
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	exams, err := st.ListExams(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	ids := examIDs(exams)
	scores, err := st.ListSubjectScores(ctx, ids)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Exams:           exams,
		SubjectScores:   scores,
		SubjectAverages: averageSubjects(ids, scores),
	}, nil
}

func examIDs(exams []model.ExamAggregate) []int64 {
	ids := make([]int64, len(exams))
	for i, e := range exams {
		ids[i] = e.ExamID
	}
	return ids
}

func averageSubjects(ids []int64, scores map[int64][]model.SubjectScore) []SubjectAverage {
	type acc struct {
		category string
		subject  string
		order    int
		count    int
		sum      float64
		best     float64
	}
	accs := map[string]*acc{}
	order := 0
	for _, id := range ids {
		for _, sc := range scores[id] {
			key := sc.Category + "\x00" + sc.Subject
			a, ok := accs[key]
			if !ok {
				a = &acc{category: sc.Category, subject: sc.Subject, order: order, best: sc.Net}
				accs[key] = a
				order++
			}
			a.count++
			a.sum += sc.Net
			if sc.Net > a.best {
				a.best = sc.Net
			}
		}
	}
	out := make([]SubjectAverage, 0, len(accs))
	for _, a := range accs {
		out = append(out, SubjectAverage{
			Category: a.category,
			Subject:  a.subject,
			Exams:    a.count,
			AvgNet:   a.sum / float64(a.count),
			BestNet:  a.best,
		})
	}
	// Preserve first-seen (blueprint) order.
	sort.SliceStable(out, func(i, j int) bool {
		return accs[out[i].Category+"\x00"+out[i].Subject].order < accs[out[j].Category+"\x00"+out[j].Subject].order
	})
	return out
}
