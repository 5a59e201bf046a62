package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/okutan/tusnet/internal/model"
	"github.com/okutan/tusnet/internal/store"
)

func insertTestExam(t *testing.T, st *store.Store, createdAt string, recordedAt time.Time, theoreticalNet, clinicalNet float64) int64 {
	t.Helper()
	summary := model.ExamSummary{
		CreatedAt:   createdAt,
		RecordedAt:  recordedAt,
		Theoretical: model.CategoryScore{Correct: 60, Wrong: 20, Empty: 20, Net: theoreticalNet},
		Clinical:    model.CategoryScore{Correct: 70, Wrong: 10, Empty: 20, Net: clinicalNet},
	}
	subjects := []model.SubjectScore{
		{Category: "Temel", Subject: "Anatomi", Correct: 8, Wrong: 4, Empty: 1, Net: 7},
		{Category: "Klinik", Subject: "Dahiliye", Correct: 20, Wrong: 4, Empty: 1, Net: 19},
	}
	id, err := st.InsertExam(context.Background(), summary, subjects)
	if err != nil {
		t.Fatalf("insert exam: %v", err)
	}
	return id
}

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "tusnet.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var ids []int64
	for i := 0; i < 3; i++ {
		id := insertTestExam(t, st, base.AddDate(0, 0, i).Format("06_01_02"), base.AddDate(0, 0, i), 45+float64(i), 60+float64(i))
		ids = append(ids, id)
	}

	report, err := BuildReport(context.Background(), st, model.StatsConfig{Last: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Exams) != 2 {
		t.Fatalf("expected 2 exams, got %d", len(report.Exams))
	}
	if report.Exams[0].ExamID != ids[1] || report.Exams[1].ExamID != ids[2] {
		t.Fatalf("unexpected exam ids: %+v", report.Exams)
	}
	if len(report.SubjectScores[ids[1]]) != 2 {
		t.Fatalf("expected 2 subject scores for exam %d", ids[1])
	}
	if len(report.SubjectAverages) != 2 {
		t.Fatalf("expected 2 subject averages, got %d", len(report.SubjectAverages))
	}
	if report.SubjectAverages[0].Subject != "Anatomi" {
		t.Fatalf("expected blueprint order (Anatomi first), got %q", report.SubjectAverages[0].Subject)
	}
	if report.SubjectAverages[0].Exams != 2 {
		t.Fatalf("expected 2 exams per subject, got %d", report.SubjectAverages[0].Exams)
	}
}

func TestBuildReportSinceFilter(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "tusnet.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	insertTestExam(t, st, "24_03_01", base, 40, 55)
	insertTestExam(t, st, "24_03_05", base.AddDate(0, 0, 4), 42, 57)

	since := base.AddDate(0, 0, 2)
	report, err := BuildReport(context.Background(), st, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Exams) != 1 {
		t.Fatalf("expected 1 exam after since filter, got %d", len(report.Exams))
	}
	if report.Exams[0].CreatedAt != "24_03_05" {
		t.Fatalf("unexpected exam: %+v", report.Exams[0])
	}
}
