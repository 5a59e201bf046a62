package stats

import (
	"testing"
	"time"

	"github.com/okutan/tusnet/internal/exam"
	"github.com/okutan/tusnet/internal/model"
)

func TestSummarize(t *testing.T) {
	q, err := exam.NewQuiz(exam.DefaultTheoretical, exam.DefaultClinical, time.Date(2024, 3, 17, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}
	// Fill theoretical with a fixed pattern, clinical entirely correct.
	pattern := []exam.Answer{exam.Correct, exam.Correct, exam.Wrong, exam.Empty}
	for i := 0; i < 100; i++ {
		if _, err := q.Update(pattern[i%len(pattern)]); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}
	for i := 0; i < 100; i++ {
		if _, err := q.Update(exam.Correct); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	recordedAt := time.Date(2024, 3, 17, 11, 30, 0, 0, time.UTC)
	summary, subjects := Summarize(q, recordedAt)
	if summary.CreatedAt != "24_03_17" {
		t.Fatalf("expected created_at 24_03_17, got %q", summary.CreatedAt)
	}
	if !summary.RecordedAt.Equal(recordedAt) {
		t.Fatalf("unexpected recorded_at: %v", summary.RecordedAt)
	}
	if summary.Theoretical.Correct != 50 || summary.Theoretical.Wrong != 25 || summary.Theoretical.Empty != 25 {
		t.Fatalf("unexpected theoretical score: %+v", summary.Theoretical)
	}
	if summary.Theoretical.Net != 43.75 {
		t.Fatalf("expected theoretical net 43.75, got %v", summary.Theoretical.Net)
	}
	if summary.Clinical.Correct != 100 || summary.Clinical.Net != 100 {
		t.Fatalf("unexpected clinical score: %+v", summary.Clinical)
	}

	if len(subjects) != 12 {
		t.Fatalf("expected 12 subject scores, got %d", len(subjects))
	}
	if subjects[0].Category != "Temel" || subjects[0].Subject != "Anatomi" {
		t.Fatalf("expected Temel/Anatomi first, got %s/%s", subjects[0].Category, subjects[0].Subject)
	}
	if subjects[11].Category != "Klinik" || subjects[11].Subject != "Kadın Doğum" {
		t.Fatalf("expected Klinik/Kadın Doğum last, got %s/%s", subjects[11].Category, subjects[11].Subject)
	}
	if subjects[11].Correct != 10 || subjects[11].Net != 10 {
		t.Fatalf("unexpected last subject score: %+v", subjects[11])
	}
}

func TestNetSeries(t *testing.T) {
	exams := []model.ExamAggregate{
		{Theoretical: model.CategoryScore{Net: 40}, Clinical: model.CategoryScore{Net: 55}},
		{Theoretical: model.CategoryScore{Net: 42.5}, Clinical: model.CategoryScore{Net: 57.25}},
	}
	series := NetSeries(exams)
	if len(series) != 2 {
		t.Fatalf("expected 2 values, got %d", len(series))
	}
	if series[0] != 95 || series[1] != 99.75 {
		t.Fatalf("unexpected series: %v", series)
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	out := MovingAverage(values, 2)
	want := []float64{1, 1.5, 2.5, 3.5, 4.5}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], out[i])
		}
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	out := Sparkline([]float64{3, 3, 3})
	if len(out) != 3 {
		t.Fatalf("expected 3 chars, got %q", out)
	}
	if out[0] != out[1] || out[1] != out[2] {
		t.Fatalf("expected uniform sparkline for flat series, got %q", out)
	}
}
