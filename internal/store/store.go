// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/okutan/tusnet/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for exam history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS exams (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			recorded_at TEXT NOT NULL,
			theoretical_correct INTEGER NOT NULL,
			theoretical_wrong INTEGER NOT NULL,
			theoretical_empty INTEGER NOT NULL,
			theoretical_net REAL NOT NULL,
			clinical_correct INTEGER NOT NULL,
			clinical_wrong INTEGER NOT NULL,
			clinical_empty INTEGER NOT NULL,
			clinical_net REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS exam_subject_scores (
			exam_id INTEGER NOT NULL,
			category TEXT NOT NULL,
			subject TEXT NOT NULL,
			correct INTEGER NOT NULL,
			wrong INTEGER NOT NULL,
			empty INTEGER NOT NULL,
			net REAL NOT NULL,
			PRIMARY KEY (exam_id, category, subject)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_exams_recorded_at ON exams(recorded_at);`,
		`CREATE INDEX IF NOT EXISTS idx_exam_subject_scores_subject ON exam_subject_scores(subject);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertExam stores a completed exam and its per-subject scores.
func (s *Store) InsertExam(ctx context.Context, summary model.ExamSummary, subjects []model.SubjectScore) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO exams (created_at, recorded_at,
			theoretical_correct, theoretical_wrong, theoretical_empty, theoretical_net,
			clinical_correct, clinical_wrong, clinical_empty, clinical_net)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.CreatedAt,
		summary.RecordedAt.Format(time.RFC3339Nano),
		summary.Theoretical.Correct,
		summary.Theoretical.Wrong,
		summary.Theoretical.Empty,
		summary.Theoretical.Net,
		summary.Clinical.Correct,
		summary.Clinical.Wrong,
		summary.Clinical.Empty,
		summary.Clinical.Net,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(subjects) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO exam_subject_scores (exam_id, category, subject, correct, wrong, empty, net)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, sc := range subjects {
			if _, err := stmt.ExecContext(ctx, id, sc.Category, sc.Subject, sc.Correct, sc.Wrong, sc.Empty, sc.Net); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListExams returns exam aggregates filtered by stats config, oldest first.
func (s *Store) ListExams(ctx context.Context, cfg model.StatsConfig) ([]model.ExamAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "recorded_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, created_at, recorded_at,
			theoretical_correct, theoretical_wrong, theoretical_empty, theoretical_net,
			clinical_correct, clinical_wrong, clinical_empty, clinical_net
		FROM exams
		WHERE %s
		ORDER BY recorded_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var exams []model.ExamAggregate
	for rows.Next() {
		var agg model.ExamAggregate
		var recordedAt string
		if err := rows.Scan(&agg.ExamID, &agg.CreatedAt, &recordedAt,
			&agg.Theoretical.Correct, &agg.Theoretical.Wrong, &agg.Theoretical.Empty, &agg.Theoretical.Net,
			&agg.Clinical.Correct, &agg.Clinical.Wrong, &agg.Clinical.Empty, &agg.Clinical.Net); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, err
		}
		agg.RecordedAt = parsed
		exams = append(exams, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(exams) > cfg.Last {
		exams = exams[len(exams)-cfg.Last:]
	}
	return exams, nil
}

// ListSubjectScores returns per-subject scores for the given exams, keyed by
// exam id, in insertion order per exam.
func (s *Store) ListSubjectScores(ctx context.Context, examIDs []int64) (map[int64][]model.SubjectScore, error) {
	if len(examIDs) == 0 {
		return map[int64][]model.SubjectScore{}, nil
	}
	placeholders := make([]string, len(examIDs))
	args := make([]any, len(examIDs))
	for i, id := range examIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT exam_id, category, subject, correct, wrong, empty, net
		FROM exam_subject_scores
		WHERE exam_id IN (%s)
		ORDER BY rowid ASC`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := map[int64][]model.SubjectScore{}
	for rows.Next() {
		var examID int64
		var sc model.SubjectScore
		if err := rows.Scan(&examID, &sc.Category, &sc.Subject, &sc.Correct, &sc.Wrong, &sc.Empty, &sc.Net); err != nil {
			return nil, err
		}
		result[examID] = append(result[examID], sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
