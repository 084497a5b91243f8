// Package store handles local persistence: SQLite interview history and the
// JSON session state file.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nvoloshin/prepterm/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for completed interview history.
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
		`CREATE TABLE IF NOT EXISTS interviews (
			id INTEGER PRIMARY KEY,
			session_id TEXT NOT NULL,
			interview_type TEXT NOT NULL,
			overall_score INTEGER NOT NULL,
			question_count INTEGER NOT NULL,
			duration_seconds INTEGER NOT NULL,
			improvement_rate REAL NOT NULL,
			feedback TEXT NOT NULL,
			completed_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS interview_skill_scores (
			interview_id INTEGER NOT NULL,
			skill TEXT NOT NULL,
			score INTEGER NOT NULL,
			percentile INTEGER NOT NULL,
			trend TEXT NOT NULL,
			feedback TEXT NOT NULL,
			PRIMARY KEY (interview_id, skill)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_interviews_completed_at ON interviews(completed_at);`,
		`CREATE INDEX IF NOT EXISTS idx_interview_skill_scores_skill ON interview_skill_scores(skill);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertResult stores a completed interview and its per-skill scores.
func (s *Store) InsertResult(ctx context.Context, result model.InterviewResult, questionCount, durationSeconds int) (int64, error) {
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
		`INSERT INTO interviews (session_id, interview_type, overall_score, question_count, duration_seconds, improvement_rate, feedback, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.SessionID,
		result.InterviewType,
		result.OverallScore,
		questionCount,
		durationSeconds,
		result.ImprovementRate,
		result.Feedback,
		result.CompletedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(result.SkillScores) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO interview_skill_scores (interview_id, skill, score, percentile, trend, feedback)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, sc := range result.SkillScores {
			if _, err := stmt.ExecContext(ctx, id, sc.Skill, sc.Score, sc.Percentile, sc.Trend, sc.Feedback); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListSessions returns stored sessions matching the history filter, oldest
// first.
func (s *Store) ListSessions(ctx context.Context, filter model.HistoryFilter) ([]model.SessionRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.InterviewType != "" {
		clauses = append(clauses, "interview_type = ?")
		args = append(args, filter.InterviewType)
	}
	if filter.Since != nil {
		clauses = append(clauses, "completed_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, session_id, interview_type, overall_score, question_count, duration_seconds, completed_at
		FROM interviews
		WHERE %s
		ORDER BY completed_at ASC`, strings.Join(clauses, " AND "))
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

	var sessions []model.SessionRecord
	for rows.Next() {
		var rec model.SessionRecord
		var completedAt string
		if err := rows.Scan(&rec.RowID, &rec.SessionID, &rec.InterviewType, &rec.OverallScore, &rec.QuestionCount, &rec.DurationSeconds, &completedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, completedAt)
		if err != nil {
			return nil, err
		}
		rec.CompletedAt = parsed
		sessions = append(sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListSkillAggregates sums per-skill scores across the given sessions.
func (s *Store) ListSkillAggregates(ctx context.Context, interviewIDs []int64) ([]model.SkillAggregate, error) {
	if len(interviewIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(interviewIDs))
	args := make([]any, len(interviewIDs))
	for i, id := range interviewIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT skill, SUM(score) AS score_sum, COUNT(*) AS n
		FROM interview_skill_scores
		WHERE interview_id IN (%s)
		GROUP BY skill`, strings.Join(placeholders, ","))
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

	var result []model.SkillAggregate
	for rows.Next() {
		var agg model.SkillAggregate
		if err := rows.Scan(&agg.Skill, &agg.ScoreSum, &agg.Count); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListSkillScoresForSessions returns per-session scores for selected skills.
func (s *Store) ListSkillScoresForSessions(ctx context.Context, interviewIDs []int64, skills []string) (map[int64]map[string]int, error) {
	if len(interviewIDs) == 0 || len(skills) == 0 {
		return map[int64]map[string]int{}, nil
	}
	idPlaceholders := make([]string, len(interviewIDs))
	args := make([]any, 0, len(interviewIDs)+len(skills))
	for i, id := range interviewIDs {
		idPlaceholders[i] = "?"
		args = append(args, id)
	}
	skillPlaceholders := make([]string, len(skills))
	for i, skill := range skills {
		skillPlaceholders[i] = "?"
		args = append(args, skill)
	}

	query := fmt.Sprintf(`SELECT interview_id, skill, score
		FROM interview_skill_scores
		WHERE interview_id IN (%s) AND skill IN (%s)`, strings.Join(idPlaceholders, ","), strings.Join(skillPlaceholders, ","))

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

	result := map[int64]map[string]int{}
	for rows.Next() {
		var interviewID int64
		var skill string
		var score int
		if err := rows.Scan(&interviewID, &skill, &score); err != nil {
			return nil, err
		}
		if _, ok := result[interviewID]; !ok {
			result[interviewID] = map[string]int{}
		}
		result[interviewID][skill] = score
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
