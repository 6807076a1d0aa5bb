package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/ecochat/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("workout session not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateSession(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout_session (id, user_id, started_at, notes)
			VALUES ($1, $2, $3, $4);`,
		session.ID, session.UserID, session.StartedAt, session.Notes,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("session.id", session.ID.String()))

	return &session, nil
}

func (r *Repo) GetSession(ctx context.Context, id uuid.UUID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, started_at, notes FROM workout_session WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, err
	}

	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}

	return &sessions[0], nil
}

func (r *Repo) ListSessions(ctx context.Context, userID string, limit int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, started_at, notes
			FROM workout_session
			WHERE user_id = $1
			ORDER BY started_at DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2sessions(rows)
}

func (r *Repo) AddExercise(ctx context.Context, record ExerciseRecord) (_ *ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_exercise
				(session_id, name, sets, metric_type, metric_value, weight, weight_unit, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		record.SessionID, record.Name, record.Sets, record.MetricType,
		record.MetricValue, record.Weight, record.WeightUnit, record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", id))

	record.ID = id
	return &record, nil
}

func (r *Repo) ListExercises(ctx context.Context, sessionID uuid.UUID) (_ []ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, name, sets, metric_type, metric_value, weight, weight_unit, created_at
			FROM workout_exercise
			WHERE session_id = $1
			ORDER BY created_at;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var records []ExerciseRecord
	for rows.Next() {
		var rec ExerciseRecord
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &rec.Name, &rec.Sets, &rec.MetricType,
			&rec.MetricValue, &rec.Weight, &rec.WeightUnit, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *Repo) rows2sessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.StartedAt, &s.Notes); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
