package catalog

import (
	"context"
	"fmt"

	"github.com/2beens/mesocycles/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanExercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.MuscleGroup,
			&e.UserID,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return exercises, nil
}

func (r *Repo) ListGlobal(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list_global")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, muscle_group, ''::text, created_at
			FROM global_exercise
			ORDER BY muscle_group, name
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("global exercises [query]: %w", err)
	}

	exercises, err := scanExercises(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))
	return exercises, nil
}

func (r *Repo) ListUser(ctx context.Context, userID string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, muscle_group, user_id::text, created_at
			FROM user_exercise
			WHERE user_id = $1
			ORDER BY created_at
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("user exercises [query]: %w", err)
	}

	return scanExercises(rows)
}

func (r *Repo) AddUser(ctx context.Context, e Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO user_exercise
			    (id, user_id, name, muscle_group, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`,
		e.ID, e.UserID, e.Name, e.MuscleGroup, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user exercise: %w", err)
	}

	return nil
}

// AddGlobal inserts the exercises missing from the global catalog and
// returns how many were added.
func (r *Repo) AddGlobal(ctx context.Context, exercises []Exercise) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add_global")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	batch := &pgx.Batch{}
	for _, e := range exercises {
		batch.Queue(
			`
				INSERT INTO global_exercise
				    (id, name, muscle_group, created_at)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (name, muscle_group) DO NOTHING
			`,
			e.ID, e.Name, e.MuscleGroup, e.CreatedAt,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close batch: %w", closeErr)
		}
	}()

	added := 0
	for range exercises {
		tag, err := results.Exec()
		if err != nil {
			return added, fmt.Errorf("insert global exercise: %w", err)
		}
		added += int(tag.RowsAffected())
	}

	return added, nil
}

func (r *Repo) DeleteUser(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.delete_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM user_exercise WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return fmt.Errorf("delete user exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}
