package mesocycle

import (
	"context"
	"encoding/json"
	"errors"
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

const selectMesocycle = `
	SELECT
	    id, user_id, name, weeks, days, workouts, completed, note, created_at
	FROM mesocycle
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMesocycle(row rowScanner) (Mesocycle, error) {
	var (
		m            Mesocycle
		daysJson     []byte
		workoutsJson []byte
	)
	if err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Name,
		&m.Weeks,
		&daysJson,
		&workoutsJson,
		&m.Completed,
		&m.Note,
		&m.CreatedAt,
	); err != nil {
		return Mesocycle{}, err
	}

	if err := json.Unmarshal(daysJson, &m.Days); err != nil {
		return Mesocycle{}, fmt.Errorf("unmarshal days: %w", err)
	}
	if err := json.Unmarshal(workoutsJson, &m.Workouts); err != nil {
		return Mesocycle{}, fmt.Errorf("unmarshal workouts: %w", err)
	}

	return m, nil
}

func marshalDocument(m Mesocycle) (days []byte, workouts []byte, err error) {
	if m.Days == nil {
		m.Days = []Day{}
	}
	if m.Workouts == nil {
		m.Workouts = []Workout{}
	}
	if days, err = json.Marshal(m.Days); err != nil {
		return nil, nil, fmt.Errorf("marshal days: %w", err)
	}
	if workouts, err = json.Marshal(m.Workouts); err != nil {
		return nil, nil, fmt.Errorf("marshal workouts: %w", err)
	}
	return days, workouts, nil
}

func (r *Repo) Add(ctx context.Context, m Mesocycle) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycle.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	daysJson, workoutsJson, err := marshalDocument(m)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO mesocycle
			    (id, user_id, name, weeks, days, workouts, completed, note, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
		m.ID, m.UserID, m.Name, m.Weeks, daysJson, workoutsJson, m.Completed, m.Note, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mesocycle: %w", err)
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, userID, id string) (_ *Mesocycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycle.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("mesocycle.id", id))

	m, err := scanMesocycle(r.db.QueryRow(
		ctx,
		selectMesocycle+`WHERE user_id = $1 AND id = $2`,
		userID, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMesocycleNotFound
		}
		return nil, fmt.Errorf("mesocycle [query row]: %w", err)
	}

	return &m, nil
}

// List returns the mesocycles of a user in creation order.
func (r *Repo) List(ctx context.Context, userID string) (_ []Mesocycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycle.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		selectMesocycle+`WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("mesocycles [query]: %w", err)
	}
	defer rows.Close()

	mesocycles := make([]Mesocycle, 0)
	for rows.Next() {
		m, err := scanMesocycle(rows)
		if err != nil {
			return nil, fmt.Errorf("mesocycles [rows scan]: %w", err)
		}
		mesocycles = append(mesocycles, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mesocycles [rows error]: %w", err)
	}

	span.SetAttributes(attribute.Int("mesocycles.count", len(mesocycles)))
	return mesocycles, nil
}

// Save overwrites the whole document.
func (r *Repo) Save(ctx context.Context, m Mesocycle) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycle.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("mesocycle.id", m.ID))

	daysJson, workoutsJson, err := marshalDocument(m)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE mesocycle
			SET name = $3, weeks = $4, days = $5, workouts = $6, completed = $7, note = $8
			WHERE user_id = $1 AND id = $2
		`,
		m.UserID, m.ID, m.Name, m.Weeks, daysJson, workoutsJson, m.Completed, m.Note,
	)
	if err != nil {
		return fmt.Errorf("update mesocycle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMesocycleNotFound
	}

	return nil
}

func (r *Repo) UpdateNote(ctx context.Context, userID, id, note string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycle.update_note")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE mesocycle SET note = $3 WHERE user_id = $1 AND id = $2`,
		userID, id, note,
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMesocycleNotFound
	}

	return nil
}

// MarkCompleted reports whether the mesocycle went from incomplete to completed.
func (r *Repo) MarkCompleted(ctx context.Context, userID, id string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycle.mark_completed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE mesocycle SET completed = TRUE WHERE user_id = $1 AND id = $2 AND completed = FALSE`,
		userID, id,
	)
	if err != nil {
		return false, fmt.Errorf("mark completed: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM mesocycle WHERE user_id = $1 AND id = $2)`,
		userID, id,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("mark completed [exists]: %w", err)
	}
	if !exists {
		return false, ErrMesocycleNotFound
	}

	return false, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycle.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM mesocycle WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return fmt.Errorf("delete mesocycle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMesocycleNotFound
	}

	return nil
}
