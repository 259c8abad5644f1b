package planrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/carbon-planner/internal/domain/planner"
)

// PostgresRepository persists plans in Postgres. The plan aggregate lives as
// a JSONB payload; per-action completion state lives in its own rows so
// toggles never rewrite the payload.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// FindCurrent loads the user's plan and overlays completion state.
func (r *PostgresRepository) FindCurrent(ctx context.Context, userID string) (planner.Plan, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, payload
		FROM plans
		WHERE user_id = $1
		LIMIT 1
	`, userID)
	if err != nil {
		return planner.Plan{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return planner.Plan{}, false, rows.Err()
	}

	var (
		planID  string
		payload []byte
	)
	if err := rows.Scan(&planID, &payload); err != nil {
		return planner.Plan{}, false, err
	}
	rows.Close()

	var plan planner.Plan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return planner.Plan{}, false, err
	}
	plan.UserID = userID

	if err := r.overlayCompletion(ctx, planID, &plan); err != nil {
		return planner.Plan{}, false, err
	}
	return plan, true, nil
}

func (r *PostgresRepository) overlayCompletion(ctx context.Context, planID string, plan *planner.Plan) error {
	rows, err := r.pool.Query(ctx, `
		SELECT action_id, is_completed, completed_at
		FROM plan_actions
		WHERE plan_id = $1
	`, planID)
	if err != nil {
		return err
	}
	defer rows.Close()

	type completion struct {
		completed   bool
		completedAt *time.Time
	}
	states := make(map[string]completion)
	for rows.Next() {
		var (
			actionID  string
			completed bool
			at        sql.NullTime
		)
		if err := rows.Scan(&actionID, &completed, &at); err != nil {
			return err
		}
		state := completion{completed: completed}
		if at.Valid {
			ts := at.Time
			state.completedAt = &ts
		}
		states[actionID] = state
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for pi := range plan.Phases {
		for ai := range plan.Phases[pi].Actions {
			entry := &plan.Phases[pi].Actions[ai]
			if state, ok := states[entry.Action.ID]; ok {
				entry.Completed = state.completed
				entry.CompletedAt = state.completedAt
			}
		}
	}
	return nil
}

// Replace swaps the user's current plan inside one transaction.
func (r *PostgresRepository) Replace(ctx context.Context, plan planner.Plan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM plan_actions
			WHERE plan_id IN (SELECT id FROM plans WHERE user_id = $1)
		`, plan.UserID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM plans WHERE user_id = $1`, plan.UserID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO plans (id, user_id, created_at, expires_at, payload)
			VALUES ($1, $2, $3, $4, $5)
		`, plan.ID, plan.UserID, plan.CreatedAt, plan.ExpiresAt, payload); err != nil {
			return err
		}
		for _, phase := range plan.Phases {
			for _, entry := range phase.Actions {
				if _, err := tx.Exec(ctx, `
					INSERT INTO plan_actions (plan_id, action_id, action_name, phase, score, is_completed, completed_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7)
				`, plan.ID, entry.Action.ID, entry.Action.Name, string(phase.Phase), entry.Score, entry.Completed, entry.CompletedAt); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// SetActionCompletion flips one action's completion flag, scoped to the
// owning user, and returns the plan's completion counts.
func (r *PostgresRepository) SetActionCompletion(ctx context.Context, userID, planID, actionID string, completed bool, at time.Time) (int, int, error) {
	var completedAt any
	if completed {
		completedAt = at
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE plan_actions
		SET is_completed = $1, completed_at = $2
		WHERE plan_id = $3
		  AND action_id = $4
		  AND plan_id IN (SELECT id FROM plans WHERE user_id = $5)
	`, completed, completedAt, planID, actionID, userID)
	if err != nil {
		return 0, 0, err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM plans WHERE id = $1 AND user_id = $2)
		`, planID, userID).Scan(&exists); err != nil {
			return 0, 0, err
		}
		if !exists {
			return 0, 0, planner.ErrPlanNotFound
		}
		return 0, 0, planner.ErrActionNotFound
	}

	var completedCount, total int
	if err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE is_completed), COUNT(*)
		FROM plan_actions
		WHERE plan_id = $1
	`, planID).Scan(&completedCount, &total); err != nil {
		return 0, 0, err
	}
	return completedCount, total, nil
}

var _ planner.Repository = (*PostgresRepository)(nil)
