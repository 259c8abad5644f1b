package catalogrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/carbon-planner/internal/domain/catalog"
	"github.com/yanqian/carbon-planner/internal/domain/footprint"
)

// PostgresRepository implements catalog.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListActive returns active actions in seeded catalog order.
func (r *PostgresRepository) ListActive(ctx context.Context) ([]catalog.Action, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, category, description, carbon_saved_kg, monthly_savings,
		       upfront_cost, difficulty, phase, tree_equivalent, requires_garden,
		       requires_home_ownership, min_household_size, applicable_vehicles,
		       applicable_diets, ac_related, cardio, is_active
		FROM catalog_actions
		WHERE is_active
		ORDER BY position, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []catalog.Action
	for rows.Next() {
		var (
			action   catalog.Action
			vehicles []string
			diets    []string
		)
		if err := rows.Scan(
			&action.ID, &action.Name, &action.Category, &action.Description,
			&action.CarbonSavedKgPerMonth, &action.MonthlySavings, &action.UpfrontCost,
			&action.Difficulty, &action.Phase, &action.TreeEquivalent,
			&action.RequiresGarden, &action.RequiresHomeOwnership, &action.MinHouseholdSize,
			&vehicles, &diets, &action.Tags.ACRelated, &action.Tags.Cardio, &action.Active,
		); err != nil {
			return nil, err
		}
		for _, v := range vehicles {
			action.ApplicableVehicles = append(action.ApplicableVehicles, footprint.VehicleType(v))
		}
		for _, d := range diets {
			action.ApplicableDiets = append(action.ApplicableDiets, footprint.DietaryPreference(d))
		}
		actions = append(actions, action)
	}
	return actions, rows.Err()
}

// SeedMissing inserts actions absent by name. The unique constraint on name
// makes a concurrent double-seed harmless.
func (r *PostgresRepository) SeedMissing(ctx context.Context, actions []catalog.Action) (int, error) {
	added := 0
	for position, action := range actions {
		if action.ID == "" {
			action.ID = uuid.NewString()
		}
		vehicles := make([]string, 0, len(action.ApplicableVehicles))
		for _, v := range action.ApplicableVehicles {
			vehicles = append(vehicles, string(v))
		}
		diets := make([]string, 0, len(action.ApplicableDiets))
		for _, d := range action.ApplicableDiets {
			diets = append(diets, string(d))
		}
		tag, err := r.pool.Exec(ctx, `
			INSERT INTO catalog_actions (
				id, name, category, description, carbon_saved_kg, monthly_savings,
				upfront_cost, difficulty, phase, tree_equivalent, requires_garden,
				requires_home_ownership, min_household_size, applicable_vehicles,
				applicable_diets, ac_related, cardio, is_active, position
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
			ON CONFLICT (name) DO NOTHING
		`,
			action.ID, action.Name, string(action.Category), action.Description,
			action.CarbonSavedKgPerMonth, action.MonthlySavings, action.UpfrontCost,
			action.Difficulty, string(action.Phase), action.TreeEquivalent,
			action.RequiresGarden, action.RequiresHomeOwnership, action.MinHouseholdSize,
			vehicles, diets, action.Tags.ACRelated, action.Tags.Cardio, action.Active, position,
		)
		if err != nil {
			return added, err
		}
		added += int(tag.RowsAffected())
	}
	return added, nil
}

var _ catalog.Repository = (*PostgresRepository)(nil)
