package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

// flagName is the singleton flag document's key.
const flagName = "vendorVerification"

type FlagRepo struct {
	pool *pgxpool.Pool
}

func NewFlagRepo(pool *pgxpool.Pool) *FlagRepo {
	return &FlagRepo{pool: pool}
}

// Get reads the singleton verification flag. A missing row yields the
// strict default without creating it; the first admin write creates it.
func (r *FlagRepo) Get(ctx context.Context) (model.VerificationFlag, error) {
	var f model.VerificationFlag
	err := r.pool.QueryRow(ctx,
		`SELECT mode, method FROM feature_flags WHERE name = $1`, flagName).
		Scan(&f.Mode, &f.Method)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.DefaultVerificationFlag(), nil
	}
	if err != nil {
		return model.VerificationFlag{}, err
	}
	return f, nil
}

// Set upserts the flag and NOTIFYs listeners so in-flight sessions pick
// up the new policy without waiting for the refresh tick.
func (r *FlagRepo) Set(ctx context.Context, f model.VerificationFlag) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO feature_flags (name, mode, method, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (name) DO UPDATE
		SET mode = EXCLUDED.mode, method = EXCLUDED.method, updated_at = NOW()`,
		flagName, f.Mode, f.Method)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `SELECT pg_notify('policy_changes', $1)`, flagName)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
