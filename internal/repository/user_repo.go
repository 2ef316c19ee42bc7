package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/Cheertaboi/facility-pricing-service/internal/models"
	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Get returns nil, nil for an unknown user.
func (r *UserRepo) Get(ctx context.Context, id string) (*models.UserRecord, error) {
	query := `
		SELECT id, balance, COALESCE(current_seat, ''), COALESCE(current_hostel_room, ''), meals_eaten
		FROM users
		WHERE id = $1`

	var u models.UserRecord
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.Balance,
		&u.CurrentSeat,
		&u.CurrentHostelRoom,
		&u.MealsEaten,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get user %s", id)
	}
	return &u, nil
}

// TopUp credits amount and returns the new balance.
func (r *UserRepo) TopUp(ctx context.Context, id string, amount float64) (float64, error) {
	query := `
		UPDATE users
		SET balance = balance + $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING balance`

	var balance float64
	err := r.db.QueryRowContext(ctx, query, id, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, xerrors.ErrUserNotFound
		}
		return 0, errors.Wrapf(err, "top up user %s", id)
	}
	return balance, nil
}

// LockBalance reads the balance and holds the user row until tx ends.
func (r *UserRepo) LockBalance(ctx context.Context, tx *sql.Tx, id string) (float64, error) {
	query := `SELECT balance FROM users WHERE id = $1 FOR UPDATE`

	var balance float64
	err := tx.QueryRowContext(ctx, query, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, xerrors.ErrUserNotFound
		}
		return 0, errors.Wrapf(err, "lock user %s", id)
	}
	return balance, nil
}

// Debit subtracts amount and returns the new balance. Callers check funds under LockBalance first.
func (r *UserRepo) Debit(ctx context.Context, tx *sql.Tx, id string, amount float64) (float64, error) {
	query := `
		UPDATE users
		SET balance = balance - $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING balance`

	var balance float64
	if err := tx.QueryRowContext(ctx, query, id, amount).Scan(&balance); err != nil {
		return 0, errors.Wrapf(err, "debit user %s", id)
	}
	return balance, nil
}
