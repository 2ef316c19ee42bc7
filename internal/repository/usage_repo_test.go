package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/facility-pricing-service/internal/repository"
)

func TestUsageRepo_Reserve(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE coupons").WithArgs("c1", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE coupons").WithArgs("c2", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO coupon_redemptions").WithArgs("c1", "u1", "o1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	repo := repository.NewUsageRepo(db)

	ok, err := repo.Reserve(ctx, tx, "c1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Reserve(ctx, tx, "c2")
	require.NoError(t, err)
	assert.False(t, ok, "exhausted coupon is not reserved")

	require.NoError(t, repo.RecordRedemption(ctx, tx, "c1", "u1", "o1"))
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
