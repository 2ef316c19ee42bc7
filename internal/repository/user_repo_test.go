package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/facility-pricing-service/internal/repository"
	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

func TestUserRepo_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM users").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "current_seat", "current_hostel_room", "meals_eaten"}).
			AddRow("u1", 5000.0, "A-12", "", 61))

	u, err := repository.NewUserRepo(db).Get(context.Background(), "u1")

	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, u.HasActiveSeat())
	assert.False(t, u.HasActiveHostelRoom())
	assert.Equal(t, 61, u.MealsEaten)
}

func TestUserRepo_Get_Unknown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM users").WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "current_seat", "current_hostel_room", "meals_eaten"}))

	u, err := repository.NewUserRepo(db).Get(context.Background(), "ghost")

	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepo_TopUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").WithArgs("u1", 250.0).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(1250.0))
	mock.ExpectQuery("UPDATE users").WithArgs("ghost", 250.0).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}))

	repo := repository.NewUserRepo(db)

	balance, err := repo.TopUp(context.Background(), "u1", 250)
	require.NoError(t, err)
	assert.Equal(t, 1250.0, balance)

	_, err = repo.TopUp(context.Background(), "ghost", 250)
	assert.Equal(t, xerrors.KindNotFound, xerrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_LockAndDebit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT balance FROM users WHERE id = \\$1 FOR UPDATE").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(5000.0))
	mock.ExpectQuery("UPDATE users").WithArgs("u1", 3200.0).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(1800.0))
	mock.ExpectCommit()

	ctx := context.Background()
	repo := repository.NewUserRepo(db)
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	balance, err := repo.LockBalance(ctx, tx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, balance)

	balance, err = repo.Debit(ctx, tx, "u1", 3200)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, balance)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_LockBalance_Unknown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("ghost").WillReturnRows(sqlmock.NewRows([]string{"balance"}))
	mock.ExpectRollback()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	_, err = repository.NewUserRepo(db).LockBalance(ctx, tx, "ghost")
	assert.ErrorIs(t, err, xerrors.ErrUserNotFound)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
