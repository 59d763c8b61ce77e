package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB, DriverName: "postgres"}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func TestPing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing()
	require.NoError(t, Ping(context.Background(), sqlDB))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, Ping(context.Background(), sqlDB))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_DecrementStockUsesGuardedUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products" SET "stock"=stock - $1,"updated_at"=$2 WHERE id = $3 AND stock >= $4`)).
		WithArgs(3, sqlmock.AnyArg(), id, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DecrementStock(context.Background(), id, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_DecrementStockReportsShortfall(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "products" SET .* WHERE id = .* AND stock >= .*`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE id = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.DecrementStock(context.Background(), id, 1)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}
