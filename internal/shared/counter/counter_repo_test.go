package counter_test

import (
	"context"
	"errors"
	"testing"

	"hr-payroll/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (counter.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return counter.NewRepository(gormDB), mock
}

func TestCounterRepository_NextValue(t *testing.T) {
	ctx := context.Background()

	t.Run("first allocation starts at 1", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery("INSERT INTO entity_counters").
			WithArgs(counter.KindEmployee).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(1)))

		next, err := repo.NextValue(ctx, counter.KindEmployee)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), next)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing counter increments", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery("INSERT INTO entity_counters").
			WithArgs(counter.KindPayslip).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(42)))

		next, err := repo.NextValue(ctx, counter.KindPayslip)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), next)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store error", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery("INSERT INTO entity_counters").
			WithArgs(counter.KindClient).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.NextValue(ctx, counter.KindClient)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
