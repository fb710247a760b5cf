package payslip_test

import (
	"context"
	"testing"

	"hr-payroll/internal/payslip"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (payslip.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return payslip.NewRepository(gormDB), mock
}

func TestPayslipRepository_CountByPayPeriod(t *testing.T) {
	ctx := context.Background()

	// The chart binds months in the order the query returns them, so
	// the grouping must come back sorted by pay_period ascending.
	t.Run("groups and orders by pay period ascending", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT pay_period, COUNT\(\*\) AS count FROM "payslips" GROUP BY "?pay_period"? ORDER BY pay_period ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"pay_period", "count"}).
				AddRow("2024-01", int64(3)).
				AddRow("2024-02", int64(1)).
				AddRow("2024-06", int64(5)))

		rows, err := repo.CountByPayPeriod(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []payslip.MonthCount{
			{PayPeriod: "2024-01", Count: 3},
			{PayPeriod: "2024-02", Count: 1},
			{PayPeriod: "2024-06", Count: 5},
		}, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no payslips yields an empty aggregate", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT pay_period, COUNT\(\*\) AS count FROM "payslips" GROUP BY "?pay_period"? ORDER BY pay_period ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"pay_period", "count"}))

		rows, err := repo.CountByPayPeriod(ctx)

		assert.NoError(t, err)
		assert.Empty(t, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
