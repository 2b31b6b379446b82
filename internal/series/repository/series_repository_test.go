package repository

import (
	"context"
	"regexp"
	"testing"

	"aptitude_quiz/internal/service/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestPurchase(t *testing.T) {
	logger.DBLogger = zap.NewNop()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	repo := NewSeriesRepository(gormDB)
	ctx := context.Background()

	userID := 7
	seriesID := 3

	entitlementQuery := regexp.QuoteMeta(`SELECT id FROM user_test_series WHERE user_id = $1 AND test_series_id = $2`)
	seriesQuery := regexp.QuoteMeta(`SELECT id, name, coin_cost FROM test_series WHERE id = $1`)
	userQuery := regexp.QuoteMeta(`SELECT id, coins FROM users WHERE id = $1`)
	debitExec := regexp.QuoteMeta(`UPDATE users SET coins = coins - $1 WHERE id = $2 AND coins >= $3`)
	entitlementExec := regexp.QuoteMeta(`INSERT INTO user_test_series (user_id, test_series_id) VALUES ($1, $2)`)

	t.Run("Success - Debit And Entitlement", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(entitlementQuery).
			WithArgs(userID, seriesID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(seriesQuery).
			WithArgs(seriesID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "coin_cost"}).AddRow(seriesID, "Algebra Sprint", 20))
		mock.ExpectQuery(userQuery).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "coins"}).AddRow(userID, 50))
		mock.ExpectExec(debitExec).
			WithArgs(20, userID, 20).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(entitlementExec).
			WithArgs(userID, seriesID).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		result, err := repo.Purchase(ctx, userID, seriesID)
		assert.NoError(t, err)
		assert.Equal(t, "Successfully purchased Algebra Sprint", result.Message)
		assert.Equal(t, 30, result.RemainingCoins)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fail - Already Purchased", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(entitlementQuery).
			WithArgs(userID, seriesID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectRollback()

		_, err := repo.Purchase(ctx, userID, seriesID)
		assert.Error(t, err)
		assert.Equal(t, "test series already purchased", err.Error())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fail - Series Not Found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(entitlementQuery).
			WithArgs(userID, seriesID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(seriesQuery).
			WithArgs(seriesID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "coin_cost"}))
		mock.ExpectRollback()

		_, err := repo.Purchase(ctx, userID, seriesID)
		assert.Error(t, err)
		assert.Equal(t, "test series not found", err.Error())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fail - Not Enough Coins Leaves Balance Untouched", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(entitlementQuery).
			WithArgs(userID, seriesID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(seriesQuery).
			WithArgs(seriesID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "coin_cost"}).AddRow(seriesID, "Algebra Sprint", 20))
		mock.ExpectQuery(userQuery).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "coins"}).AddRow(userID, 15))
		mock.ExpectRollback()

		_, err := repo.Purchase(ctx, userID, seriesID)
		assert.Error(t, err)
		assert.Equal(t, "not enough coins", err.Error())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fail - Debit Guard Rejects Stale Balance", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(entitlementQuery).
			WithArgs(userID, seriesID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(seriesQuery).
			WithArgs(seriesID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "coin_cost"}).AddRow(seriesID, "Algebra Sprint", 20))
		mock.ExpectQuery(userQuery).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "coins"}).AddRow(userID, 50))
		mock.ExpectExec(debitExec).
			WithArgs(20, userID, 20).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.Purchase(ctx, userID, seriesID)
		assert.Error(t, err)
		assert.Equal(t, "not enough coins", err.Error())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fail - Entitlement Insert Rolls Back Debit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(entitlementQuery).
			WithArgs(userID, seriesID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(seriesQuery).
			WithArgs(seriesID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "coin_cost"}).AddRow(seriesID, "Algebra Sprint", 20))
		mock.ExpectQuery(userQuery).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "coins"}).AddRow(userID, 50))
		mock.ExpectExec(debitExec).
			WithArgs(20, userID, 20).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(entitlementExec).
			WithArgs(userID, seriesID).
			WillReturnError(gorm.ErrInvalidDB)
		mock.ExpectRollback()

		_, err := repo.Purchase(ctx, userID, seriesID)
		assert.Error(t, err)
		assert.Equal(t, "failed to record purchase", err.Error())

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetTestSeries(t *testing.T) {
	logger.DBLogger = zap.NewNop()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	repo := NewSeriesRepository(gormDB)
	ctx := context.Background()

	t.Run("Success - Anonymous Variant", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT ts.id, ts.name, ts.description, ts.coin_cost, COUNT(q.id) AS question_count FROM test_series ts LEFT JOIN questions q ON ts.id = q.test_series_id GROUP BY ts.id ORDER BY ts.name`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "coin_cost", "question_count"}).
				AddRow(3, "Algebra Sprint", "Drill set", 20, 25))

		series, err := repo.GetTestSeries(ctx)
		assert.NoError(t, err)
		require.Len(t, series, 1)
		assert.Equal(t, 20, series[0].CoinCost)
		assert.False(t, series[0].Purchased)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Authenticated Variant Includes Purchased Flag", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT ts.id, ts.name, ts.description, ts.coin_cost, COUNT(q.id) AS question_count, CASE WHEN uts.id IS NOT NULL THEN true ELSE false END AS purchased FROM test_series ts LEFT JOIN questions q ON ts.id = q.test_series_id LEFT JOIN user_test_series uts ON ts.id = uts.test_series_id AND uts.user_id = $1 GROUP BY ts.id, uts.id ORDER BY ts.name`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "coin_cost", "question_count", "purchased"}).
				AddRow(3, "Algebra Sprint", "Drill set", 20, 25, true))

		series, err := repo.GetTestSeriesForUser(ctx, 7)
		assert.NoError(t, err)
		require.Len(t, series, 1)
		assert.True(t, series[0].Purchased)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
