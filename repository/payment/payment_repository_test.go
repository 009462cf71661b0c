package payment_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/repository/payment"
	"github.com/muhammadheryan/wa-crm/repository/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_FindMany_Between(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := payment.NewPaymentRepository(sqlx.NewDb(mockDB, "sqlmock"))

	where, err := predicate.Compile(constant.EntityPayments, []model.FilterClause{
		{Field: "amount", Operator: constant.OpBetween, Value: []any{100.0, 500.0}},
	})
	require.NoError(t, err)
	order, _ := predicate.OrderFor(constant.EntityPayments, "paymentDate", constant.SortDesc)
	paid := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment p WHERE (p.amount >= ? AND p.amount <= ?) ORDER BY p.payment_date DESC, p.id ASC LIMIT ? OFFSET ?")).
		WithArgs(100.0, 500.0, 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "subscription_id", "amount", "currency", "status", "payment_method", "transaction_id", "description", "payment_date"}).
			AddRow(1, 3, nil, 100.0, "TRY", "COMPLETED", "CREDIT_CARD", "tx-1", nil, paid).
			AddRow(2, 3, 8, 500.0, "TRY", "COMPLETED", "BANK_TRANSFER", nil, "renewal", paid))

	got, err := repo.FindMany(context.Background(), where, order, 0, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].SubscriptionID)
	assert.Equal(t, "tx-1", *got[0].TransactionID)
	assert.Equal(t, uint64(8), *got[1].SubscriptionID)
	assert.Equal(t, 500.0, got[1].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Count_Error(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := payment.NewPaymentRepository(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM payment p WHERE p.user_id = ?")).
		WithArgs(uint64(2)).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.Count(context.Background(), predicate.New().Scope("p.user_id", 2))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Distinct_SkipsNull(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := payment.NewPaymentRepository(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT p.transaction_id AS value FROM payment p WHERE p.transaction_id IS NOT NULL ORDER BY value ASC LIMIT ?")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tx-1"))

	got, err := repo.Distinct(context.Background(), "p.transaction_id", nil, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"tx-1"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
