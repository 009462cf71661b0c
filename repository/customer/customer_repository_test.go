package customer_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/repository/customer"
	"github.com/muhammadheryan/wa-crm/repository/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_GroupBy(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := customer.NewCustomerRepository(sqlx.NewDb(mockDB, "sqlmock"))

	last := time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM message m WHERE m.user_id = \? GROUP BY m.customer_phone, m.customer_name, m.user_id$`).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"customer_phone", "customer_name", "user_id", "message_count", "unread_count", "last_activity"}).
			AddRow("+905551234567", "Ahmet", 1, 5, 3, last))

	got, err := repo.GroupBy(context.Background(), predicate.New().Scope("m.user_id", 1))
	require.NoError(t, err)
	assert.Equal(t, []model.CustomerAggregate{{
		CustomerPhone: "+905551234567",
		CustomerName:  "Ahmet",
		UserID:        1,
		MessageCount:  5,
		UnreadCount:   3,
		LastActivity:  last,
	}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GroupBy_NoFilter(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := customer.NewCustomerRepository(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectQuery(regexp.QuoteMeta("MAX(m.timestamp) AS last_activity\nFROM message m GROUP BY m.customer_phone, m.customer_name, m.user_id")).
		WillReturnRows(sqlmock.NewRows([]string{"customer_phone", "customer_name", "user_id", "message_count", "unread_count", "last_activity"}))

	got, err := repo.GroupBy(context.Background(), predicate.New())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
