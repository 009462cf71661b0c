package payment

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/repository/predicate"
)

type SQL struct {
	conn *sqlx.DB
}

type PaymentRepository interface {
	FindMany(ctx context.Context, where *predicate.Predicate, order predicate.Order, offset, limit int) ([]model.Payment, error)
	Count(ctx context.Context, where *predicate.Predicate) (int64, error)
	Distinct(ctx context.Context, column string, where *predicate.Predicate, limit int) ([]string, error)
}

func NewPaymentRepository(conn *sqlx.DB) PaymentRepository {
	return &SQL{conn: conn}
}

const (
	selectPayments = `SELECT p.id, p.user_id, p.subscription_id, p.amount, p.currency, p.status, p.payment_method, p.transaction_id, p.description, p.payment_date FROM payment p`
	countPayments  = `SELECT COUNT(*) FROM payment p`
)

func (s *SQL) FindMany(ctx context.Context, where *predicate.Predicate, order predicate.Order, offset, limit int) ([]model.Payment, error) {
	clause, args := where.Where()
	query := selectPayments + clause + order.SQL("p.id") + " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Payment, 0)
	for rows.Next() {
		var it model.Payment
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Count(ctx context.Context, where *predicate.Predicate) (int64, error) {
	clause, args := where.Where()
	var total int64
	if err := s.conn.GetContext(ctx, &total, countPayments+clause, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) Distinct(ctx context.Context, column string, where *predicate.Predicate, limit int) ([]string, error) {
	clause, args := where.Where()
	nonNull := column + " IS NOT NULL"
	if clause == "" {
		clause = " WHERE " + nonNull
	} else {
		clause += " AND " + nonNull
	}
	query := "SELECT DISTINCT " + column + " AS value FROM payment p" + clause + " ORDER BY value ASC LIMIT ?"
	args = append(args, limit)

	values := make([]string, 0, limit)
	if err := s.conn.SelectContext(ctx, &values, query, args...); err != nil {
		return nil, err
	}
	return values, nil
}
