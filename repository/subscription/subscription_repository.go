package subscription

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/repository/predicate"
)

type SQL struct {
	conn *sqlx.DB
}

type SubscriptionRepository interface {
	FindMany(ctx context.Context, where *predicate.Predicate, order predicate.Order, offset, limit int) ([]model.Subscription, error)
	Count(ctx context.Context, where *predicate.Predicate) (int64, error)
	Distinct(ctx context.Context, column string, where *predicate.Predicate, limit int) ([]string, error)
}

func NewSubscriptionRepository(conn *sqlx.DB) SubscriptionRepository {
	return &SQL{conn: conn}
}

const (
	selectSubscriptions = `SELECT s.id, s.user_id, s.plan, s.status, s.price, s.auto_renew, s.start_date, s.end_date,
(SELECT COUNT(*) FROM payment p WHERE p.subscription_id = s.id) AS payment_count
FROM subscription s`
	countSubscriptions = `SELECT COUNT(*) FROM subscription s`
)

// FindMany returns subscriptions enriched with the number of related payments.
func (s *SQL) FindMany(ctx context.Context, where *predicate.Predicate, order predicate.Order, offset, limit int) ([]model.Subscription, error) {
	clause, args := where.Where()
	query := selectSubscriptions + clause + order.SQL("s.id") + " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Subscription, 0)
	for rows.Next() {
		var it model.Subscription
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
	if err := s.conn.GetContext(ctx, &total, countSubscriptions+clause, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) Distinct(ctx context.Context, column string, where *predicate.Predicate, limit int) ([]string, error) {
	clause, args := where.Where()
	query := "SELECT DISTINCT " + column + " AS value FROM subscription s" + clause + " ORDER BY value ASC LIMIT ?"
	args = append(args, limit)

	values := make([]string, 0, limit)
	if err := s.conn.SelectContext(ctx, &values, query, args...); err != nil {
		return nil, err
	}
	return values, nil
}
