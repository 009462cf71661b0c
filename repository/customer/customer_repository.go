package customer

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/repository/predicate"
)

type SQL struct {
	conn *sqlx.DB
}

// CustomerRepository reads customers as groups of message rows; there is no
// customer table.
type CustomerRepository interface {
	GroupBy(ctx context.Context, where *predicate.Predicate) ([]model.CustomerAggregate, error)
}

func NewCustomerRepository(conn *sqlx.DB) CustomerRepository {
	return &SQL{conn: conn}
}

const (
	groupCustomersSelect = `SELECT m.customer_phone, m.customer_name, m.user_id,
COUNT(*) AS message_count,
COALESCE(SUM(CASE WHEN m.direction = 'INBOUND' AND m.is_read = FALSE THEN 1 ELSE 0 END), 0) AS unread_count,
MAX(m.timestamp) AS last_activity
FROM message m`
	groupCustomersBy = ` GROUP BY m.customer_phone, m.customer_name, m.user_id`
)

// GroupBy materializes every (customer_phone, customer_name, user_id) group
// matching where. Ordering and paging happen in the caller.
func (s *SQL) GroupBy(ctx context.Context, where *predicate.Predicate) ([]model.CustomerAggregate, error) {
	clause, args := where.Where()

	rows, err := s.conn.QueryxContext(ctx, groupCustomersSelect+clause+groupCustomersBy, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CustomerAggregate, 0)
	for rows.Next() {
		var it model.CustomerAggregate
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
