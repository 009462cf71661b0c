package message

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/repository/predicate"
)

type SQL struct {
	conn *sqlx.DB
}

type MessageRepository interface {
	FindMany(ctx context.Context, where *predicate.Predicate, order predicate.Order, offset, limit int) ([]model.Message, error)
	Count(ctx context.Context, where *predicate.Predicate) (int64, error)
	Distinct(ctx context.Context, column string, where *predicate.Predicate, limit int) ([]string, error)
}

func NewMessageRepository(conn *sqlx.DB) MessageRepository {
	return &SQL{conn: conn}
}

const (
	selectMessages = `SELECT m.id, m.user_id, m.customer_name, m.customer_phone, m.message_content, m.message_type, m.direction, m.status, m.is_read, m.timestamp FROM message m`
	countMessages  = `SELECT COUNT(*) FROM message m`
)

func (s *SQL) FindMany(ctx context.Context, where *predicate.Predicate, order predicate.Order, offset, limit int) ([]model.Message, error) {
	clause, args := where.Where()
	query := selectMessages + clause + order.SQL("m.id") + " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Message, 0)
	for rows.Next() {
		var it model.Message
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
	if err := s.conn.GetContext(ctx, &total, countMessages+clause, args...); err != nil {
		return 0, err
	}
	return total, nil
}

// Distinct lists up to limit distinct non-empty values of column, ascending.
// column must come from the predicate field map.
func (s *SQL) Distinct(ctx context.Context, column string, where *predicate.Predicate, limit int) ([]string, error) {
	clause, args := where.Where()
	query := "SELECT DISTINCT " + column + " AS value FROM message m" + clause + " ORDER BY value ASC LIMIT ?"
	args = append(args, limit)

	values := make([]string, 0, limit)
	if err := s.conn.SelectContext(ctx, &values, query, args...); err != nil {
		return nil, err
	}
	return values, nil
}
