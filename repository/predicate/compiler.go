package predicate

import (
	"fmt"
	"strings"

	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
)

// columns maps logical field names to physical columns. CUSTOMERS has no table
// of its own: its fields resolve onto the message table.
var columns = map[constant.SearchEntity]map[string]string{
	constant.EntityMessages: {
		"id":             "m.id",
		"userId":         "m.user_id",
		"customerName":   "m.customer_name",
		"customerPhone":  "m.customer_phone",
		"messageContent": "m.message_content",
		"messageType":    "m.message_type",
		"direction":      "m.direction",
		"status":         "m.status",
		"isRead":         "m.is_read",
		"timestamp":      "m.timestamp",
	},
	constant.EntityCustomers: {
		"name":         "m.customer_name",
		"phone":        "m.customer_phone",
		"lastActivity": "m.timestamp",
		"userId":       "m.user_id",
	},
	constant.EntityPayments: {
		"id":             "p.id",
		"userId":         "p.user_id",
		"subscriptionId": "p.subscription_id",
		"amount":         "p.amount",
		"currency":       "p.currency",
		"status":         "p.status",
		"paymentMethod":  "p.payment_method",
		"transactionId":  "p.transaction_id",
		"description":    "p.description",
		"paymentDate":    "p.payment_date",
	},
	constant.EntitySubscriptions: {
		"id":        "s.id",
		"userId":    "s.user_id",
		"plan":      "s.plan",
		"status":    "s.status",
		"price":     "s.price",
		"autoRenew": "s.auto_renew",
		"startDate": "s.start_date",
		"endDate":   "s.end_date",
	},
}

// Column resolves a logical field of entity to its physical column.
func Column(entity constant.SearchEntity, field string) (string, bool) {
	c, ok := columns[entity][field]
	return c, ok
}

// ErrUncompilable is returned for clauses the grammar should already have
// rejected. Reaching it is a programming error.
type ErrUncompilable struct {
	Entity   constant.SearchEntity
	Field    string
	Operator constant.Operator
}

func (e *ErrUncompilable) Error() string {
	return fmt.Sprintf("predicate: cannot compile %s.%s %s", e.Entity, e.Field, e.Operator)
}

// Compile ANDs the fragments of already validated clauses. A clause that
// cannot be compiled fails the whole predicate.
func Compile(entity constant.SearchEntity, clauses []model.FilterClause) (*Predicate, error) {
	p := New()
	for _, c := range clauses {
		cond, args, err := fragment(entity, c)
		if err != nil {
			return nil, err
		}
		p.And(cond, args...)
	}
	return p, nil
}

func fragment(entity constant.SearchEntity, c model.FilterClause) (string, []any, error) {
	if c.IsGroup() {
		parts := make([]string, 0, len(c.Or))
		var args []any
		for _, m := range c.Or {
			if m.IsGroup() {
				return "", nil, &ErrUncompilable{Entity: entity, Operator: "or"}
			}
			cond, a, err := fragment(entity, m)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, cond)
			args = append(args, a...)
		}
		return "(" + strings.Join(parts, " OR ") + ")", args, nil
	}

	col, ok := Column(entity, c.Field)
	if !ok {
		return "", nil, &ErrUncompilable{Entity: entity, Field: c.Field, Operator: c.Operator}
	}
	bad := &ErrUncompilable{Entity: entity, Field: c.Field, Operator: c.Operator}

	switch c.Operator {
	case constant.OpEquals:
		return col + " = ?", []any{c.Value}, nil
	case constant.OpContains, constant.OpStartsWith, constant.OpEndsWith:
		s, ok := c.Value.(string)
		if !ok {
			return "", nil, bad
		}
		return "LOWER(" + col + ") LIKE ?", []any{likePattern(c.Operator, s)}, nil
	case constant.OpGt:
		return col + " > ?", []any{c.Value}, nil
	case constant.OpGte:
		return col + " >= ?", []any{c.Value}, nil
	case constant.OpLt:
		return col + " < ?", []any{c.Value}, nil
	case constant.OpLte:
		return col + " <= ?", []any{c.Value}, nil
	case constant.OpIn:
		values, ok := c.Value.([]any)
		if !ok || len(values) == 0 {
			return "", nil, bad
		}
		return col + " IN (?" + strings.Repeat(", ?", len(values)-1) + ")", values, nil
	case constant.OpBetween:
		values, ok := c.Value.([]any)
		if !ok || len(values) != 2 {
			return "", nil, bad
		}
		return "(" + col + " >= ? AND " + col + " <= ?)", []any{values[0], values[1]}, nil
	}

	return "", nil, bad
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(op constant.Operator, s string) string {
	s = likeEscaper.Replace(strings.ToLower(s))
	switch op {
	case constant.OpStartsWith:
		return s + "%"
	case constant.OpEndsWith:
		return "%" + s
	}
	return "%" + s + "%"
}

// OrderFor resolves an already validated sort field of a table backed entity
// into an Order. CUSTOMERS is ordered after aggregation, not here.
func OrderFor(entity constant.SearchEntity, field string, order constant.SortOrder) (Order, error) {
	if entity == constant.EntityCustomers {
		return Order{}, &ErrUncompilable{Entity: entity, Field: field, Operator: "sort"}
	}
	col, ok := Column(entity, field)
	if !ok {
		return Order{}, &ErrUncompilable{Entity: entity, Field: field, Operator: "sort"}
	}
	return Order{Column: col, Desc: order == constant.SortDesc}, nil
}
