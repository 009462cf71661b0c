package predicate_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/wa-crm/application/filter"
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/repository/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		entity    constant.SearchEntity
		clauses   []model.FilterClause
		wantWhere string
		wantArgs  []any
		wantErr   bool
	}{
		{
			name:      "no clauses",
			entity:    constant.EntityMessages,
			wantWhere: "",
		},
		{
			name:   "between is inclusive on both bounds",
			entity: constant.EntityPayments,
			clauses: []model.FilterClause{
				{Field: "amount", Operator: constant.OpBetween, Value: []any{100.0, 500.0}},
			},
			wantWhere: " WHERE (p.amount >= ? AND p.amount <= ?)",
			wantArgs:  []any{100.0, 500.0},
		},
		{
			name:   "string operators lower and escape",
			entity: constant.EntityMessages,
			clauses: []model.FilterClause{
				{Field: "customerName", Operator: constant.OpContains, Value: "Ah_met"},
				{Field: "customerPhone", Operator: constant.OpStartsWith, Value: "+90"},
				{Field: "messageContent", Operator: constant.OpEndsWith, Value: "100%"},
			},
			wantWhere: " WHERE LOWER(m.customer_name) LIKE ? AND LOWER(m.customer_phone) LIKE ? AND LOWER(m.message_content) LIKE ?",
			wantArgs:  []any{`%ah\_met%`, "+90%", `%100\%`},
		},
		{
			name:   "customers alias onto message columns",
			entity: constant.EntityCustomers,
			clauses: []model.FilterClause{
				{Field: "name", Operator: constant.OpEquals, Value: "Ayse"},
				{Field: "lastActivity", Operator: constant.OpGte, Value: since},
			},
			wantWhere: " WHERE m.customer_name = ? AND m.timestamp >= ?",
			wantArgs:  []any{"Ayse", since},
		},
		{
			name:   "in and range",
			entity: constant.EntitySubscriptions,
			clauses: []model.FilterClause{
				{Field: "status", Operator: constant.OpIn, Value: []any{"ACTIVE", "TRIAL"}},
				{Field: "price", Operator: constant.OpLt, Value: 50.0},
			},
			wantWhere: " WHERE s.status IN (?, ?) AND s.price < ?",
			wantArgs:  []any{"ACTIVE", "TRIAL", 50.0},
		},
		{
			name:   "or group",
			entity: constant.EntityMessages,
			clauses: []model.FilterClause{
				{Or: []model.FilterClause{
					{Field: "messageContent", Operator: constant.OpContains, Value: "Ahmet"},
					{Field: "customerName", Operator: constant.OpContains, Value: "Ahmet"},
				}},
				{Field: "isRead", Operator: constant.OpEquals, Value: false},
			},
			wantWhere: " WHERE (LOWER(m.message_content) LIKE ? OR LOWER(m.customer_name) LIKE ?) AND m.is_read = ?",
			wantArgs:  []any{"%ahmet%", "%ahmet%", false},
		},
		{
			name:    "unknown field fails instead of being dropped",
			entity:  constant.EntityPayments,
			clauses: []model.FilterClause{{Field: "secret", Operator: constant.OpEquals, Value: "x"}},
			wantErr: true,
		},
		{
			name:    "unnormalized between fails",
			entity:  constant.EntityPayments,
			clauses: []model.FilterClause{{Field: "amount", Operator: constant.OpBetween, Value: 1.0}},
			wantErr: true,
		},
		{
			name:    "unknown operator fails",
			entity:  constant.EntityPayments,
			clauses: []model.FilterClause{{Field: "amount", Operator: "regex", Value: 1.0}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p, err := predicate.Compile(tt.entity, tt.clauses)
			if tt.wantErr {
				var ue *predicate.ErrUncompilable
				assert.ErrorAs(t, err, &ue)
				return
			}
			require.NoError(t, err)
			where, args := p.Where()
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestPredicate_ScopeIsLast(t *testing.T) {
	p, err := predicate.Compile(constant.EntityPayments, []model.FilterClause{
		{Field: "userId", Operator: constant.OpEquals, Value: 99.0},
	})
	require.NoError(t, err)
	p.Scope("p.user_id", 7)

	where, args := p.Where()
	assert.Equal(t, " WHERE p.user_id = ? AND p.user_id = ?", where)
	assert.Equal(t, []any{99.0, uint64(7)}, args)
}

func TestOrderFor(t *testing.T) {
	o, err := predicate.OrderFor(constant.EntityPayments, "amount", constant.SortAsc)
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY p.amount ASC, p.id ASC", o.SQL("p.id"))

	o, err = predicate.OrderFor(constant.EntityMessages, "id", constant.SortDesc)
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY m.id DESC", o.SQL("m.id"))

	_, err = predicate.OrderFor(constant.EntityCustomers, "lastActivity", constant.SortDesc)
	assert.Error(t, err)
}

// Every field the grammar registers must have a physical column.
func TestColumns_CoverGrammar(t *testing.T) {
	for _, entity := range filter.Entities() {
		e, _ := filter.Lookup(entity)
		for _, f := range e.Fields {
			_, ok := predicate.Column(entity, f.Name)
			assert.True(t, ok, "%s.%s has no column", entity, f.Name)
		}
	}
}
