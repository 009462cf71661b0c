package filter_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/muhammadheryan/wa-crm/application/filter"
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allOperators = []constant.Operator{
	constant.OpEquals, constant.OpContains, constant.OpStartsWith, constant.OpEndsWith,
	constant.OpGt, constant.OpGte, constant.OpLt, constant.OpLte, constant.OpIn, constant.OpBetween,
}

func TestValidateClause(t *testing.T) {
	tests := []struct {
		name     string
		entity   constant.SearchEntity
		clause   model.FilterClause
		want     model.FilterClause
		wantKind constant.ErrorType
	}{
		{
			name:   "success: contains on string",
			entity: constant.EntityMessages,
			clause: model.FilterClause{Field: "customerName", Operator: constant.OpContains, Value: "Ahmet"},
			want:   model.FilterClause{Field: "customerName", Operator: constant.OpContains, Value: "Ahmet"},
		},
		{
			name:   "success: between on amount",
			entity: constant.EntityPayments,
			clause: model.FilterClause{Field: "amount", Operator: constant.OpBetween, Value: []any{100.0, 500.0}},
			want:   model.FilterClause{Field: "amount", Operator: constant.OpBetween, Value: []any{100.0, 500.0}},
		},
		{
			name:   "success: between accepts typed slices and ints",
			entity: constant.EntityPayments,
			clause: model.FilterClause{Field: "amount", Operator: constant.OpBetween, Value: []int{1, 2}},
			want:   model.FilterClause{Field: "amount", Operator: constant.OpBetween, Value: []any{1.0, 2.0}},
		},
		{
			name:   "success: in wraps scalar",
			entity: constant.EntityPayments,
			clause: model.FilterClause{Field: "status", Operator: constant.OpIn, Value: "completed"},
			want:   model.FilterClause{Field: "status", Operator: constant.OpIn, Value: []any{"COMPLETED"}},
		},
		{
			name:   "success: json number",
			entity: constant.EntitySubscriptions,
			clause: model.FilterClause{Field: "price", Operator: constant.OpGte, Value: json.Number("49.9")},
			want:   model.FilterClause{Field: "price", Operator: constant.OpGte, Value: 49.9},
		},
		{
			name:   "success: date parsed",
			entity: constant.EntitySubscriptions,
			clause: model.FilterClause{Field: "startDate", Operator: constant.OpGte, Value: "2024-01-31"},
			want:   model.FilterClause{Field: "startDate", Operator: constant.OpGte, Value: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:   "success: boolean equals",
			entity: constant.EntityMessages,
			clause: model.FilterClause{Field: "isRead", Operator: constant.OpEquals, Value: false},
			want:   model.FilterClause{Field: "isRead", Operator: constant.OpEquals, Value: false},
		},
		{
			name:   "success: or group",
			entity: constant.EntityCustomers,
			clause: model.FilterClause{Or: []model.FilterClause{
				{Field: "name", Operator: constant.OpContains, Value: "ali"},
				{Field: "phone", Operator: constant.OpContains, Value: "ali"},
			}},
			want: model.FilterClause{Or: []model.FilterClause{
				{Field: "name", Operator: constant.OpContains, Value: "ali"},
				{Field: "phone", Operator: constant.OpContains, Value: "ali"},
			}},
		},
		{
			name:     "error: unknown field",
			entity:   constant.EntityMessages,
			clause:   model.FilterClause{Field: "password", Operator: constant.OpEquals, Value: "x"},
			wantKind: constant.ErrInvalidField,
		},
		{
			name:     "error: customers use logical names only",
			entity:   constant.EntityCustomers,
			clause:   model.FilterClause{Field: "customerName", Operator: constant.OpEquals, Value: "x"},
			wantKind: constant.ErrInvalidField,
		},
		{
			name:     "error: messageCount is sort only",
			entity:   constant.EntityCustomers,
			clause:   model.FilterClause{Field: constant.CustomerCountField, Operator: constant.OpGt, Value: 3.0},
			wantKind: constant.ErrInvalidField,
		},
		{
			name:     "error: contains on number",
			entity:   constant.EntityPayments,
			clause:   model.FilterClause{Field: "amount", Operator: constant.OpContains, Value: "1"},
			wantKind: constant.ErrIncompatibleOperator,
		},
		{
			name:     "error: unknown operator",
			entity:   constant.EntityPayments,
			clause:   model.FilterClause{Field: "amount", Operator: "like", Value: 1.0},
			wantKind: constant.ErrIncompatibleOperator,
		},
		{
			name:     "error: between with one element",
			entity:   constant.EntityPayments,
			clause:   model.FilterClause{Field: "amount", Operator: constant.OpBetween, Value: []any{100.0}},
			wantKind: constant.ErrMalformedValue,
		},
		{
			name:     "error: between scalar",
			entity:   constant.EntityPayments,
			clause:   model.FilterClause{Field: "amount", Operator: constant.OpBetween, Value: 100.0},
			wantKind: constant.ErrMalformedValue,
		},
		{
			name:     "error: between reversed",
			entity:   constant.EntityPayments,
			clause:   model.FilterClause{Field: "amount", Operator: constant.OpBetween, Value: []any{500.0, 100.0}},
			wantKind: constant.ErrMalformedValue,
		},
		{
			name:     "error: in with wrong element type",
			entity:   constant.EntityPayments,
			clause:   model.FilterClause{Field: "amount", Operator: constant.OpIn, Value: []any{1.0, "two"}},
			wantKind: constant.ErrMalformedValue,
		},
		{
			name:     "error: in empty",
			entity:   constant.EntityMessages,
			clause:   model.FilterClause{Field: "customerPhone", Operator: constant.OpIn, Value: []any{}},
			wantKind: constant.ErrMalformedValue,
		},
		{
			name:     "error: enum value not declared",
			entity:   constant.EntityMessages,
			clause:   model.FilterClause{Field: "direction", Operator: constant.OpEquals, Value: "SIDEWAYS"},
			wantKind: constant.ErrMalformedValue,
		},
		{
			name:     "error: bad date",
			entity:   constant.EntityMessages,
			clause:   model.FilterClause{Field: "timestamp", Operator: constant.OpGt, Value: "yesterday"},
			wantKind: constant.ErrMalformedValue,
		},
		{
			name:     "error: missing value",
			entity:   constant.EntityMessages,
			clause:   model.FilterClause{Field: "customerName", Operator: constant.OpEquals},
			wantKind: constant.ErrMalformedValue,
		},
		{
			name:     "error: slice for equals",
			entity:   constant.EntityMessages,
			clause:   model.FilterClause{Field: "customerName", Operator: constant.OpEquals, Value: []any{"a"}},
			wantKind: constant.ErrMalformedValue,
		},
		{
			name:   "error: nested or",
			entity: constant.EntityMessages,
			clause: model.FilterClause{Or: []model.FilterClause{
				{Or: []model.FilterClause{{Field: "customerName", Operator: constant.OpEquals, Value: "a"}}},
			}},
			wantKind: constant.ErrMalformedValue,
		},
		{
			name:   "error: bad member inside or",
			entity: constant.EntityMessages,
			clause: model.FilterClause{Or: []model.FilterClause{
				{Field: "customerName", Operator: constant.OpContains, Value: "a"},
				{Field: "timestamp", Operator: constant.OpContains, Value: "a"},
			}},
			wantKind: constant.ErrIncompatibleOperator,
		},
		{
			name:     "error: unknown entity",
			entity:   "INVOICES",
			clause:   model.FilterClause{Field: "id", Operator: constant.OpEquals, Value: 1.0},
			wantKind: constant.ErrUnsupportedEntity,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := filter.ValidateClause(tt.entity, tt.clause)
			if tt.wantKind != 0 {
				var ce *filter.ClauseError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.wantKind, ce.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_IdentifiesOffendingClause(t *testing.T) {
	_, err := filter.Validate(constant.EntityMessages, []model.FilterClause{
		{Field: "customerName", Operator: constant.OpContains, Value: "a"},
		{Field: "isRead", Operator: constant.OpGt, Value: true},
	})

	var ce *filter.ClauseError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.Index)
	assert.Equal(t, "isRead", ce.Field)
	assert.Contains(t, ce.Error(), "filters[1]")
}

// Every (field, operator) pair outside the declared compatibility table must be
// rejected as IncompatibleOperator.
func TestValidate_RejectsEveryUndeclaredOperator(t *testing.T) {
	for _, entity := range filter.Entities() {
		e, ok := filter.Lookup(entity)
		require.True(t, ok)
		for _, f := range e.Fields {
			for _, op := range allOperators {
				if filter.Supports(f.Type, op) {
					continue
				}
				_, err := filter.ValidateClause(entity, model.FilterClause{Field: f.Name, Operator: op, Value: "x"})
				var ce *filter.ClauseError
				require.ErrorAs(t, err, &ce, "%s.%s %s", entity, f.Name, op)
				assert.Equal(t, constant.ErrIncompatibleOperator, ce.Kind, "%s.%s %s", entity, f.Name, op)
			}
		}
	}
}

func TestEntity_SortField(t *testing.T) {
	customers, _ := filter.Lookup(constant.EntityCustomers)
	assert.Equal(t, "lastActivity", customers.SortField(""))
	assert.Equal(t, constant.CustomerCountField, customers.SortField(constant.CustomerCountField))
	assert.Equal(t, "name", customers.SortField("name"))
	assert.Equal(t, "lastActivity", customers.SortField("customerName"))

	payments, _ := filter.Lookup(constant.EntityPayments)
	assert.Equal(t, "paymentDate", payments.SortField("drop table"))
	assert.Equal(t, "amount", payments.SortField("amount"))
	assert.Equal(t, "userId", payments.OwnerField())
}

func TestFields(t *testing.T) {
	meta, ok := filter.Fields(constant.EntityPayments)
	require.True(t, ok)
	assert.Equal(t, "paymentDate", meta.DefaultSort)

	var amount *model.FieldMetadata
	for i := range meta.Fields {
		if meta.Fields[i].Name == "amount" {
			amount = &meta.Fields[i]
		}
	}
	require.NotNil(t, amount)
	assert.Equal(t, constant.FieldNumber, amount.Type)
	assert.Contains(t, amount.Operators, constant.OpBetween)
	assert.NotContains(t, amount.Operators, constant.OpContains)

	_, ok = filter.Fields(constant.EntityUsers)
	assert.False(t, ok)
}
