package filter

import (
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
)

// Field is one searchable attribute of an entity.
type Field struct {
	Name       string
	Type       constant.FieldType
	EnumValues []string
	// Owner marks the field holding the owning user id.
	Owner bool
}

// Entity is the registered field set of one search entity.
type Entity struct {
	Name        constant.SearchEntity
	Fields      []Field
	DefaultSort string
	// SortOnly lists derived values that can order results but not filter them.
	SortOnly    []string
	QuickFields []string
}

var operatorsByType = map[constant.FieldType][]constant.Operator{
	constant.FieldString:   {constant.OpEquals, constant.OpContains, constant.OpStartsWith, constant.OpEndsWith, constant.OpIn},
	constant.FieldNumber:   {constant.OpEquals, constant.OpGt, constant.OpGte, constant.OpLt, constant.OpLte, constant.OpIn, constant.OpBetween},
	constant.FieldDate:     {constant.OpEquals, constant.OpGt, constant.OpGte, constant.OpLt, constant.OpLte, constant.OpBetween},
	constant.FieldDatetime: {constant.OpEquals, constant.OpGt, constant.OpGte, constant.OpLt, constant.OpLte, constant.OpBetween},
	constant.FieldBoolean:  {constant.OpEquals},
	constant.FieldEnum:     {constant.OpEquals, constant.OpIn},
}

var registry = map[constant.SearchEntity]*Entity{
	constant.EntityMessages: {
		Name: constant.EntityMessages,
		Fields: []Field{
			{Name: "id", Type: constant.FieldNumber},
			{Name: "userId", Type: constant.FieldNumber, Owner: true},
			{Name: "customerName", Type: constant.FieldString},
			{Name: "customerPhone", Type: constant.FieldString},
			{Name: "messageContent", Type: constant.FieldString},
			{Name: "messageType", Type: constant.FieldEnum, EnumValues: []string{"TEXT", "IMAGE", "AUDIO", "VIDEO", "DOCUMENT", "LOCATION"}},
			{Name: "direction", Type: constant.FieldEnum, EnumValues: []string{"INBOUND", "OUTBOUND"}},
			{Name: "status", Type: constant.FieldEnum, EnumValues: []string{"PENDING", "SENT", "DELIVERED", "READ", "FAILED"}},
			{Name: "isRead", Type: constant.FieldBoolean},
			{Name: "timestamp", Type: constant.FieldDatetime},
		},
		DefaultSort: "timestamp",
		QuickFields: []string{"messageContent", "customerName", "customerPhone"},
	},
	constant.EntityCustomers: {
		Name: constant.EntityCustomers,
		Fields: []Field{
			{Name: "name", Type: constant.FieldString},
			{Name: "phone", Type: constant.FieldString},
			{Name: "lastActivity", Type: constant.FieldDatetime},
			{Name: "userId", Type: constant.FieldNumber, Owner: true},
		},
		DefaultSort: "lastActivity",
		SortOnly:    []string{constant.CustomerCountField},
		QuickFields: []string{"name", "phone"},
	},
	constant.EntityPayments: {
		Name: constant.EntityPayments,
		Fields: []Field{
			{Name: "id", Type: constant.FieldNumber},
			{Name: "userId", Type: constant.FieldNumber, Owner: true},
			{Name: "subscriptionId", Type: constant.FieldNumber},
			{Name: "amount", Type: constant.FieldNumber},
			{Name: "currency", Type: constant.FieldEnum, EnumValues: []string{"TRY", "USD", "EUR"}},
			{Name: "status", Type: constant.FieldEnum, EnumValues: []string{"PENDING", "COMPLETED", "FAILED", "REFUNDED"}},
			{Name: "paymentMethod", Type: constant.FieldEnum, EnumValues: []string{"CREDIT_CARD", "BANK_TRANSFER", "CASH", "OTHER"}},
			{Name: "transactionId", Type: constant.FieldString},
			{Name: "description", Type: constant.FieldString},
			{Name: "paymentDate", Type: constant.FieldDatetime},
		},
		DefaultSort: "paymentDate",
		QuickFields: []string{"transactionId", "description"},
	},
	constant.EntitySubscriptions: {
		Name: constant.EntitySubscriptions,
		Fields: []Field{
			{Name: "id", Type: constant.FieldNumber},
			{Name: "userId", Type: constant.FieldNumber, Owner: true},
			{Name: "plan", Type: constant.FieldString},
			{Name: "status", Type: constant.FieldEnum, EnumValues: []string{"ACTIVE", "TRIAL", "EXPIRED", "CANCELLED"}},
			{Name: "price", Type: constant.FieldNumber},
			{Name: "autoRenew", Type: constant.FieldBoolean},
			{Name: "startDate", Type: constant.FieldDate},
			{Name: "endDate", Type: constant.FieldDate},
		},
		DefaultSort: "startDate",
		QuickFields: []string{"plan"},
	},
}

// Lookup returns the registered definition of entity.
func Lookup(entity constant.SearchEntity) (*Entity, bool) {
	e, ok := registry[entity]
	return e, ok
}

// Entities lists every searchable entity.
func Entities() []constant.SearchEntity {
	return []constant.SearchEntity{
		constant.EntityMessages,
		constant.EntityCustomers,
		constant.EntityPayments,
		constant.EntitySubscriptions,
	}
}

func (e *Entity) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// OwnerField returns the name of the owner field.
func (e *Entity) OwnerField() string {
	for _, f := range e.Fields {
		if f.Owner {
			return f.Name
		}
	}
	return ""
}

// SortField returns sortBy when it is a valid sort key, otherwise the default.
func (e *Entity) SortField(sortBy string) string {
	if _, ok := e.Field(sortBy); ok {
		return sortBy
	}
	for _, s := range e.SortOnly {
		if s == sortBy {
			return sortBy
		}
	}
	return e.DefaultSort
}

// Supports reports whether op is legal on fields of type t.
func Supports(t constant.FieldType, op constant.Operator) bool {
	for _, o := range operatorsByType[t] {
		if o == op {
			return true
		}
	}
	return false
}

// Operators returns the operators legal for t.
func Operators(t constant.FieldType) []constant.Operator {
	ops := operatorsByType[t]
	out := make([]constant.Operator, len(ops))
	copy(out, ops)
	return out
}

// Fields returns the metadata used to build a filter UI for entity.
func Fields(entity constant.SearchEntity) (*model.EntityFields, bool) {
	e, ok := Lookup(entity)
	if !ok {
		return nil, false
	}

	fields := make([]model.FieldMetadata, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, model.FieldMetadata{
			Name:       f.Name,
			Type:       f.Type,
			Operators:  Operators(f.Type),
			EnumValues: f.EnumValues,
			Sortable:   true,
		})
	}

	return &model.EntityFields{
		Entity:        e.Name,
		DefaultSort:   e.DefaultSort,
		DefaultOrder:  constant.SortDesc,
		Fields:        fields,
		SortOnly:      e.SortOnly,
		QuickSearchOn: e.QuickFields,
	}, true
}
