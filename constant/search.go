package constant

import "strings"

type SearchEntity string

const (
	EntityMessages      SearchEntity = "MESSAGES"
	EntityCustomers     SearchEntity = "CUSTOMERS"
	EntityPayments      SearchEntity = "PAYMENTS"
	EntitySubscriptions SearchEntity = "SUBSCRIPTIONS"

	// EntityUsers is never searchable through the engine. It is recognised only
	// so that it can be refused explicitly.
	EntityUsers SearchEntity = "USERS"
)

// ParseEntity normalises a caller supplied entity tag.
func ParseEntity(s string) SearchEntity {
	return SearchEntity(strings.ToUpper(strings.TrimSpace(s)))
}

type Operator string

const (
	OpEquals     Operator = "equals"
	OpContains   Operator = "contains"
	OpStartsWith Operator = "startsWith"
	OpEndsWith   Operator = "endsWith"
	OpGt         Operator = "gt"
	OpGte        Operator = "gte"
	OpLt         Operator = "lt"
	OpLte        Operator = "lte"
	OpIn         Operator = "in"
	OpBetween    Operator = "between"
)

type FieldType string

const (
	FieldString   FieldType = "string"
	FieldNumber   FieldType = "number"
	FieldBoolean  FieldType = "boolean"
	FieldDate     FieldType = "date"
	FieldDatetime FieldType = "datetime"
	FieldEnum     FieldType = "enum"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder treats anything but "asc" as descending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

const (
	DefaultPage        = 1
	DefaultLimit       = 20
	MaxLimit           = 100
	MaxSuggestions     = 10
	QuickSearchAll     = "all"
	CustomerCountField = "messageCount"
)
