package model

import "github.com/muhammadheryan/wa-crm/constant"

// FilterClause is one (field, operator, value) predicate. A clause with Or set
// is a group whose members are combined with OR; it has no field of its own.
type FilterClause struct {
	Field    string            `json:"field,omitempty"`
	Operator constant.Operator `json:"operator,omitempty"`
	Value    any               `json:"value,omitempty"`
	Or       []FilterClause    `json:"or,omitempty"`
}

func (c FilterClause) IsGroup() bool {
	return len(c.Or) > 0
}

type SearchRequest struct {
	Entity    constant.SearchEntity `json:"entity" validate:"required"`
	Filters   []FilterClause        `json:"filters"`
	SortBy    string                `json:"sortBy,omitempty"`
	SortOrder string                `json:"sortOrder,omitempty" validate:"sortorder"`
	Page      int                   `json:"page,omitempty"`
	Limit     int                   `json:"limit,omitempty"`
}

type SearchResult struct {
	Data       any   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type QuickSearchRequest struct {
	Entity constant.SearchEntity `json:"entity" validate:"required"`
	Query  string                `json:"q"`
	Field  string                `json:"field"`
	Page   int                   `json:"page"`
	Limit  int                   `json:"limit"`
}

type SuggestionRequest struct {
	Entity constant.SearchEntity `json:"entity" validate:"required"`
	Field  string                `json:"field" validate:"required"`
	Query  string                `json:"query"`
}

type SuggestionResponse struct {
	Entity      constant.SearchEntity `json:"entity"`
	Field       string                `json:"field"`
	Suggestions []string              `json:"suggestions"`
}

// FieldMetadata describes one filterable field for a UI filter builder.
type FieldMetadata struct {
	Name       string              `json:"name"`
	Type       constant.FieldType  `json:"type"`
	Operators  []constant.Operator `json:"operators"`
	EnumValues []string            `json:"enumValues,omitempty"`
	Sortable   bool                `json:"sortable"`
}

type EntityFields struct {
	Entity        constant.SearchEntity `json:"entity"`
	DefaultSort   string                `json:"defaultSort"`
	DefaultOrder  constant.SortOrder    `json:"defaultOrder"`
	Fields        []FieldMetadata       `json:"fields"`
	SortOnly      []string              `json:"sortOnly,omitempty"`
	QuickSearchOn []string              `json:"quickSearchOn"`
}
