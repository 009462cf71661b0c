package model

import (
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/muhammadheryan/wa-crm/constant"
)

// SavedSearchEntity represents the saved_search table entity
type SavedSearchEntity struct {
	ID          string                `db:"id"`
	UserID      uint64                `db:"user_id"`
	Name        string                `db:"name"`
	Description *string               `db:"description"`
	Entity      constant.SearchEntity `db:"entity"`
	Filters     types.JSONText        `db:"filters"`
	IsDefault   bool                  `db:"is_default"`
	CreatedAt   time.Time             `db:"created_at"`
	UpdatedAt   *time.Time            `db:"updated_at"`
}

type SavedSearchFilter struct {
	UserID uint64
	Entity constant.SearchEntity
}

type SavedSearch struct {
	ID          string                `json:"id"`
	UserID      uint64                `json:"userId"`
	Name        string                `json:"name"`
	Description *string               `json:"description,omitempty"`
	Entity      constant.SearchEntity `json:"entity"`
	Filters     []FilterClause        `json:"filters"`
	IsDefault   bool                  `json:"isDefault"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   *time.Time            `json:"updatedAt,omitempty"`
}

type CreateSavedSearchRequest struct {
	Name        string                `json:"name" validate:"required,max=100"`
	Description *string               `json:"description" validate:"omitempty,max=500"`
	Entity      constant.SearchEntity `json:"entity" validate:"required"`
	Filters     []FilterClause        `json:"filters"`
	IsDefault   bool                  `json:"isDefault"`
}

// UpdateSavedSearchRequest is a patch: nil fields are left untouched.
type UpdateSavedSearchRequest struct {
	Name        *string         `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string         `json:"description" validate:"omitempty,max=500"`
	Filters     *[]FilterClause `json:"filters"`
	IsDefault   *bool           `json:"isDefault"`
}

type ExecuteSavedSearchRequest struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder" validate:"sortorder"`
}

type SavedSearchListResponse struct {
	Items []SavedSearch `json:"items"`
}
