package model

import (
	"time"

	"github.com/muhammadheryan/wa-crm/constant"
)

// UserEntity represents the user table entity
type UserEntity struct {
	ID        uint64        `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Email     string        `db:"email" json:"email"`
	Phone     string        `db:"phone" json:"phone"`
	Company   *string       `db:"company" json:"company,omitempty"`
	Role      constant.Role `db:"role" json:"role"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time    `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
	Phone string
}

// UserProfile is the public part of a user attached to search rows.
type UserProfile struct {
	ID      uint64  `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	Company *string `db:"company" json:"company"`
	Email   string  `db:"email" json:"email"`
}

// Caller is an authenticated request principal.
type Caller struct {
	UserID uint64
	Role   constant.Role
}
