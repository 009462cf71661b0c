package model

import "time"

// CustomerAggregate is one group of message rows sharing
// (customer_phone, customer_name, user_id).
type CustomerAggregate struct {
	CustomerPhone string    `db:"customer_phone"`
	CustomerName  string    `db:"customer_name"`
	UserID        uint64    `db:"user_id"`
	MessageCount  int64     `db:"message_count"`
	UnreadCount   int64     `db:"unread_count"`
	LastActivity  time.Time `db:"last_activity"`
}

// Customer is a derived row: there is no customer table.
type Customer struct {
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	UserID       uint64       `json:"userId"`
	MessageCount int64        `json:"messageCount"`
	UnreadCount  int64        `json:"unreadCount"`
	LastActivity time.Time    `json:"lastActivity"`
	User         *UserProfile `json:"user"`
}
