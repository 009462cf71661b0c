package model

import "time"

type Subscription struct {
	ID           uint64    `db:"id" json:"id"`
	UserID       uint64    `db:"user_id" json:"userId"`
	Plan         string    `db:"plan" json:"plan"`
	Status       string    `db:"status" json:"status"`
	Price        float64   `db:"price" json:"price"`
	AutoRenew    bool      `db:"auto_renew" json:"autoRenew"`
	StartDate    time.Time `db:"start_date" json:"startDate"`
	EndDate      time.Time `db:"end_date" json:"endDate"`
	PaymentCount int64     `db:"payment_count" json:"paymentCount"`
}
