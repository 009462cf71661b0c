package model

import "time"

type Payment struct {
	ID             uint64    `db:"id" json:"id"`
	UserID         uint64    `db:"user_id" json:"userId"`
	SubscriptionID *uint64   `db:"subscription_id" json:"subscriptionId"`
	Amount         float64   `db:"amount" json:"amount"`
	Currency       string    `db:"currency" json:"currency"`
	Status         string    `db:"status" json:"status"`
	PaymentMethod  string    `db:"payment_method" json:"paymentMethod"`
	TransactionID  *string   `db:"transaction_id" json:"transactionId"`
	Description    *string   `db:"description" json:"description"`
	PaymentDate    time.Time `db:"payment_date" json:"paymentDate"`
}
