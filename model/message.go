package model

import "time"

type Message struct {
	ID             uint64    `db:"id" json:"id"`
	UserID         uint64    `db:"user_id" json:"userId"`
	CustomerName   string    `db:"customer_name" json:"customerName"`
	CustomerPhone  string    `db:"customer_phone" json:"customerPhone"`
	MessageContent string    `db:"message_content" json:"messageContent"`
	MessageType    string    `db:"message_type" json:"messageType"`
	Direction      string    `db:"direction" json:"direction"`
	Status         string    `db:"status" json:"status"`
	IsRead         bool      `db:"is_read" json:"isRead"`
	Timestamp      time.Time `db:"timestamp" json:"timestamp"`
}
