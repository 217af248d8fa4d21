package models

// Notification is one persisted outbox row. Records are created elsewhere
// with Pending set; this subsystem only reads them and flips Pending off once
// the delivery agent acknowledges the message. A delivered record is never
// re-armed and never deleted here.
//
// The JSON keys match what the mobile delivery agent already consumes.
type Notification struct {
	ID         int    `json:"id"`
	Fullname   string `json:"fullname"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	JobCardRef int    `json:"jobcardrefid"`
	Document   string `json:"document"`
	Pending    bool   `json:"flag"`
}
