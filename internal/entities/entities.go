package entities

import (
	"time"
)

type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "active"
	MemberStatusSuspended MemberStatus = "suspended"
)

type LoanAction string

const (
	LoanActionBorrow LoanAction = "borrow"
	LoanActionReturn LoanAction = "return"
)

type NotificationKind string

const (
	NotificationKindBorrow NotificationKind = "borrow"
	NotificationKindReturn NotificationKind = "return"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
)

// Book is a catalog record. Title is the identity key; Copies counts the
// physical units currently available for loan and never goes below zero.
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"uniqueIndex;size:512" json:"title"`
	Copies    int       `json:"copies"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Member struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"size:256" json:"name"`
	Email     string       `gorm:"uniqueIndex;size:255" json:"email"`
	PINHash   string       `gorm:"size:100" json:"-"` // bcrypt hash, hidden from JSON
	Status    MemberStatus `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// LoanEvent is one row of the circulation ledger: a member borrowed or
// returned one copy of a title.
type LoanEvent struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	MemberID  uint       `gorm:"index" json:"member_id"`
	BookTitle string     `gorm:"index;size:512" json:"book_title"`
	Action    LoanAction `gorm:"size:10" json:"action"`
	CreatedAt time.Time  `json:"created_at"`
}

// Notification is an outbox row. Rows are written synchronously during
// borrow/return and delivered later by a background task.
type Notification struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	MemberID  uint               `gorm:"index" json:"member_id"`
	BookTitle string             `gorm:"size:512" json:"book_title"`
	Kind      NotificationKind   `gorm:"size:10" json:"kind"`
	Status    NotificationStatus `gorm:"size:10;default:'pending'" json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	SentAt    *time.Time         `json:"sent_at,omitempty"`
}

func (Book) TableName() string {
	return "books"
}

func (Member) TableName() string {
	return "members"
}

func (LoanEvent) TableName() string {
	return "loan_events"
}

func (Notification) TableName() string {
	return "notifications"
}
