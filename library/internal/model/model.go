package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type Bookshelf struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Code        string    `json:"code" db:"code"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type Book struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	ISBN        string          `json:"isbn" db:"isbn"`
	Author      string          `json:"author" db:"author"`
	Publisher   string          `json:"publisher" db:"publisher"`
	PublishYear int             `json:"publishYear" db:"publish_year"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Image       string          `json:"image" db:"image"`
	BookshelfID *uuid.UUID      `json:"bookshelfId" db:"bookshelf_id"`
	Categories  []Category      `json:"categories" db:"-"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

type Inventory struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BookID    uuid.UUID `json:"bookId" db:"book_id"`
	Total     int       `json:"total" db:"total"`
	Available int       `json:"available" db:"available"`
	Borrowed  int       `json:"borrowed" db:"borrowed"`
	Damaged   int       `json:"damaged" db:"damaged"`
	Lost      int       `json:"lost" db:"lost"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Counters is the admin-supplied replacement for an inventory record.
// Total must equal the sum of the other four.
type Counters struct {
	Total     int `json:"total" validate:"min=0"`
	Available int `json:"available" validate:"min=0"`
	Borrowed  int `json:"borrowed" validate:"min=0"`
	Damaged   int `json:"damaged" validate:"min=0"`
	Lost      int `json:"lost" validate:"min=0"`
}

func (c Counters) Conserved() bool {
	return c.Available+c.Borrowed+c.Damaged+c.Lost == c.Total
}

type BorrowStatus string

const (
	StatusPending  BorrowStatus = "pending"
	StatusBorrowed BorrowStatus = "borrowed"
	StatusReturned BorrowStatus = "returned"
	StatusDeclined BorrowStatus = "declined"
	StatusLost     BorrowStatus = "lost"
)

type Condition string

const (
	ConditionGood    Condition = "good"
	ConditionDamaged Condition = "damaged"
	ConditionLost    Condition = "lost"
)

type BorrowRecord struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	UserID       uuid.UUID    `json:"userId" db:"user_id"`
	BookID       uuid.UUID    `json:"bookId" db:"book_id"`
	Status       BorrowStatus `json:"status" db:"status"`
	IsReadOnSite bool         `json:"isReadOnSite" db:"is_read_on_site"`
	RequestedAt  time.Time    `json:"requestedAt" db:"requested_at"`
	DueDate      time.Time    `json:"dueDate" db:"due_date"`
	BorrowDate   *time.Time   `json:"borrowDate" db:"borrow_date"`
	ReturnDate   *time.Time   `json:"returnDate" db:"return_date"`
	ProcessedBy  *uuid.UUID   `json:"processedBy" db:"processed_by"`
	FineID       *uuid.UUID   `json:"fineId" db:"fine_id"`
	Notes        string       `json:"notes" db:"notes"`
}

type FineReason string

const (
	ReasonOverdue FineReason = "overdue"
	ReasonDamaged FineReason = "damaged"
	ReasonLost    FineReason = "lost"
	ReasonManual  FineReason = "manual"
)

type Fine struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	UserID         uuid.UUID       `json:"userId" db:"user_id"`
	BorrowRecordID *uuid.UUID      `json:"borrowRecordId" db:"borrow_record_id"`
	Reason         FineReason      `json:"reason" db:"reason"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Paid           bool            `json:"paid" db:"paid"`
	PaidAt         *time.Time      `json:"paidAt" db:"paid_at"`
	ProcessedBy    *uuid.UUID      `json:"processedBy" db:"processed_by"`
	Note           string          `json:"note" db:"note"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}

type Review struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	BookID    uuid.UUID `json:"bookId" db:"book_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
