package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBorrowRequest struct {
	BookID       uuid.UUID `json:"bookId" validate:"required"`
	IsReadOnSite bool      `json:"isReadOnSite"`
	Notes        string    `json:"notes"`
}

type DeclineRequest struct {
	Reason string `json:"reason"`
}

type ReturnRequest struct {
	Condition Condition `json:"condition" validate:"required,oneof=good damaged lost"`
	Notes     string    `json:"notes"`
}

type ReturnResponse struct {
	BorrowRecord BorrowRecord `json:"borrowRecord"`
	Fine         *Fine        `json:"fine"`
	IsOverdue    bool         `json:"isOverdue"`
}

type ExtendRequest struct {
	Days int `json:"days" validate:"omitempty,min=1,max=90"`
}

type ExtendResponse struct {
	BorrowRecord BorrowRecord `json:"borrowRecord"`
	NewDueDate   time.Time    `json:"newDueDate"`
}

type BorrowFilter struct {
	Status    BorrowStatus
	UserID    *uuid.UUID
	BookID    *uuid.UUID
	IsOverdue bool
	Page      int
	Size      int
}

type ListBorrowRecords struct {
	Paging `json:",inline"`
	Items  []BorrowRecord `json:"items"`
}

type BorrowStatistics struct {
	Summary          map[BorrowStatus]int `json:"summary"`
	OverdueBooks     []OverdueRecord      `json:"overdueBooks"`
	TopBorrowedBooks []BookBorrowCount    `json:"topBorrowedBooks"`
	TopBorrowers     []UserBorrowCount    `json:"topBorrowers"`
}

type OverdueRecord struct {
	UserID   uuid.UUID `json:"userId" db:"user_id"`
	BookID   uuid.UUID `json:"bookId" db:"book_id"`
	DueDate  time.Time `json:"dueDate" db:"due_date"`
	DaysLate int       `json:"daysLate" db:"-"`
}

type BookBorrowCount struct {
	BookID      uuid.UUID `json:"bookId" db:"book_id"`
	Title       string    `json:"title" db:"title"`
	Author      string    `json:"author" db:"author"`
	BorrowCount int       `json:"borrowCount" db:"borrow_count"`
}

type UserBorrowCount struct {
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	BorrowCount int       `json:"borrowCount" db:"borrow_count"`
}

type StatisticsFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
}

type CreateFineRequest struct {
	UserID         uuid.UUID       `json:"userId" validate:"required"`
	BorrowRecordID *uuid.UUID      `json:"borrowRecordId"`
	Reason         FineReason      `json:"reason" validate:"required,oneof=overdue damaged lost manual"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	Note           string          `json:"note"`
}

type PayFineRequest struct {
	Note string `json:"note"`
}

type FineFilter struct {
	Paid   *bool
	UserID *uuid.UUID
	Reason FineReason
	Page   int
	Size   int
}

type ListFines struct {
	Paging  `json:",inline"`
	Items   []Fine      `json:"items"`
	Summary FineSummary `json:"summary"`
}

type FineSummary struct {
	TotalUnpaidAmount decimal.Decimal `json:"totalUnpaidAmount"`
}

type UserFines struct {
	Fines             []Fine          `json:"fines"`
	TotalUnpaidAmount decimal.Decimal `json:"totalUnpaidAmount"`
}

type CreateBookRequest struct {
	Title       string          `json:"title" validate:"required"`
	ISBN        string          `json:"isbn" validate:"required"`
	Author      string          `json:"author" validate:"required"`
	Publisher   string          `json:"publisher"`
	PublishYear int             `json:"publishYear"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Image       string          `json:"image"`
	Categories  []uuid.UUID     `json:"categories"`
	Bookshelf   *uuid.UUID      `json:"bookshelf"`
	Quantity    int             `json:"quantity" validate:"min=0"`
}

type UpdateBookRequest struct {
	Title       string          `json:"title" validate:"required"`
	ISBN        string          `json:"isbn" validate:"required"`
	Author      string          `json:"author" validate:"required"`
	Publisher   string          `json:"publisher"`
	PublishYear int             `json:"publishYear"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Image       string          `json:"image"`
	Categories  []uuid.UUID     `json:"categories"`
	Bookshelf   *uuid.UUID      `json:"bookshelf"`
	Quantity    *int            `json:"quantity" validate:"omitempty,min=0"`
}

type BookDetails struct {
	Book          `json:",inline"`
	Inventory     Inventory `json:"inventory"`
	Reviews       []Review  `json:"reviews"`
	AverageRating float64   `json:"averageRating"`
	TotalReviews  int       `json:"totalReviews"`
}

type SearchBooksFilter struct {
	Query       string
	Category    *uuid.UUID
	Bookshelf   *uuid.UUID
	Author      string
	PublishYear int
	Available   bool
	Page        int
	Size        int
	SortBy      string
	SortOrder   string
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []BookWithInventory `json:"items"`
}

type BookWithInventory struct {
	Book      `json:",inline"`
	Inventory Inventory `json:"inventory"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type BookshelfRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type MoveBooksRequest struct {
	FromBookshelfID uuid.UUID   `json:"fromBookshelfId" validate:"required"`
	ToBookshelfID   uuid.UUID   `json:"toBookshelfId" validate:"required"`
	BookIDs         []uuid.UUID `json:"bookIds" validate:"required,min=1"`
}

type MoveBooksResponse struct {
	MovedCount int `json:"movedCount"`
}

type CreateReviewRequest struct {
	BookID  uuid.UUID `json:"bookId" validate:"required"`
	Rating  int       `json:"rating" validate:"required,min=1,max=5"`
	Comment string    `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
