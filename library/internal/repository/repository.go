package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/openshelf/library-api/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	BorrowRepository
	InventoryRepository
	FineRepository
	CatalogRepository
	ReviewRepository
}

type BorrowRepository interface {
	CreateBorrowRequest(ctx context.Context, rec model.BorrowRecord) (model.BorrowRecord, error)
	GetBorrowRecord(ctx context.Context, id uuid.UUID) (model.BorrowRecord, error)
	ApproveBorrow(ctx context.Context, id, staffID uuid.UUID) (model.BorrowRecord, error)
	DeclineBorrow(ctx context.Context, id, staffID uuid.UUID, reason string) error
	CancelBorrow(ctx context.Context, id, userID uuid.UUID) error
	ReturnBorrow(ctx context.Context, id, staffID uuid.UUID, status model.BorrowStatus, returnDate time.Time, notes string) (model.BorrowRecord, error)
	ExtendBorrow(ctx context.Context, id uuid.UUID, days int) (model.BorrowRecord, error)
	AttachFine(ctx context.Context, recordID, fineID uuid.UUID) error
	ListBorrowRecords(ctx context.Context, f model.BorrowFilter) (model.ListBorrowRecords, error)
	CountActiveBorrows(ctx context.Context, bookID uuid.UUID) (int, error)
	HasReturnedBorrow(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
	BorrowStatusSummary(ctx context.Context, f model.StatisticsFilter) (map[model.BorrowStatus]int, error)
	OverdueRecords(ctx context.Context, now time.Time) ([]model.OverdueRecord, error)
	TopBorrowedBooks(ctx context.Context, f model.StatisticsFilter, limit int) ([]model.BookBorrowCount, error)
	TopBorrowers(ctx context.Context, f model.StatisticsFilter, limit int) ([]model.UserBorrowCount, error)
}

type InventoryRepository interface {
	InitializeInventory(ctx context.Context, bookID uuid.UUID, quantity int) error
	GetInventory(ctx context.Context, bookID uuid.UUID) (model.Inventory, error)
	ReserveCopy(ctx context.Context, bookID uuid.UUID) error
	UnreserveCopy(ctx context.Context, bookID uuid.UUID) error
	ReleaseCopy(ctx context.Context, bookID uuid.UUID, condition model.Condition) error
	AdjustInventory(ctx context.Context, bookID uuid.UUID, c model.Counters) (model.Inventory, error)
	GrowInventory(ctx context.Context, bookID uuid.UUID, delta int) error
	DeleteInventory(ctx context.Context, bookID uuid.UUID) error
}

type FineRepository interface {
	CreateFine(ctx context.Context, fine model.Fine) (model.Fine, error)
	GetFine(ctx context.Context, id uuid.UUID) (model.Fine, error)
	UnpaidFineCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkFinePaid(ctx context.Context, id, staffID uuid.UUID, note string) (model.Fine, error)
	DeleteFine(ctx context.Context, id uuid.UUID) error
	ListFines(ctx context.Context, f model.FineFilter) (model.ListFines, error)
	UserFines(ctx context.Context, userID uuid.UUID, paid *bool) (model.UserFines, error)
}

type CatalogRepository interface {
	CreateBook(ctx context.Context, book model.Book, categories []uuid.UUID) (model.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, f model.SearchBooksFilter) (model.ListBooks, error)
	UpdateBook(ctx context.Context, id uuid.UUID, book model.Book, categories []uuid.UUID) (model.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, c model.Category) (model.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, c model.Category) (model.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CountBooksUsingCategory(ctx context.Context, categoryID uuid.UUID) (int, error)

	CreateBookshelf(ctx context.Context, b model.Bookshelf) (model.Bookshelf, error)
	GetBookshelf(ctx context.Context, id uuid.UUID) (model.Bookshelf, error)
	ListBookshelves(ctx context.Context) ([]model.Bookshelf, error)
	UpdateBookshelf(ctx context.Context, id uuid.UUID, b model.Bookshelf) (model.Bookshelf, error)
	DeleteBookshelf(ctx context.Context, id uuid.UUID) error
	CountBooksOnShelf(ctx context.Context, shelfID uuid.UUID) (int, error)
	MoveBooks(ctx context.Context, fromShelf, toShelf uuid.UUID, bookIDs []uuid.UUID) (int, error)
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, r model.Review) (model.Review, error)
	ListBookReviews(ctx context.Context, bookID uuid.UUID) ([]model.Review, error)
	ListUserReviews(ctx context.Context, userID uuid.UUID) ([]model.Review, error)
	UpdateReview(ctx context.Context, id, userID uuid.UUID, rating int, comment string) (model.Review, error)
	DeleteReview(ctx context.Context, id, userID uuid.UUID) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	categoryTableName     = `category`
	bookshelfTableName    = `bookshelf`
	bookTableName         = `book`
	bookCategoryTableName = `book_category`
	inventoryTableName    = `inventory`
	borrowTableName       = `borrow_record`
	fineTableName         = `fine`
	reviewTableName       = `review`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func decimalOrZero(d decimal.NullDecimal) decimal.Decimal {
	if d.Valid {
		return d.Decimal
	}
	return decimal.Zero
}
