package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/openshelf/library-api/library/internal/model"
	"github.com/openshelf/library-api/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BorrowService interface {
	CreateBorrowRequest(ctx context.Context, userID uuid.UUID, req model.CreateBorrowRequest) (model.BorrowRecord, error)
	ApproveBorrow(ctx context.Context, id, staffID uuid.UUID) (model.BorrowRecord, error)
	DeclineBorrow(ctx context.Context, id, staffID uuid.UUID, reason string) error
	CancelBorrow(ctx context.Context, id, userID uuid.UUID) error
	ReturnBorrow(ctx context.Context, id, staffID uuid.UUID, req model.ReturnRequest) (model.ReturnResponse, error)
	ExtendBorrow(ctx context.Context, id uuid.UUID, days int) (model.ExtendResponse, error)
	ListBorrowRecords(ctx context.Context, f model.BorrowFilter) (model.ListBorrowRecords, error)
	UserBorrowHistory(ctx context.Context, userID uuid.UUID, status model.BorrowStatus, page, size int) (model.ListBorrowRecords, error)
	UserBorrowRequests(ctx context.Context, userID uuid.UUID) ([]model.BorrowRecord, error)
	BorrowStatistics(ctx context.Context, f model.StatisticsFilter) (model.BorrowStatistics, error)
}

type FineService interface {
	CreateManualFine(ctx context.Context, staffID uuid.UUID, req model.CreateFineRequest) (model.Fine, error)
	GetFine(ctx context.Context, id uuid.UUID) (model.Fine, error)
	MarkFinePaid(ctx context.Context, id, staffID uuid.UUID, note string) (model.Fine, error)
	DeleteFine(ctx context.Context, id uuid.UUID) error
	ListFines(ctx context.Context, f model.FineFilter) (model.ListFines, error)
	UserFines(ctx context.Context, userID uuid.UUID, paid *bool) (model.UserFines, error)
}

type CatalogService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBookDetails(ctx context.Context, id uuid.UUID) (model.BookDetails, error)
	SearchBooks(ctx context.Context, f model.SearchBooksFilter) (model.ListBooks, error)
	UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
	AdjustInventory(ctx context.Context, bookID uuid.UUID, c model.Counters) (model.Inventory, error)

	CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req model.CategoryRequest) (model.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateBookshelf(ctx context.Context, req model.BookshelfRequest) (model.Bookshelf, error)
	GetBookshelf(ctx context.Context, id uuid.UUID) (model.Bookshelf, error)
	ListBookshelves(ctx context.Context) ([]model.Bookshelf, error)
	UpdateBookshelf(ctx context.Context, id uuid.UUID, req model.BookshelfRequest) (model.Bookshelf, error)
	DeleteBookshelf(ctx context.Context, id uuid.UUID) error
	MoveBooks(ctx context.Context, req model.MoveBooksRequest) (model.MoveBooksResponse, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, userID uuid.UUID, req model.CreateReviewRequest) (model.Review, error)
	UpdateReview(ctx context.Context, id, userID uuid.UUID, req model.UpdateReviewRequest) (model.Review, error)
	DeleteReview(ctx context.Context, id, userID uuid.UUID) error
	UserReviews(ctx context.Context, userID uuid.UUID) ([]model.Review, error)
}

var (
	_ BorrowService  = (*service.Service)(nil)
	_ FineService    = (*service.Service)(nil)
	_ CatalogService = (*service.Service)(nil)
	_ ReviewService  = (*service.Service)(nil)
)
