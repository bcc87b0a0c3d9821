package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/library/internal/model"
)

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	book, err := s.repo.CreateBook(ctx, model.Book{
		Title:       req.Title,
		ISBN:        req.ISBN,
		Author:      req.Author,
		Publisher:   req.Publisher,
		PublishYear: req.PublishYear,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		BookshelfID: req.Bookshelf,
	}, req.Categories)
	if err != nil {
		return model.Book{}, err
	}
	if err := s.repo.InitializeInventory(ctx, book.ID, req.Quantity); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) GetBookDetails(ctx context.Context, id uuid.UUID) (model.BookDetails, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.BookDetails{}, err
	}
	inv, err := s.repo.GetInventory(ctx, id)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.BookDetails{}, err
	}
	reviews, err := s.repo.ListBookReviews(ctx, id)
	if err != nil {
		return model.BookDetails{}, err
	}

	var avg float64
	if len(reviews) > 0 {
		sum := 0
		for _, rev := range reviews {
			sum += rev.Rating
		}
		avg = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	return model.BookDetails{
		Book:          book,
		Inventory:     inv,
		Reviews:       reviews,
		AverageRating: avg,
		TotalReviews:  len(reviews),
	}, nil
}

func (s *Service) SearchBooks(ctx context.Context, f model.SearchBooksFilter) (model.ListBooks, error) {
	return s.repo.SearchBooks(ctx, f)
}

func (s *Service) UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (model.Book, error) {
	book, err := s.repo.UpdateBook(ctx, id, model.Book{
		Title:       req.Title,
		ISBN:        req.ISBN,
		Author:      req.Author,
		Publisher:   req.Publisher,
		PublishYear: req.PublishYear,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		BookshelfID: req.Bookshelf,
	}, req.Categories)
	if err != nil {
		return model.Book{}, err
	}

	// Quantity change flows through the copy counters: delta lands on both
	// total and available, and may not consume more copies than are free.
	if req.Quantity != nil {
		inv, err := s.repo.GetInventory(ctx, id)
		if err != nil {
			return model.Book{}, err
		}
		delta := *req.Quantity - inv.Total
		if delta != 0 {
			if delta < 0 && inv.Available+delta < 0 {
				return model.Book{}, errs.ErrInvalidInventory
			}
			if err := s.repo.GrowInventory(ctx, id, delta); err != nil {
				return model.Book{}, err
			}
		}
	}
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, id uuid.UUID) error {
	active, err := s.repo.CountActiveBorrows(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return errs.ErrActiveBorrows
	}
	if err := s.repo.DeleteInventory(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) AdjustInventory(ctx context.Context, bookID uuid.UUID, c model.Counters) (model.Inventory, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.Inventory{}, err
	}
	if !c.Conserved() {
		return model.Inventory{}, errs.ErrInvalidInventory
	}
	return s.repo.AdjustInventory(ctx, bookID, c)
}

func (s *Service) CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error) {
	return s.repo.CreateCategory(ctx, model.Category{Name: req.Name, Description: req.Description})
}

func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (model.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, req model.CategoryRequest) (model.Category, error) {
	return s.repo.UpdateCategory(ctx, id, model.Category{Name: req.Name, Description: req.Description})
}

func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	used, err := s.repo.CountBooksUsingCategory(ctx, id)
	if err != nil {
		return err
	}
	if used > 0 {
		return errs.ErrInUse
	}
	return s.repo.DeleteCategory(ctx, id)
}

func (s *Service) CreateBookshelf(ctx context.Context, req model.BookshelfRequest) (model.Bookshelf, error) {
	return s.repo.CreateBookshelf(ctx, model.Bookshelf{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	})
}

func (s *Service) GetBookshelf(ctx context.Context, id uuid.UUID) (model.Bookshelf, error) {
	return s.repo.GetBookshelf(ctx, id)
}

func (s *Service) ListBookshelves(ctx context.Context) ([]model.Bookshelf, error) {
	return s.repo.ListBookshelves(ctx)
}

func (s *Service) UpdateBookshelf(ctx context.Context, id uuid.UUID, req model.BookshelfRequest) (model.Bookshelf, error) {
	return s.repo.UpdateBookshelf(ctx, id, model.Bookshelf{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	})
}

func (s *Service) DeleteBookshelf(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountBooksOnShelf(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.ErrInUse
	}
	return s.repo.DeleteBookshelf(ctx, id)
}

func (s *Service) MoveBooks(ctx context.Context, req model.MoveBooksRequest) (model.MoveBooksResponse, error) {
	if _, err := s.repo.GetBookshelf(ctx, req.FromBookshelfID); err != nil {
		return model.MoveBooksResponse{}, err
	}
	if _, err := s.repo.GetBookshelf(ctx, req.ToBookshelfID); err != nil {
		return model.MoveBooksResponse{}, err
	}
	moved, err := s.repo.MoveBooks(ctx, req.FromBookshelfID, req.ToBookshelfID, req.BookIDs)
	if err != nil {
		return model.MoveBooksResponse{}, err
	}
	return model.MoveBooksResponse{MovedCount: moved}, nil
}
