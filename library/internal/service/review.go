package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/library/internal/model"
)

func (s *Service) CreateReview(ctx context.Context, userID uuid.UUID, req model.CreateReviewRequest) (model.Review, error) {
	if _, err := s.repo.GetBook(ctx, req.BookID); err != nil {
		return model.Review{}, err
	}
	returned, err := s.repo.HasReturnedBorrow(ctx, userID, req.BookID)
	if err != nil {
		return model.Review{}, err
	}
	if !returned {
		return model.Review{}, errs.ErrNotReturned
	}
	return s.repo.CreateReview(ctx, model.Review{
		UserID:  userID,
		BookID:  req.BookID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
}

func (s *Service) UpdateReview(ctx context.Context, id, userID uuid.UUID, req model.UpdateReviewRequest) (model.Review, error) {
	return s.repo.UpdateReview(ctx, id, userID, req.Rating, req.Comment)
}

func (s *Service) DeleteReview(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.DeleteReview(ctx, id, userID)
}

func (s *Service) UserReviews(ctx context.Context, userID uuid.UUID) ([]model.Review, error) {
	return s.repo.ListUserReviews(ctx, userID)
}
