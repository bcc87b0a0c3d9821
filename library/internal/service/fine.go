package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/openshelf/library-api/library/internal/model"
)

func (s *Service) CreateManualFine(ctx context.Context, staffID uuid.UUID, req model.CreateFineRequest) (model.Fine, error) {
	if req.BorrowRecordID != nil {
		if _, err := s.repo.GetBorrowRecord(ctx, *req.BorrowRecordID); err != nil {
			return model.Fine{}, err
		}
	}
	return s.repo.CreateFine(ctx, model.Fine{
		UserID:         req.UserID,
		BorrowRecordID: req.BorrowRecordID,
		Reason:         req.Reason,
		Amount:         req.Amount,
		ProcessedBy:    &staffID,
		Note:           req.Note,
	})
}

func (s *Service) GetFine(ctx context.Context, id uuid.UUID) (model.Fine, error) {
	return s.repo.GetFine(ctx, id)
}

func (s *Service) MarkFinePaid(ctx context.Context, id, staffID uuid.UUID, note string) (model.Fine, error) {
	return s.repo.MarkFinePaid(ctx, id, staffID, note)
}

func (s *Service) DeleteFine(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteFine(ctx, id)
}

func (s *Service) ListFines(ctx context.Context, f model.FineFilter) (model.ListFines, error) {
	return s.repo.ListFines(ctx, f)
}

func (s *Service) UserFines(ctx context.Context, userID uuid.UUID, paid *bool) (model.UserFines, error) {
	return s.repo.UserFines(ctx, userID, paid)
}
