package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/library/internal/model"
)

const (
	onSiteBorrowPeriod   = 24 * time.Hour
	takeHomeBorrowPeriod = 14 * 24 * time.Hour
	topListLimit         = 10
)

func (s *Service) CreateBorrowRequest(ctx context.Context, userID uuid.UUID, req model.CreateBorrowRequest) (model.BorrowRecord, error) {
	if _, err := s.repo.GetBook(ctx, req.BookID); err != nil {
		return model.BorrowRecord{}, err
	}
	inv, err := s.repo.GetInventory(ctx, req.BookID)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	if inv.Available <= 0 {
		return model.BorrowRecord{}, errs.ErrNotAvailable
	}

	period := takeHomeBorrowPeriod
	if req.IsReadOnSite {
		period = onSiteBorrowPeriod
	}
	rec := model.BorrowRecord{
		UserID:       userID,
		BookID:       req.BookID,
		IsReadOnSite: req.IsReadOnSite,
		DueDate:      time.Now().Add(period),
		Notes:        req.Notes,
	}
	return s.repo.CreateBorrowRequest(ctx, rec)
}

// ApproveBorrow reserves the copy before the status transition. If the
// guarded transition then matches nothing (already approved, declined or
// cancelled concurrently), the reservation is handed back.
func (s *Service) ApproveBorrow(ctx context.Context, id, staffID uuid.UUID) (model.BorrowRecord, error) {
	rec, err := s.repo.GetBorrowRecord(ctx, id)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	if rec.Status != model.StatusPending {
		return model.BorrowRecord{}, errs.ErrNotPending
	}

	if err := s.repo.ReserveCopy(ctx, rec.BookID); err != nil {
		return model.BorrowRecord{}, err
	}
	approved, err := s.repo.ApproveBorrow(ctx, id, staffID)
	if err != nil {
		if unreserveErr := s.repo.UnreserveCopy(ctx, rec.BookID); unreserveErr != nil {
			s.log.Error("unreserve compensation", zap.String("bookId", rec.BookID.String()), zap.Error(unreserveErr))
		}
		return model.BorrowRecord{}, err
	}

	s.publishEvent(ctx, eventApproved, approved)
	return approved, nil
}

func (s *Service) DeclineBorrow(ctx context.Context, id, staffID uuid.UUID, reason string) error {
	if err := s.repo.DeclineBorrow(ctx, id, staffID, reason); err != nil {
		return err
	}
	s.publishEvent(ctx, eventDeclined, model.BorrowRecord{ID: id})
	return nil
}

func (s *Service) CancelBorrow(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.CancelBorrow(ctx, id, userID)
}

func (s *Service) ReturnBorrow(ctx context.Context, id, staffID uuid.UUID, req model.ReturnRequest) (model.ReturnResponse, error) {
	status := model.StatusReturned
	if req.Condition == model.ConditionLost {
		status = model.StatusLost
	}
	returnDate := time.Now()

	rec, err := s.repo.ReturnBorrow(ctx, id, staffID, status, returnDate, req.Notes)
	if err != nil {
		return model.ReturnResponse{}, err
	}
	if err := s.repo.ReleaseCopy(ctx, rec.BookID, req.Condition); err != nil {
		s.log.Error("release copy", zap.String("bookId", rec.BookID.String()), zap.Error(err))
		return model.ReturnResponse{}, err
	}

	isOverdue := returnDate.After(rec.DueDate)

	var fine *model.Fine
	if isOverdue || req.Condition != model.ConditionGood {
		book, err := s.repo.GetBook(ctx, rec.BookID)
		if err != nil {
			return model.ReturnResponse{}, err
		}
		if assessment, due := s.policy.Assess(book.Price, rec.DueDate, returnDate, req.Condition); due {
			created, err := s.repo.CreateFine(ctx, model.Fine{
				UserID:         rec.UserID,
				BorrowRecordID: &rec.ID,
				Reason:         assessment.Reason,
				Amount:         assessment.Amount,
				ProcessedBy:    &staffID,
				Note:           assessment.Note,
			})
			if err != nil {
				return model.ReturnResponse{}, err
			}
			if err := s.repo.AttachFine(ctx, rec.ID, created.ID); err != nil {
				return model.ReturnResponse{}, err
			}
			rec.FineID = &created.ID
			fine = &created
			s.publishEvent(ctx, eventFineCreated, rec)
		}
	}

	if status == model.StatusLost {
		s.publishEvent(ctx, eventLost, rec)
	} else {
		s.publishEvent(ctx, eventReturned, rec)
	}

	return model.ReturnResponse{
		BorrowRecord: rec,
		Fine:         fine,
		IsOverdue:    isOverdue,
	}, nil
}

func (s *Service) ExtendBorrow(ctx context.Context, id uuid.UUID, days int) (model.ExtendResponse, error) {
	rec, err := s.repo.GetBorrowRecord(ctx, id)
	if err != nil {
		return model.ExtendResponse{}, err
	}
	unpaid, err := s.repo.UnpaidFineCount(ctx, rec.UserID)
	if err != nil {
		return model.ExtendResponse{}, err
	}
	if unpaid > 0 {
		return model.ExtendResponse{}, errs.ErrUnpaidFines
	}

	if days <= 0 {
		days = s.policy.ExtendDays
	}
	extended, err := s.repo.ExtendBorrow(ctx, id, days)
	if err != nil {
		return model.ExtendResponse{}, err
	}
	return model.ExtendResponse{
		BorrowRecord: extended,
		NewDueDate:   extended.DueDate,
	}, nil
}

func (s *Service) ListBorrowRecords(ctx context.Context, f model.BorrowFilter) (model.ListBorrowRecords, error) {
	return s.repo.ListBorrowRecords(ctx, f)
}

func (s *Service) UserBorrowHistory(ctx context.Context, userID uuid.UUID, status model.BorrowStatus, page, size int) (model.ListBorrowRecords, error) {
	return s.repo.ListBorrowRecords(ctx, model.BorrowFilter{
		Status: status,
		UserID: &userID,
		Page:   page,
		Size:   size,
	})
}

func (s *Service) UserBorrowRequests(ctx context.Context, userID uuid.UUID) ([]model.BorrowRecord, error) {
	list, err := s.repo.ListBorrowRecords(ctx, model.BorrowFilter{UserID: &userID})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (s *Service) BorrowStatistics(ctx context.Context, f model.StatisticsFilter) (model.BorrowStatistics, error) {
	var stats model.BorrowStatistics
	now := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.repo.BorrowStatusSummary(ctx, f)
		stats.Summary = summary
		return err
	})
	g.Go(func() error {
		overdue, err := s.repo.OverdueRecords(ctx, now)
		for i := range overdue {
			overdue[i].DaysLate = int(math.Ceil(now.Sub(overdue[i].DueDate).Hours() / 24))
		}
		stats.OverdueBooks = overdue
		return err
	})
	g.Go(func() error {
		top, err := s.repo.TopBorrowedBooks(ctx, f, topListLimit)
		stats.TopBorrowedBooks = top
		return err
	})
	g.Go(func() error {
		top, err := s.repo.TopBorrowers(ctx, f, topListLimit)
		stats.TopBorrowers = top
		return err
	})
	if err := g.Wait(); err != nil {
		return model.BorrowStatistics{}, err
	}
	return stats, nil
}
