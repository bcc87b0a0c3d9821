package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/library/internal/model"
	"github.com/openshelf/library-api/library/internal/service"

	repo_mocks "github.com/openshelf/library-api/library/internal/repository/mocks"
)

var (
	recID   = uuid.MustParse("83575e12-7ce0-48ee-9931-51919ff3c9ee")
	userID  = uuid.MustParse("0b3f7b5a-9f2e-4c1d-8a6b-2f4e9d1c3a57")
	bookID  = uuid.MustParse("f7cdc58f-2caf-4b15-9727-f89dcc629b27")
	staffID = uuid.MustParse("7c1d2e3f-4a5b-6c7d-8e9f-0a1b2c3d4e5f")
	fineID  = uuid.MustParse("5d3a1b2c-6e7f-4a8b-9c0d-1e2f3a4b5c6d")
)

func newTestService(t *testing.T) (*service.Service, *repo_mocks.MockRepository) {
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, service.FinePolicy{
		RatePerDay:     decimal.NewFromInt(5000),
		DamageFraction: decimal.NewFromFloat(0.3),
		ExtendDays:     7,
	}, nil, zap.NewExample().Named("test"))
	return svc, repo
}

func TestService_ApproveBorrow(t *testing.T) {
	t.Parallel()
	pending := model.BorrowRecord{ID: recID, UserID: userID, BookID: bookID, Status: model.StatusPending}
	borrowed := model.BorrowRecord{ID: recID, UserID: userID, BookID: bookID, Status: model.StatusBorrowed, ProcessedBy: &staffID}

	var tests = []struct {
		name         string
		mockBehavior func(r *repo_mocks.MockRepository)
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBorrowRecord(context.Background(), recID).Return(pending, nil)
				r.EXPECT().ReserveCopy(context.Background(), bookID).Return(nil)
				r.EXPECT().ApproveBorrow(context.Background(), recID, staffID).Return(borrowed, nil)
			},
		},
		{
			name: "err. already processed",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBorrowRecord(context.Background(), recID).Return(borrowed, nil)
			},
			wantErr: errs.ErrNotPending,
		},
		{
			name: "err. no copies left",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBorrowRecord(context.Background(), recID).Return(pending, nil)
				r.EXPECT().ReserveCopy(context.Background(), bookID).Return(errs.ErrNotAvailable)
			},
			wantErr: errs.ErrNotAvailable,
		},
		{
			name: "err. lost transition race hands the copy back",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBorrowRecord(context.Background(), recID).Return(pending, nil)
				r.EXPECT().ReserveCopy(context.Background(), bookID).Return(nil)
				r.EXPECT().ApproveBorrow(context.Background(), recID, staffID).Return(model.BorrowRecord{}, errs.ErrNotPending)
				r.EXPECT().UnreserveCopy(context.Background(), bookID).Return(nil)
			},
			wantErr: errs.ErrNotPending,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			got, err := svc.ApproveBorrow(context.Background(), recID, staffID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, borrowed, got)
		})
	}
}

func TestService_ReturnBorrow(t *testing.T) {
	t.Parallel()

	returned := func(due time.Time) model.BorrowRecord {
		return model.BorrowRecord{ID: recID, UserID: userID, BookID: bookID, Status: model.StatusReturned, DueDate: due}
	}

	t.Run("on time in good condition", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		rec := returned(time.Now().Add(time.Hour))
		repo.EXPECT().
			ReturnBorrow(gomock.Any(), recID, staffID, model.StatusReturned, gomock.Any(), "").
			Return(rec, nil)
		repo.EXPECT().ReleaseCopy(gomock.Any(), bookID, model.ConditionGood).Return(nil)

		resp, err := svc.ReturnBorrow(context.Background(), recID, staffID, model.ReturnRequest{Condition: model.ConditionGood})
		require.NoError(t, err)
		require.False(t, resp.IsOverdue)
		require.Nil(t, resp.Fine)
		require.Equal(t, rec, resp.BorrowRecord)
	})

	t.Run("overdue and damaged creates one combined fine", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		rec := returned(time.Now().Add(-36 * time.Hour))
		repo.EXPECT().
			ReturnBorrow(gomock.Any(), recID, staffID, model.StatusReturned, gomock.Any(), "").
			Return(rec, nil)
		repo.EXPECT().ReleaseCopy(gomock.Any(), bookID, model.ConditionDamaged).Return(nil)
		repo.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{ID: bookID, Price: decimal.NewFromInt(100000)}, nil)
		repo.EXPECT().CreateFine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f model.Fine) (model.Fine, error) {
				require.Equal(t, userID, f.UserID)
				require.Equal(t, model.ReasonOverdue, f.Reason)
				require.True(t, f.Amount.Equal(decimal.NewFromInt(40000)), "amount %s", f.Amount)
				f.ID = fineID
				return f, nil
			})
		repo.EXPECT().AttachFine(gomock.Any(), recID, fineID).Return(nil)

		resp, err := svc.ReturnBorrow(context.Background(), recID, staffID, model.ReturnRequest{Condition: model.ConditionDamaged})
		require.NoError(t, err)
		require.True(t, resp.IsOverdue)
		require.NotNil(t, resp.Fine)
		require.Equal(t, fineID, resp.Fine.ID)
	})

	t.Run("lost marks the record and charges full price", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		rec := model.BorrowRecord{ID: recID, UserID: userID, BookID: bookID, Status: model.StatusLost, DueDate: time.Now().Add(time.Hour)}
		repo.EXPECT().
			ReturnBorrow(gomock.Any(), recID, staffID, model.StatusLost, gomock.Any(), "").
			Return(rec, nil)
		repo.EXPECT().ReleaseCopy(gomock.Any(), bookID, model.ConditionLost).Return(nil)
		repo.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{ID: bookID, Price: decimal.NewFromInt(200000)}, nil)
		repo.EXPECT().CreateFine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f model.Fine) (model.Fine, error) {
				require.Equal(t, model.ReasonLost, f.Reason)
				require.True(t, f.Amount.Equal(decimal.NewFromInt(200000)), "amount %s", f.Amount)
				f.ID = fineID
				return f, nil
			})
		repo.EXPECT().AttachFine(gomock.Any(), recID, fineID).Return(nil)

		resp, err := svc.ReturnBorrow(context.Background(), recID, staffID, model.ReturnRequest{Condition: model.ConditionLost})
		require.NoError(t, err)
		require.False(t, resp.IsOverdue)
		require.NotNil(t, resp.Fine)
	})

	t.Run("release failure surfaces after the transition", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		rec := returned(time.Now().Add(time.Hour))
		releaseErr := errors.New("db internal")
		repo.EXPECT().
			ReturnBorrow(gomock.Any(), recID, staffID, model.StatusReturned, gomock.Any(), "").
			Return(rec, nil)
		repo.EXPECT().ReleaseCopy(gomock.Any(), bookID, model.ConditionGood).Return(releaseErr)

		_, err := svc.ReturnBorrow(context.Background(), recID, staffID, model.ReturnRequest{Condition: model.ConditionGood})
		require.ErrorIs(t, err, releaseErr)
	})
}

func TestService_ExtendBorrow(t *testing.T) {
	t.Parallel()
	rec := model.BorrowRecord{ID: recID, UserID: userID, BookID: bookID, Status: model.StatusBorrowed}

	var tests = []struct {
		name         string
		days         int
		mockBehavior func(r *repo_mocks.MockRepository)
		wantErr      error
	}{
		{
			name: "zero days falls back to the policy default",
			days: 0,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBorrowRecord(context.Background(), recID).Return(rec, nil)
				r.EXPECT().UnpaidFineCount(context.Background(), userID).Return(0, nil)
				r.EXPECT().ExtendBorrow(context.Background(), recID, 7).Return(rec, nil)
			},
		},
		{
			name: "explicit days",
			days: 14,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBorrowRecord(context.Background(), recID).Return(rec, nil)
				r.EXPECT().UnpaidFineCount(context.Background(), userID).Return(0, nil)
				r.EXPECT().ExtendBorrow(context.Background(), recID, 14).Return(rec, nil)
			},
		},
		{
			name: "err. blocked by unpaid fines",
			days: 7,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBorrowRecord(context.Background(), recID).Return(rec, nil)
				r.EXPECT().UnpaidFineCount(context.Background(), userID).Return(2, nil)
			},
			wantErr: errs.ErrUnpaidFines,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			_, err := svc.ExtendBorrow(context.Background(), recID, tt.days)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
