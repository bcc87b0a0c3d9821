package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/library/internal/model"

	repo_mocks "github.com/openshelf/library-api/library/internal/repository/mocks"
)

func TestService_CreateReview(t *testing.T) {
	t.Parallel()
	req := model.CreateReviewRequest{BookID: bookID, Rating: 5, Comment: "great"}

	var tests = []struct {
		name         string
		mockBehavior func(r *repo_mocks.MockRepository)
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(context.Background(), bookID).Return(model.Book{ID: bookID}, nil)
				r.EXPECT().HasReturnedBorrow(context.Background(), userID, bookID).Return(true, nil)
				r.EXPECT().
					CreateReview(context.Background(), model.Review{UserID: userID, BookID: bookID, Rating: 5, Comment: "great"}).
					Return(model.Review{ID: recID, UserID: userID, BookID: bookID, Rating: 5, Comment: "great"}, nil)
			},
		},
		{
			name: "err. never borrowed and returned",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(context.Background(), bookID).Return(model.Book{ID: bookID}, nil)
				r.EXPECT().HasReturnedBorrow(context.Background(), userID, bookID).Return(false, nil)
			},
			wantErr: errs.ErrNotReturned,
		},
		{
			name: "err. unknown book",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(context.Background(), bookID).Return(model.Book{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			rev, err := svc.CreateReview(context.Background(), userID, req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 5, rev.Rating)
		})
	}
}
