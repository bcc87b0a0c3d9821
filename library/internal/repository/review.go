package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/library/internal/model"
)

func (r *repository) CreateReview(ctx context.Context, rev model.Review) (model.Review, error) {
	q, args, err := qb.Insert(reviewTableName).
		Columns("user_id", "book_id", "rating", "comment").
		Values(rev.UserID, rev.BookID, rev.Rating, rev.Comment).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var out model.Review
	if err := r.db.GetContext(ctx, &out, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Review{}, errs.ErrAlreadyReviewed
		}
		return model.Review{}, err
	}
	return out, nil
}

func (r *repository) ListBookReviews(ctx context.Context, bookID uuid.UUID) ([]model.Review, error) {
	q, args, err := qb.Select("*").
		From(reviewTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Review
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListUserReviews(ctx context.Context, userID uuid.UUID) ([]model.Review, error) {
	q, args, err := qb.Select("*").
		From(reviewTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Review
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateReview is scoped to the authoring user; a foreign review is
// indistinguishable from an absent one.
func (r *repository) UpdateReview(ctx context.Context, id, userID uuid.UUID, rating int, comment string) (model.Review, error) {
	q, args, err := qb.Update(reviewTableName).
		Set("rating", rating).
		Set("comment", comment).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var out model.Review
	if err := r.db.GetContext(ctx, &out, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, errs.ErrNotFound
		}
		return model.Review{}, err
	}
	return out, nil
}

func (r *repository) DeleteReview(ctx context.Context, id, userID uuid.UUID) error {
	q, args, err := qb.Delete(reviewTableName).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
