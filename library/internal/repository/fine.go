package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/library/internal/model"
)

func (r *repository) CreateFine(ctx context.Context, fine model.Fine) (model.Fine, error) {
	q, args, err := qb.Insert(fineTableName).
		Columns("user_id", "borrow_record_id", "reason", "amount", "processed_by", "note").
		Values(fine.UserID, fine.BorrowRecordID, fine.Reason, fine.Amount, fine.ProcessedBy, fine.Note).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	var out model.Fine
	if err := r.db.GetContext(ctx, &out, q, args...); err != nil {
		r.log.Error("CreateFine", zap.String("q", q), zap.Error(err))
		return model.Fine{}, err
	}
	return out, nil
}

func (r *repository) GetFine(ctx context.Context, id uuid.UUID) (model.Fine, error) {
	q, args, err := qb.Select("*").
		From(fineTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	var fine model.Fine
	if err := r.db.GetContext(ctx, &fine, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Fine{}, errs.ErrNotFound
		}
		return model.Fine{}, err
	}
	return fine, nil
}

func (r *repository) UnpaidFineCount(ctx context.Context, userID uuid.UUID) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s where user_id = $1 and not paid`, fineTableName)

	var count int
	if err := r.db.GetContext(ctx, &count, q, userID); err != nil {
		return 0, err
	}
	return count, nil
}

// MarkFinePaid is guarded by the unpaid precondition so paying twice conflicts
// instead of silently rewriting paid_at.
func (r *repository) MarkFinePaid(ctx context.Context, id, staffID uuid.UUID, note string) (model.Fine, error) {
	b := qb.Update(fineTableName).
		Set("paid", true).
		Set("paid_at", sq.Expr("now()")).
		Set("processed_by", staffID).
		Where(sq.Eq{"id": id, "paid": false}).
		Suffix("returning *")
	if note != "" {
		b = b.Set("note", note)
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	var fine model.Fine
	if err := r.db.GetContext(ctx, &fine, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, err := r.GetFine(ctx, id); err != nil {
				return model.Fine{}, err
			}
			return model.Fine{}, errs.ErrAlreadyPaid
		}
		return model.Fine{}, err
	}
	return fine, nil
}

func (r *repository) DeleteFine(ctx context.Context, id uuid.UUID) error {
	q, args, err := qb.Delete(fineTableName).
		Where(sq.Eq{"id": id, "paid": false}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetFine(ctx, id); err != nil {
			return err
		}
		return errs.ErrFinePaid
	}
	return nil
}

func (r *repository) ListFines(ctx context.Context, f model.FineFilter) (model.ListFines, error) {
	b := qb.Select("*").From(fineTableName)
	cnt := qb.Select("count(*)").From(fineTableName)

	apply := func(s sq.SelectBuilder) sq.SelectBuilder {
		if f.Paid != nil {
			s = s.Where(sq.Eq{"paid": *f.Paid})
		}
		if f.UserID != nil {
			s = s.Where(sq.Eq{"user_id": *f.UserID})
		}
		if f.Reason != "" {
			s = s.Where(sq.Eq{"reason": f.Reason})
		}
		return s
	}
	b, cnt = apply(b), apply(cnt)

	b = b.OrderBy("created_at desc")
	if f.Page != 0 && f.Size != 0 {
		b = b.Limit(uint64(f.Size)).Offset(uint64((f.Page - 1) * f.Size))
	}

	q, args, err := b.ToSql()
	if err != nil {
		return model.ListFines{}, err
	}
	var items []model.Fine
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return model.ListFines{}, err
	}

	q, args, err = cnt.ToSql()
	if err != nil {
		return model.ListFines{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, q, args...); err != nil {
		return model.ListFines{}, err
	}

	unpaid, err := r.unpaidTotal(ctx, nil)
	if err != nil {
		return model.ListFines{}, err
	}

	return model.ListFines{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.Size,
			TotalElements: total,
		},
		Items:   items,
		Summary: model.FineSummary{TotalUnpaidAmount: unpaid},
	}, nil
}

func (r *repository) UserFines(ctx context.Context, userID uuid.UUID, paid *bool) (model.UserFines, error) {
	b := qb.Select("*").
		From(fineTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc")
	if paid != nil {
		b = b.Where(sq.Eq{"paid": *paid})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.UserFines{}, err
	}
	var items []model.Fine
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return model.UserFines{}, err
	}

	unpaid, err := r.unpaidTotal(ctx, &userID)
	if err != nil {
		return model.UserFines{}, err
	}
	return model.UserFines{Fines: items, TotalUnpaidAmount: unpaid}, nil
}

func (r *repository) unpaidTotal(ctx context.Context, userID *uuid.UUID) (decimal.Decimal, error) {
	b := qb.Select("sum(amount)").
		From(fineTableName).
		Where(sq.Eq{"paid": false})
	if userID != nil {
		b = b.Where(sq.Eq{"user_id": *userID})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return decimal.Zero, err
	}
	var total decimal.NullDecimal
	if err := r.db.GetContext(ctx, &total, q, args...); err != nil {
		return decimal.Zero, err
	}
	return decimalOrZero(total), nil
}
