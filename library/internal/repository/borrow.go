package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/library/internal/model"
)

func (r *repository) CreateBorrowRequest(ctx context.Context, rec model.BorrowRecord) (model.BorrowRecord, error) {
	q, args, err := qb.Insert(borrowTableName).
		Columns("user_id", "book_id", "status", "is_read_on_site", "due_date", "notes").
		Values(rec.UserID, rec.BookID, model.StatusPending, rec.IsReadOnSite, rec.DueDate, rec.Notes).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}
	var out model.BorrowRecord
	if err := r.db.GetContext(ctx, &out, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.BorrowRecord{}, errs.ErrDuplicateRequest
		}
		r.log.Error("CreateBorrowRequest", zap.String("q", q), zap.Error(err))
		return model.BorrowRecord{}, err
	}
	return out, nil
}

func (r *repository) GetBorrowRecord(ctx context.Context, id uuid.UUID) (model.BorrowRecord, error) {
	q, args, err := qb.Select("*").
		From(borrowTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}
	var rec model.BorrowRecord
	if err := r.db.GetContext(ctx, &rec, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrNotFound
		}
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

// ApproveBorrow performs the pending -> borrowed transition guarded by the
// expected prior status, so a concurrent second approve matches zero rows.
func (r *repository) ApproveBorrow(ctx context.Context, id, staffID uuid.UUID) (model.BorrowRecord, error) {
	q := fmt.Sprintf(`update %s
	set status = $1, borrow_date = now(), processed_by = $2
	where id = $3 and status = $4
	returning *`, borrowTableName)

	var rec model.BorrowRecord
	err := r.db.GetContext(ctx, &rec, q, model.StatusBorrowed, staffID, id, model.StatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, r.pendingConflict(ctx, id)
		}
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

func (r *repository) DeclineBorrow(ctx context.Context, id, staffID uuid.UUID, reason string) error {
	b := qb.Update(borrowTableName).
		Set("status", model.StatusDeclined).
		Set("processed_by", staffID).
		Where(sq.Eq{"id": id, "status": model.StatusPending})
	if reason != "" {
		b = b.Set("notes", reason)
	}
	q, args, err := b.ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.pendingConflict(ctx, id)
	}
	return nil
}

func (r *repository) CancelBorrow(ctx context.Context, id, userID uuid.UUID) error {
	q, args, err := qb.Update(borrowTableName).
		Set("status", model.StatusDeclined).
		Where(sq.Eq{"id": id, "user_id": userID, "status": model.StatusPending}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		rec, err := r.GetBorrowRecord(ctx, id)
		if err != nil {
			return err
		}
		if rec.UserID != userID {
			return errs.ErrPermission
		}
		return errs.ErrNotPending
	}
	return nil
}

func (r *repository) ReturnBorrow(ctx context.Context, id, staffID uuid.UUID, status model.BorrowStatus, returnDate time.Time, notes string) (model.BorrowRecord, error) {
	b := qb.Update(borrowTableName).
		Set("status", status).
		Set("return_date", returnDate).
		Set("processed_by", staffID).
		Where(sq.Eq{"id": id, "status": model.StatusBorrowed}).
		Suffix("returning *")
	if notes != "" {
		b = b.Set("notes", notes)
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}
	var rec model.BorrowRecord
	if err := r.db.GetContext(ctx, &rec, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, r.borrowedConflict(ctx, id)
		}
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

func (r *repository) ExtendBorrow(ctx context.Context, id uuid.UUID, days int) (model.BorrowRecord, error) {
	q := fmt.Sprintf(`update %s
	set due_date = due_date + $1 * interval '1 day'
	where id = $2 and status = $3
	returning *`, borrowTableName)

	var rec model.BorrowRecord
	err := r.db.GetContext(ctx, &rec, q, days, id, model.StatusBorrowed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, r.borrowedConflict(ctx, id)
		}
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

func (r *repository) AttachFine(ctx context.Context, recordID, fineID uuid.UUID) error {
	q, args, err := qb.Update(borrowTableName).
		Set("fine_id", fineID).
		Where(sq.Eq{"id": recordID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) ListBorrowRecords(ctx context.Context, f model.BorrowFilter) (model.ListBorrowRecords, error) {
	b := qb.Select("*").From(borrowTableName)
	cnt := qb.Select("count(*)").From(borrowTableName)

	apply := func(s sq.SelectBuilder) sq.SelectBuilder {
		if f.IsOverdue {
			s = s.Where(sq.Eq{"status": model.StatusBorrowed}).
				Where(sq.Lt{"due_date": time.Now()})
		} else if f.Status != "" {
			s = s.Where(sq.Eq{"status": f.Status})
		}
		if f.UserID != nil {
			s = s.Where(sq.Eq{"user_id": *f.UserID})
		}
		if f.BookID != nil {
			s = s.Where(sq.Eq{"book_id": *f.BookID})
		}
		return s
	}
	b, cnt = apply(b), apply(cnt)

	b = b.OrderBy("requested_at desc")
	if f.Page != 0 && f.Size != 0 {
		b = b.Limit(uint64(f.Size)).Offset(uint64((f.Page - 1) * f.Size))
	}

	q, args, err := b.ToSql()
	if err != nil {
		return model.ListBorrowRecords{}, err
	}
	var items []model.BorrowRecord
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return model.ListBorrowRecords{}, err
	}

	q, args, err = cnt.ToSql()
	if err != nil {
		return model.ListBorrowRecords{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, q, args...); err != nil {
		return model.ListBorrowRecords{}, err
	}

	return model.ListBorrowRecords{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.Size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

func (r *repository) CountActiveBorrows(ctx context.Context, bookID uuid.UUID) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s
	where book_id = $1 and status in ($2, $3)`, borrowTableName)

	var count int
	if err := r.db.GetContext(ctx, &count, q, bookID, model.StatusPending, model.StatusBorrowed); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) HasReturnedBorrow(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	q := fmt.Sprintf(`select exists(
	select 1 from %s where user_id = $1 and book_id = $2 and status = $3)`, borrowTableName)

	var ok bool
	if err := r.db.GetContext(ctx, &ok, q, userID, bookID, model.StatusReturned); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *repository) BorrowStatusSummary(ctx context.Context, f model.StatisticsFilter) (map[model.BorrowStatus]int, error) {
	b := qb.Select("status", "count(*) as count").
		From(borrowTableName).
		GroupBy("status")
	b = withDateRange(b, "requested_at", f)

	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var rows []struct {
		Status model.BorrowStatus `db:"status"`
		Count  int                `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	summary := make(map[model.BorrowStatus]int, len(rows))
	for _, row := range rows {
		summary[row.Status] = row.Count
	}
	return summary, nil
}

func (r *repository) OverdueRecords(ctx context.Context, now time.Time) ([]model.OverdueRecord, error) {
	q, args, err := qb.Select("user_id", "book_id", "due_date").
		From(borrowTableName).
		Where(sq.Eq{"status": model.StatusBorrowed}).
		Where(sq.Lt{"due_date": now}).
		OrderBy("due_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.OverdueRecord
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) TopBorrowedBooks(ctx context.Context, f model.StatisticsFilter, limit int) ([]model.BookBorrowCount, error) {
	b := qb.Select("br.book_id", "b.title", "b.author", "count(*) as borrow_count").
		From(borrowTableName+" br").
		Join(bookTableName+" b on b.id = br.book_id").
		Where(sq.Eq{"br.status": []model.BorrowStatus{model.StatusBorrowed, model.StatusReturned}}).
		GroupBy("br.book_id", "b.title", "b.author").
		OrderBy("borrow_count desc").
		Limit(uint64(limit))
	b = withDateRange(b, "br.requested_at", f)

	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.BookBorrowCount
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) TopBorrowers(ctx context.Context, f model.StatisticsFilter, limit int) ([]model.UserBorrowCount, error) {
	b := qb.Select("user_id", "count(*) as borrow_count").
		From(borrowTableName).
		Where(sq.Eq{"status": []model.BorrowStatus{model.StatusBorrowed, model.StatusReturned}}).
		GroupBy("user_id").
		OrderBy("borrow_count desc").
		Limit(uint64(limit))
	b = withDateRange(b, "requested_at", f)

	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.UserBorrowCount
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func withDateRange(b sq.SelectBuilder, column string, f model.StatisticsFilter) sq.SelectBuilder {
	if f.FromDate != nil {
		b = b.Where(sq.GtOrEq{column: *f.FromDate})
	}
	if f.ToDate != nil {
		b = b.Where(sq.LtOrEq{column: *f.ToDate})
	}
	return b
}

// pendingConflict explains a zero-row guarded update: the record is either
// absent or no longer pending.
func (r *repository) pendingConflict(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetBorrowRecord(ctx, id); err != nil {
		return err
	}
	return errs.ErrNotPending
}

func (r *repository) borrowedConflict(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetBorrowRecord(ctx, id); err != nil {
		return err
	}
	return errs.ErrNotBorrowed
}
