package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/library/internal/model"
)

// All counter mutations are single-statement conditional updates so that two
// racing transitions on the same book cannot lose an increment. The database
// CHECK constraint backstops the conservation invariant.

func (r *repository) InitializeInventory(ctx context.Context, bookID uuid.UUID, quantity int) error {
	q, args, err := qb.Insert(inventoryTableName).
		Columns("book_id", "total", "available").
		Values(bookID, quantity, quantity).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) GetInventory(ctx context.Context, bookID uuid.UUID) (model.Inventory, error) {
	q, args, err := qb.Select("*").
		From(inventoryTableName).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return model.Inventory{}, err
	}
	var inv model.Inventory
	if err := r.db.GetContext(ctx, &inv, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Inventory{}, errs.ErrNotFound
		}
		return model.Inventory{}, err
	}
	return inv, nil
}

func (r *repository) ReserveCopy(ctx context.Context, bookID uuid.UUID) error {
	q := fmt.Sprintf(`update %s
	set available = available - 1, borrowed = borrowed + 1, updated_at = now()
	where book_id = $1 and available > 0`, inventoryTableName)

	res, err := r.db.ExecContext(ctx, q, bookID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotAvailable
	}
	return nil
}

// UnreserveCopy compensates a ReserveCopy whose follow-up status transition
// lost the race.
func (r *repository) UnreserveCopy(ctx context.Context, bookID uuid.UUID) error {
	q := fmt.Sprintf(`update %s
	set available = available + 1, borrowed = borrowed - 1, updated_at = now()
	where book_id = $1 and borrowed > 0`, inventoryTableName)

	_, err := r.db.ExecContext(ctx, q, bookID)
	return err
}

func (r *repository) ReleaseCopy(ctx context.Context, bookID uuid.UUID, condition model.Condition) error {
	var target string
	switch condition {
	case model.ConditionGood:
		target = "available"
	case model.ConditionDamaged:
		target = "damaged"
	case model.ConditionLost:
		target = "lost"
	default:
		return errors.Errorf("unknown condition %q", condition)
	}
	q := fmt.Sprintf(`update %s
	set borrowed = borrowed - 1, %s = %s + 1, updated_at = now()
	where book_id = $1 and borrowed > 0`, inventoryTableName, target, target)

	res, err := r.db.ExecContext(ctx, q, bookID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) AdjustInventory(ctx context.Context, bookID uuid.UUID, c model.Counters) (model.Inventory, error) {
	q, args, err := qb.Update(inventoryTableName).
		Set("total", c.Total).
		Set("available", c.Available).
		Set("borrowed", c.Borrowed).
		Set("damaged", c.Damaged).
		Set("lost", c.Lost).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"book_id": bookID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Inventory{}, err
	}
	var inv model.Inventory
	if err := r.db.GetContext(ctx, &inv, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Inventory{}, errs.ErrNotFound
		}
		return model.Inventory{}, err
	}
	return inv, nil
}

func (r *repository) GrowInventory(ctx context.Context, bookID uuid.UUID, delta int) error {
	q := fmt.Sprintf(`update %s
	set total = total + $1, available = available + $1, updated_at = now()
	where book_id = $2`, inventoryTableName)

	_, err := r.db.ExecContext(ctx, q, delta, bookID)
	return err
}

func (r *repository) DeleteInventory(ctx context.Context, bookID uuid.UUID) error {
	q, args, err := qb.Delete(inventoryTableName).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}
