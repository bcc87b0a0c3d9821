package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/library/internal/model"
)

var bookSortColumns = map[string]string{
	"createdAt":   "created_at",
	"title":       "title",
	"author":      "author",
	"publishYear": "publish_year",
	"price":       "price",
}

func (r *repository) CreateBook(ctx context.Context, book model.Book, categories []uuid.UUID) (model.Book, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Book{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q, args, err := qb.Insert(bookTableName).
		Columns("title", "isbn", "author", "publisher", "publish_year", "description", "price", "image", "bookshelf_id").
		Values(book.Title, book.ISBN, book.Author, book.Publisher, book.PublishYear, book.Description, book.Price, book.Image, book.BookshelfID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var out model.Book
	if err := tx.GetContext(ctx, &out, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, errors.Wrap(errs.ErrAlreadyExists, "isbn")
		}
		r.log.Error("CreateBook", zap.String("q", q), zap.Error(err))
		return model.Book{}, err
	}
	if err := setBookCategories(ctx, tx, out.ID, categories); err != nil {
		return model.Book{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Book{}, err
	}
	return r.GetBook(ctx, out.ID)
}

func (r *repository) GetBook(ctx context.Context, id uuid.UUID) (model.Book, error) {
	q, args, err := qb.Select("*").
		From(bookTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	books := []model.Book{book}
	if err := r.loadCategories(ctx, books); err != nil {
		return model.Book{}, err
	}
	return books[0], nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	q, args, err := qb.Select("*").
		From(bookTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	if err := r.loadCategories(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) SearchBooks(ctx context.Context, f model.SearchBooksFilter) (model.ListBooks, error) {
	b := qb.Select("b.*").From(bookTableName + " b")
	cnt := qb.Select("count(distinct b.id)").From(bookTableName + " b")

	apply := func(s sq.SelectBuilder) sq.SelectBuilder {
		if f.Query != "" {
			pattern := "%" + f.Query + "%"
			s = s.Where(sq.Or{
				sq.ILike{"b.title": pattern},
				sq.ILike{"b.author": pattern},
				sq.ILike{"b.isbn": pattern},
				sq.ILike{"b.description": pattern},
			})
		}
		if f.Category != nil {
			s = s.Join(bookCategoryTableName + " bc on bc.book_id = b.id").
				Where(sq.Eq{"bc.category_id": *f.Category})
		}
		if f.Bookshelf != nil {
			s = s.Where(sq.Eq{"b.bookshelf_id": *f.Bookshelf})
		}
		if f.Author != "" {
			s = s.Where(sq.ILike{"b.author": "%" + f.Author + "%"})
		}
		if f.PublishYear != 0 {
			s = s.Where(sq.Eq{"b.publish_year": f.PublishYear})
		}
		if f.Available {
			s = s.Join(inventoryTableName + " i on i.book_id = b.id").
				Where(sq.Gt{"i.available": 0})
		}
		return s
	}
	b, cnt = apply(b), apply(cnt)

	sortCol, ok := bookSortColumns[f.SortBy]
	if !ok {
		sortCol = "created_at"
	}
	order := "desc"
	if f.SortOrder == "asc" {
		order = "asc"
	}
	b = b.OrderBy("b." + sortCol + " " + order)
	if f.Page != 0 && f.Size != 0 {
		b = b.Limit(uint64(f.Size)).Offset(uint64((f.Page - 1) * f.Size))
	}

	q, args, err := b.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return model.ListBooks{}, err
	}
	if err := r.loadCategories(ctx, books); err != nil {
		return model.ListBooks{}, err
	}

	items, err := r.attachInventories(ctx, books)
	if err != nil {
		return model.ListBooks{}, err
	}

	q, args, err = cnt.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, q, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.Size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

func (r *repository) UpdateBook(ctx context.Context, id uuid.UUID, book model.Book, categories []uuid.UUID) (model.Book, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Book{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q, args, err := qb.Update(bookTableName).
		Set("title", book.Title).
		Set("isbn", book.ISBN).
		Set("author", book.Author).
		Set("publisher", book.Publisher).
		Set("publish_year", book.PublishYear).
		Set("description", book.Description).
		Set("price", book.Price).
		Set("image", book.Image).
		Set("bookshelf_id", book.BookshelfID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var out model.Book
	if err := tx.GetContext(ctx, &out, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Book{}, errors.Wrap(errs.ErrAlreadyExists, "isbn")
		}
		return model.Book{}, err
	}
	if err := setBookCategories(ctx, tx, id, categories); err != nil {
		return model.Book{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Book{}, err
	}
	return r.GetBook(ctx, id)
}

func (r *repository) DeleteBook(ctx context.Context, id uuid.UUID) error {
	q, args, err := qb.Delete(bookTableName).
		Where(sq.Eq{"id": id}).
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

func setBookCategories(ctx context.Context, tx *sqlx.Tx, bookID uuid.UUID, categories []uuid.UUID) error {
	q, args, err := qb.Delete(bookCategoryTableName).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return err
	}
	if len(categories) == 0 {
		return nil
	}
	ins := qb.Insert(bookCategoryTableName).Columns("book_id", "category_id")
	for _, cat := range categories {
		ins = ins.Values(bookID, cat)
	}
	q, args, err = ins.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) loadCategories(ctx context.Context, books []model.Book) error {
	if len(books) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(books))
	for i := range books {
		books[i].Categories = []model.Category{}
		ids = append(ids, books[i].ID)
	}
	q, args, err := qb.Select("bc.book_id", "c.id", "c.name", "c.description", "c.created_at", "c.updated_at").
		From(bookCategoryTableName + " bc").
		Join(categoryTableName + " c on c.id = bc.category_id").
		Where(sq.Eq{"bc.book_id": ids}).
		ToSql()
	if err != nil {
		return err
	}
	rows, err := r.db.QueryxContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byBook := make(map[uuid.UUID][]model.Category, len(books))
	for rows.Next() {
		var bookID uuid.UUID
		var c model.Category
		if err := rows.Scan(&bookID, &c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return err
		}
		byBook[bookID] = append(byBook[bookID], c)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for i := range books {
		if cats, ok := byBook[books[i].ID]; ok {
			books[i].Categories = cats
		}
	}
	return nil
}

func (r *repository) attachInventories(ctx context.Context, books []model.Book) ([]model.BookWithInventory, error) {
	items := make([]model.BookWithInventory, 0, len(books))
	if len(books) == 0 {
		return items, nil
	}
	ids := make([]uuid.UUID, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	q, args, err := qb.Select("*").
		From(inventoryTableName).
		Where(sq.Eq{"book_id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var invs []model.Inventory
	if err := r.db.SelectContext(ctx, &invs, q, args...); err != nil {
		return nil, err
	}
	byBook := make(map[uuid.UUID]model.Inventory, len(invs))
	for _, inv := range invs {
		byBook[inv.BookID] = inv
	}
	for _, b := range books {
		items = append(items, model.BookWithInventory{Book: b, Inventory: byBook[b.ID]})
	}
	return items, nil
}

func (r *repository) CreateCategory(ctx context.Context, c model.Category) (model.Category, error) {
	q, args, err := qb.Insert(categoryTableName).
		Columns("name", "description").
		Values(c.Name, c.Description).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Category{}, err
	}
	var out model.Category
	if err := r.db.GetContext(ctx, &out, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Category{}, errors.Wrap(errs.ErrAlreadyExists, "category name")
		}
		return model.Category{}, err
	}
	return out, nil
}

func (r *repository) GetCategory(ctx context.Context, id uuid.UUID) (model.Category, error) {
	q, args, err := qb.Select("*").
		From(categoryTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Category{}, err
	}
	var c model.Category
	if err := r.db.GetContext(ctx, &c, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, errs.ErrNotFound
		}
		return model.Category{}, err
	}
	return c, nil
}

func (r *repository) ListCategories(ctx context.Context) ([]model.Category, error) {
	q, args, err := qb.Select("*").
		From(categoryTableName).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Category
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateCategory(ctx context.Context, id uuid.UUID, c model.Category) (model.Category, error) {
	q, args, err := qb.Update(categoryTableName).
		Set("name", c.Name).
		Set("description", c.Description).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Category{}, err
	}
	var out model.Category
	if err := r.db.GetContext(ctx, &out, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Category{}, errors.Wrap(errs.ErrAlreadyExists, "category name")
		}
		return model.Category{}, err
	}
	return out, nil
}

func (r *repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	q, args, err := qb.Delete(categoryTableName).
		Where(sq.Eq{"id": id}).
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

func (r *repository) CountBooksUsingCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	q, args, err := qb.Select("count(*)").
		From(bookCategoryTableName).
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.GetContext(ctx, &count, q, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CreateBookshelf(ctx context.Context, b model.Bookshelf) (model.Bookshelf, error) {
	q, args, err := qb.Insert(bookshelfTableName).
		Columns("code", "name", "description", "location").
		Values(b.Code, b.Name, b.Description, b.Location).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Bookshelf{}, err
	}
	var out model.Bookshelf
	if err := r.db.GetContext(ctx, &out, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Bookshelf{}, errors.Wrap(errs.ErrAlreadyExists, "bookshelf code")
		}
		return model.Bookshelf{}, err
	}
	return out, nil
}

func (r *repository) GetBookshelf(ctx context.Context, id uuid.UUID) (model.Bookshelf, error) {
	q, args, err := qb.Select("*").
		From(bookshelfTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Bookshelf{}, err
	}
	var b model.Bookshelf
	if err := r.db.GetContext(ctx, &b, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bookshelf{}, errs.ErrNotFound
		}
		return model.Bookshelf{}, err
	}
	return b, nil
}

func (r *repository) ListBookshelves(ctx context.Context) ([]model.Bookshelf, error) {
	q, args, err := qb.Select("*").
		From(bookshelfTableName).
		OrderBy("code").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Bookshelf
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateBookshelf(ctx context.Context, id uuid.UUID, b model.Bookshelf) (model.Bookshelf, error) {
	q, args, err := qb.Update(bookshelfTableName).
		Set("code", b.Code).
		Set("name", b.Name).
		Set("description", b.Description).
		Set("location", b.Location).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Bookshelf{}, err
	}
	var out model.Bookshelf
	if err := r.db.GetContext(ctx, &out, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bookshelf{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Bookshelf{}, errors.Wrap(errs.ErrAlreadyExists, "bookshelf code")
		}
		return model.Bookshelf{}, err
	}
	return out, nil
}

func (r *repository) DeleteBookshelf(ctx context.Context, id uuid.UUID) error {
	q, args, err := qb.Delete(bookshelfTableName).
		Where(sq.Eq{"id": id}).
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

func (r *repository) CountBooksOnShelf(ctx context.Context, shelfID uuid.UUID) (int, error) {
	q, args, err := qb.Select("count(*)").
		From(bookTableName).
		Where(sq.Eq{"bookshelf_id": shelfID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.GetContext(ctx, &count, q, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) MoveBooks(ctx context.Context, fromShelf, toShelf uuid.UUID, bookIDs []uuid.UUID) (int, error) {
	q, args, err := qb.Update(bookTableName).
		Set("bookshelf_id", toShelf).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": bookIDs, "bookshelf_id": fromShelf}).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
