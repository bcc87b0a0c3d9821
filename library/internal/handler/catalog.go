package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openshelf/library-api/library/internal/model"
)

func (h *Handler) GetBooks(c echo.Context) error {
	books, err := h.catalogSvc.ListBooks(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	details, err := h.catalogSvc.GetBookDetails(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *Handler) SearchBooks(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	f := model.SearchBooksFilter{
		Query:     c.QueryParam("query"),
		Author:    c.QueryParam("author"),
		Page:      page,
		Size:      size,
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
	if catParam := c.QueryParam("category"); catParam != "" {
		catID, err := uuid.Parse(catParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "category is invalid")
		}
		f.Category = &catID
	}
	if shelfParam := c.QueryParam("bookshelf"); shelfParam != "" {
		shelfID, err := uuid.Parse(shelfParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "bookshelf is invalid")
		}
		f.Bookshelf = &shelfID
	}
	if yearParam := c.QueryParam("publishYear"); yearParam != "" {
		if f.PublishYear, err = strconv.Atoi(yearParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "publishYear is invalid")
		}
	}
	if availParam := c.QueryParam("available"); availParam != "" {
		if f.Available, err = strconv.ParseBool(availParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available is invalid")
		}
	}
	list, err := h.catalogSvc.SearchBooks(c.Request().Context(), f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.catalogSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.catalogSvc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) UpdateBookInventory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.Counters
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	inv, err := h.catalogSvc.AdjustInventory(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *Handler) GetCategories(c echo.Context) error {
	items, err := h.catalogSvc.ListCategories(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	category, err := h.catalogSvc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var req model.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	category, err := h.catalogSvc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *Handler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	category, err := h.catalogSvc.UpdateCategory(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteCategory(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) GetBookshelves(c echo.Context) error {
	items, err := h.catalogSvc.ListBookshelves(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetBookshelf(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	shelf, err := h.catalogSvc.GetBookshelf(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, shelf)
}

func (h *Handler) CreateBookshelf(c echo.Context) error {
	var req model.BookshelfRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	shelf, err := h.catalogSvc.CreateBookshelf(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, shelf)
}

func (h *Handler) UpdateBookshelf(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.BookshelfRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	shelf, err := h.catalogSvc.UpdateBookshelf(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, shelf)
}

func (h *Handler) DeleteBookshelf(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteBookshelf(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) MoveBooks(c echo.Context) error {
	var req model.MoveBooksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	resp, err := h.catalogSvc.MoveBooks(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
