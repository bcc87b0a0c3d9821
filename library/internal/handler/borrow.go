package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openshelf/library-api/library/internal/model"
	"github.com/openshelf/library-api/pkg/auth"
)

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func paging(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	return page, size, nil
}

func (h *Handler) CreateBorrowRequest(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	rec, err := h.borrowSvc.CreateBorrowRequest(ctx, userID, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) CancelBorrowRequest(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.borrowSvc.CancelBorrow(ctx, id, userID); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) GetUserBorrowRequests(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.borrowSvc.UserBorrowRequests(ctx, userID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetBorrowHistory(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	status := model.BorrowStatus(c.QueryParam("status"))
	history, err := h.borrowSvc.UserBorrowHistory(ctx, userID, status, page, size)
	if err != nil {
		return h.httpError(err)
	}
	reviews, err := h.reviewSvc.UserReviews(ctx, userID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"borrowHistory": history,
		"reviews":       reviews,
	})
}

func (h *Handler) GetBorrowRequests(c echo.Context) error {
	ctx := c.Request().Context()
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	f := model.BorrowFilter{
		Status: model.BorrowStatus(c.QueryParam("status")),
		Page:   page,
		Size:   size,
	}
	if userParam := c.QueryParam("userId"); userParam != "" {
		userID, err := uuid.Parse(userParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "userId is invalid")
		}
		f.UserID = &userID
	}
	if bookParam := c.QueryParam("bookId"); bookParam != "" {
		bookID, err := uuid.Parse(bookParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "bookId is invalid")
		}
		f.BookID = &bookID
	}
	if overdueParam := c.QueryParam("isOverdue"); overdueParam != "" {
		if f.IsOverdue, err = strconv.ParseBool(overdueParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "isOverdue is invalid")
		}
	}
	list, err := h.borrowSvc.ListBorrowRecords(ctx, f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) ApproveBorrowRequest(c echo.Context) error {
	ctx := c.Request().Context()
	staffID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	rec, err := h.borrowSvc.ApproveBorrow(ctx, id, staffID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) DeclineBorrowRequest(c echo.Context) error {
	ctx := c.Request().Context()
	staffID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.DeclineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.borrowSvc.DeclineBorrow(ctx, id, staffID, req.Reason); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	ctx := c.Request().Context()
	staffID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	req := model.ReturnRequest{Condition: model.ConditionGood}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	resp, err := h.borrowSvc.ReturnBorrow(ctx, id, staffID, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ExtendBorrowPeriod(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.ExtendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	resp, err := h.borrowSvc.ExtendBorrow(ctx, id, req.Days)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBorrowStatistics(c echo.Context) error {
	ctx := c.Request().Context()
	var f model.StatisticsFilter
	if fromParam := c.QueryParam("fromDate"); fromParam != "" {
		from, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "fromDate is invalid")
		}
		f.FromDate = &from
	}
	if toParam := c.QueryParam("toDate"); toParam != "" {
		to, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "toDate is invalid")
		}
		f.ToDate = &to
	}
	stats, err := h.borrowSvc.BorrowStatistics(ctx, f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
