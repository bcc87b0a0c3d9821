package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openshelf/library-api/library/internal/model"
	"github.com/openshelf/library-api/pkg/auth"
)

func (h *Handler) GetFines(c echo.Context) error {
	ctx := c.Request().Context()
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	f := model.FineFilter{
		Reason: model.FineReason(c.QueryParam("reason")),
		Page:   page,
		Size:   size,
	}
	if paidParam := c.QueryParam("paid"); paidParam != "" {
		paid, err := strconv.ParseBool(paidParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "paid is invalid")
		}
		f.Paid = &paid
	}
	if userParam := c.QueryParam("userId"); userParam != "" {
		userID, err := uuid.Parse(userParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "userId is invalid")
		}
		f.UserID = &userID
	}
	list, err := h.fineSvc.ListFines(ctx, f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetFine(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	fine, err := h.fineSvc.GetFine(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) GetUserFines(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var paid *bool
	if paidParam := c.QueryParam("paid"); paidParam != "" {
		p, err := strconv.ParseBool(paidParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "paid is invalid")
		}
		paid = &p
	}
	fines, err := h.fineSvc.UserFines(ctx, userID, paid)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) CreateFine(c echo.Context) error {
	ctx := c.Request().Context()
	staffID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateFineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	fine, err := h.fineSvc.CreateManualFine(ctx, staffID, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, fine)
}

func (h *Handler) PayFine(c echo.Context) error {
	ctx := c.Request().Context()
	staffID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.PayFineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	fine, err := h.fineSvc.MarkFinePaid(ctx, id, staffID, req.Note)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) DeleteFine(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.fineSvc.DeleteFine(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
