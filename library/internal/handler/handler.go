package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/pkg/auth"
	md "github.com/openshelf/library-api/pkg/middleware"
	"github.com/openshelf/library-api/pkg/validate"
)

type Handler struct {
	borrowSvc  BorrowService
	fineSvc    FineService
	catalogSvc CatalogService
	reviewSvc  ReviewService
	log        *zap.Logger
}

func New(borrowSvc BorrowService, fineSvc FineService, catalogSvc CatalogService, reviewSvc ReviewService, log *zap.Logger) *Handler {
	return &Handler{
		borrowSvc:  borrowSvc,
		fineSvc:    fineSvc,
		catalogSvc: catalogSvc,
		reviewSvc:  reviewSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log.Named("echo"))),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	// public catalog reads
	api.GET("/books", h.GetBooks)
	api.GET("/books/search", h.SearchBooks)
	api.GET("/books/:id", h.GetBook)
	api.GET("/categories", h.GetCategories)
	api.GET("/categories/:id", h.GetCategory)
	api.GET("/bookshelves", h.GetBookshelves)
	api.GET("/bookshelves/:id", h.GetBookshelf)

	authed := api.Group("", md.JwtAuthentication)

	user := authed.Group("", md.RequireRole(auth.RoleUser))
	user.POST("/books/borrow/request", h.CreateBorrowRequest)
	user.DELETE("/books/borrow/cancel/:id", h.CancelBorrowRequest)
	user.GET("/books/borrow/requests", h.GetUserBorrowRequests)
	user.GET("/books/history/user", h.GetBorrowHistory)
	user.POST("/books/review", h.CreateReview)
	user.PUT("/books/review/:id", h.UpdateReview)
	user.DELETE("/books/review/:id", h.DeleteReview)
	user.GET("/fines/my-fines", h.GetUserFines)

	staff := authed.Group("", md.RequireRole(auth.RoleStaff))
	staff.GET("/borrow-requests", h.GetBorrowRequests)
	staff.GET("/borrow-requests/statistics", h.GetBorrowStatistics)
	staff.POST("/borrow-requests/:id/approve", h.ApproveBorrowRequest)
	staff.POST("/borrow-requests/:id/decline", h.DeclineBorrowRequest)
	staff.POST("/borrow-requests/:id/return", h.ReturnBook)
	staff.POST("/borrow-requests/:id/extend", h.ExtendBorrowPeriod)
	staff.GET("/fines", h.GetFines)
	staff.GET("/fines/:id", h.GetFine)
	staff.POST("/fines", h.CreateFine)
	staff.POST("/fines/:id/pay", h.PayFine)

	admin := authed.Group("", md.RequireRole(auth.RoleAdmin))
	admin.POST("/books", h.CreateBook)
	admin.PUT("/books/:id", h.UpdateBook)
	admin.DELETE("/books/:id", h.DeleteBook)
	admin.PUT("/books/:id/inventory", h.UpdateBookInventory)
	admin.POST("/categories", h.CreateCategory)
	admin.PUT("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)
	admin.POST("/bookshelves", h.CreateBookshelf)
	admin.PUT("/bookshelves/:id", h.UpdateBookshelf)
	admin.DELETE("/bookshelves/:id", h.DeleteBookshelf)
	admin.POST("/bookshelves/move-books", h.MoveBooks)
	admin.DELETE("/fines/:id", h.DeleteFine)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

var conflictErrs = []error{
	errs.ErrNotAvailable,
	errs.ErrDuplicateRequest,
	errs.ErrNotPending,
	errs.ErrNotBorrowed,
	errs.ErrUnpaidFines,
	errs.ErrAlreadyPaid,
	errs.ErrFinePaid,
	errs.ErrAlreadyExists,
	errs.ErrInUse,
	errs.ErrInvalidInventory,
	errs.ErrActiveBorrows,
	errs.ErrNotReturned,
	errs.ErrAlreadyReviewed,
}

// httpError maps the service taxonomy onto status codes; anything outside it
// is an internal error surfaced without detail.
func (h *Handler) httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrPermission):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	for _, conflict := range conflictErrs {
		if errors.Is(err, conflict) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	h.log.Error("internal", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
