package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openshelf/library-api/library/internal/errs"
	"github.com/openshelf/library-api/library/internal/handler"
	"github.com/openshelf/library-api/library/internal/model"
	"github.com/openshelf/library-api/pkg/auth"
	"github.com/openshelf/library-api/pkg/validate"

	service_mocks "github.com/openshelf/library-api/library/internal/handler/mocks"
)

var (
	testUserID  = uuid.MustParse("0b3f7b5a-9f2e-4c1d-8a6b-2f4e9d1c3a57")
	testStaffID = uuid.MustParse("7c1d2e3f-4a5b-6c7d-8e9f-0a1b2c3d4e5f")
	testBookID  = uuid.MustParse("f7cdc58f-2caf-4b15-9727-f89dcc629b27")
	testRecID   = uuid.MustParse("83575e12-7ce0-48ee-9931-51919ff3c9ee")
	testFineID  = uuid.MustParse("5d3a1b2c-6e7f-4a8b-9c0d-1e2f3a4b5c6d")
)

// withProfile stands in for the jwt middleware so handlers see an
// authenticated request.
func withProfile(p auth.Profile) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.SetAuthContext(c.Request().Context(), p)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func newTestHandler(borrow handler.BorrowService, fine handler.FineService, catalog handler.CatalogService, review handler.ReviewService) *handler.Handler {
	return handler.New(borrow, fine, catalog, review, zap.NewExample().Named("test"))
}

func TestHandler_SearchBooks(t *testing.T) {
	t.Parallel()
	type input struct {
		query string
		page  string
		size  string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCatalogService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCatalogService, inp input) {
				r.EXPECT().
					SearchBooks(gomock.Any(), model.SearchBooksFilter{Query: inp.query, Page: 1, Size: 10}).
					Return(model.ListBooks{
						Paging: model.Paging{Page: 1, PageSize: 10, TotalElements: 0},
					}, nil)
			},
			input: input{query: "clean code", page: "1", size: "10"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":0,"items":null}`,
			},
		},
		{
			name:         "err. page invalid",
			mockBehavior: func(r *service_mocks.MockCatalogService, inp input) {},
			input:        input{query: "go", page: "abc", size: "10"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"page is invalid"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockCatalogService, inp input) {
				r.EXPECT().
					SearchBooks(gomock.Any(), gomock.Any()).
					Return(model.ListBooks{}, errors.New("db internal"))
			},
			input: input{query: "go", page: "1", size: "10"},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"internal server error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			catalogSvc := service_mocks.NewMockCatalogService(c)
			h := newTestHandler(nil, nil, catalogSvc, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/books/search", h.SearchBooks)

			r := httptest.NewRequest(http.MethodGet,
				fmt.Sprintf("/books/search?query=%s&page=%s&size=%s",
					strings.ReplaceAll(tt.input.query, " ", "+"), tt.input.page, tt.input.size), http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(catalogSvc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateBorrowRequest(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowService)

	requestedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	dueDate := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: fmt.Sprintf(`{"bookId":%q}`, testBookID),
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CreateBorrowRequest(gomock.Any(), testUserID, model.CreateBorrowRequest{BookID: testBookID}).
					Return(model.BorrowRecord{
						ID:          testRecID,
						UserID:      testUserID,
						BookID:      testBookID,
						Status:      model.StatusPending,
						RequestedAt: requestedAt,
						DueDate:     dueDate,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: fmt.Sprintf(`{"id":%q,"userId":%q,"bookId":%q,"status":"pending","isReadOnSite":false,"requestedAt":"2024-03-01T10:00:00Z","dueDate":"2024-03-15T10:00:00Z","borrowDate":null,"returnDate":null,"processedBy":null,"fineId":null,"notes":""}`,
					testRecID, testUserID, testBookID),
			},
		},
		{
			name: "err. not available",
			body: fmt.Sprintf(`{"bookId":%q}`, testBookID),
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CreateBorrowRequest(gomock.Any(), testUserID, gomock.Any()).
					Return(model.BorrowRecord{}, errs.ErrNotAvailable)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"book is not available for borrowing"}`,
			},
		},
		{
			name: "err. duplicate request",
			body: fmt.Sprintf(`{"bookId":%q}`, testBookID),
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CreateBorrowRequest(gomock.Any(), testUserID, gomock.Any()).
					Return(model.BorrowRecord{}, errs.ErrDuplicateRequest)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"pending or active borrow request already exists for this book"}`,
			},
		},
		{
			name:         "err. bookId required",
			body:         `{}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			borrowSvc := service_mocks.NewMockBorrowService(c)
			h := newTestHandler(borrowSvc, nil, nil, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/books/borrow/request", h.CreateBorrowRequest,
				withProfile(auth.Profile{UserID: testUserID, Username: "reader", Role: auth.RoleUser}))

			r := httptest.NewRequest(http.MethodPost, "/books/borrow/request", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(borrowSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ApproveBorrowRequest(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowService)

	requestedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	dueDate := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	borrowDate := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   testRecID.String(),
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ApproveBorrow(gomock.Any(), testRecID, testStaffID).
					Return(model.BorrowRecord{
						ID:          testRecID,
						UserID:      testUserID,
						BookID:      testBookID,
						Status:      model.StatusBorrowed,
						RequestedAt: requestedAt,
						DueDate:     dueDate,
						BorrowDate:  &borrowDate,
						ProcessedBy: &testStaffID,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: fmt.Sprintf(`{"id":%q,"userId":%q,"bookId":%q,"status":"borrowed","isReadOnSite":false,"requestedAt":"2024-03-01T10:00:00Z","dueDate":"2024-03-15T10:00:00Z","borrowDate":"2024-03-02T09:00:00Z","returnDate":null,"processedBy":%q,"fineId":null,"notes":""}`,
					testRecID, testUserID, testBookID, testStaffID),
			},
		},
		{
			name: "err. not pending",
			id:   testRecID.String(),
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ApproveBorrow(gomock.Any(), testRecID, testStaffID).
					Return(model.BorrowRecord{}, errs.ErrNotPending)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"only pending requests can be processed"}`,
			},
		},
		{
			name: "err. no copies left",
			id:   testRecID.String(),
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ApproveBorrow(gomock.Any(), testRecID, testStaffID).
					Return(model.BorrowRecord{}, errs.ErrNotAvailable)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"book is not available for borrowing"}`,
			},
		},
		{
			name: "err. not found",
			id:   testRecID.String(),
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ApproveBorrow(gomock.Any(), testRecID, testStaffID).
					Return(model.BorrowRecord{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. invalid id",
			id:           "not-a-uuid",
			mockBehavior: func(r *service_mocks.MockBorrowService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid id"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			borrowSvc := service_mocks.NewMockBorrowService(c)
			h := newTestHandler(borrowSvc, nil, nil, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/borrow-requests/:id/approve", h.ApproveBorrowRequest,
				withProfile(auth.Profile{UserID: testStaffID, Username: "librarian", Role: auth.RoleStaff}))

			r := httptest.NewRequest(http.MethodPost, "/borrow-requests/"+tt.id+"/approve", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(borrowSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_PayFine(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockFineService)

	createdAt := time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC)
	paidAt := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"note":"paid in cash"}`,
			mockBehavior: func(r *service_mocks.MockFineService) {
				r.EXPECT().
					MarkFinePaid(gomock.Any(), testFineID, testStaffID, "paid in cash").
					Return(model.Fine{
						ID:          testFineID,
						UserID:      testUserID,
						Reason:      model.ReasonOverdue,
						Amount:      decimal.NewFromInt(15000),
						Paid:        true,
						PaidAt:      &paidAt,
						ProcessedBy: &testStaffID,
						Note:        "paid in cash",
						CreatedAt:   createdAt,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: fmt.Sprintf(`{"id":%q,"userId":%q,"borrowRecordId":null,"reason":"overdue","amount":"15000","paid":true,"paidAt":"2024-03-20T10:00:00Z","processedBy":%q,"note":"paid in cash","createdAt":"2024-03-18T10:00:00Z"}`,
					testFineID, testUserID, testStaffID),
			},
		},
		{
			name: "err. already paid",
			body: `{}`,
			mockBehavior: func(r *service_mocks.MockFineService) {
				r.EXPECT().
					MarkFinePaid(gomock.Any(), testFineID, testStaffID, "").
					Return(model.Fine{}, errs.ErrAlreadyPaid)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"fine is already paid"}`,
			},
		},
		{
			name: "err. not found",
			body: `{}`,
			mockBehavior: func(r *service_mocks.MockFineService) {
				r.EXPECT().
					MarkFinePaid(gomock.Any(), testFineID, testStaffID, "").
					Return(model.Fine{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			fineSvc := service_mocks.NewMockFineService(c)
			h := newTestHandler(nil, fineSvc, nil, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/fines/:id/pay", h.PayFine,
				withProfile(auth.Profile{UserID: testStaffID, Username: "librarian", Role: auth.RoleStaff}))

			r := httptest.NewRequest(http.MethodPost, "/fines/"+testFineID.String()+"/pay", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(fineSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteFine(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockFineService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. unpaid fine is removed even when a record references it",
			mockBehavior: func(r *service_mocks.MockFineService) {
				r.EXPECT().DeleteFine(gomock.Any(), testFineID).Return(nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: ``},
		},
		{
			name: "err. paid fine",
			mockBehavior: func(r *service_mocks.MockFineService) {
				r.EXPECT().DeleteFine(gomock.Any(), testFineID).Return(errs.ErrFinePaid)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"cannot delete a paid fine"}`,
			},
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockFineService) {
				r.EXPECT().DeleteFine(gomock.Any(), testFineID).Return(errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			fineSvc := service_mocks.NewMockFineService(c)
			h := newTestHandler(nil, fineSvc, nil, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/fines/:id", h.DeleteFine,
				withProfile(auth.Profile{UserID: testStaffID, Username: "admin", Role: auth.RoleAdmin}))

			r := httptest.NewRequest(http.MethodDelete, "/fines/"+testFineID.String(), http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(fineSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CancelBorrowRequest(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CancelBorrow(gomock.Any(), testRecID, testUserID).
					Return(nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: ``},
		},
		{
			name: "err. someone else's request",
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CancelBorrow(gomock.Any(), testRecID, testUserID).
					Return(errs.ErrPermission)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"no permission"}`,
			},
		},
		{
			name: "err. already approved",
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CancelBorrow(gomock.Any(), testRecID, testUserID).
					Return(errs.ErrNotPending)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"only pending requests can be processed"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			borrowSvc := service_mocks.NewMockBorrowService(c)
			h := newTestHandler(borrowSvc, nil, nil, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/books/borrow/cancel/:id", h.CancelBorrowRequest,
				withProfile(auth.Profile{UserID: testUserID, Username: "reader", Role: auth.RoleUser}))

			r := httptest.NewRequest(http.MethodDelete, "/books/borrow/cancel/"+testRecID.String(), http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(borrowSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
