package invoice

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Jeremias-V/Mini-POS/internal/handlerutils"
	"github.com/Jeremias-V/Mini-POS/internal/middlewares"
	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
	"github.com/Jeremias-V/Mini-POS/internal/validate"
	"github.com/go-chi/chi"
)

type servicer interface {
	confirmPurchase(ctx context.Context, userID int64, cashier string) error
	salesReport(ctx context.Context, from, to time.Time) (*ReportData, error)
}

type middleware interface {
	AuthWithContext(h handlerutils.APIHandler) handlerutils.APIHandler
	AdminWithContext(h handlerutils.APIHandler) handlerutils.APIHandler
	ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(invoiceService servicer, middleware middleware) *handler {
	return &handler{
		service:    invoiceService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/confirm",
		h.middleware.ErrorHandler(
			h.middleware.AuthWithContext(
				h.confirmPurchaseHandler,
			),
		),
	)

	// admin routes
	router.Post(
		"/report",
		h.middleware.ErrorHandler(
			h.middleware.AdminWithContext(
				h.salesReportHandler,
			),
		),
	)
}

func (h *handler) confirmPurchaseHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	authUser := middlewares.GetAuthUserFromContext(ctx)

	err := h.service.confirmPurchase(
		ctx,
		authUser.UserID,
		authUser.Username,
	)
	if err != nil {
		if errors.Is(err, servererrors.ErrNoOpenCart) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrNoOpenCart.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"invoice confirmed",
		nil,
	)
}

func (h *handler) salesReportHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *ReportRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	if fieldErrs := validate.StructFields(payload); fieldErrs != nil {
		return servererrors.New(
			http.StatusForbidden,
			servererrors.ErrValidationFailed.Error(),
			fieldErrs,
		)
	}

	from, err := time.ParseInLocation(time.DateOnly, payload.From, time.UTC)
	if err != nil {
		return servererrors.New(
			http.StatusForbidden,
			servererrors.ErrValidationFailed.Error(),
			nil,
		)
	}

	to, err := time.ParseInLocation(time.DateOnly, payload.To, time.UTC)
	if err != nil {
		return servererrors.New(
			http.StatusForbidden,
			servererrors.ErrValidationFailed.Error(),
			nil,
		)
	}

	report, err := h.service.salesReport(ctx, from, to)
	if err != nil {
		if errors.Is(err, servererrors.ErrNoInvoicesInRange) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrNoInvoicesInRange.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusOK,
		ReportResponse{
			Report: report,
		},
	)
}
