package cart

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Jeremias-V/Mini-POS/internal/handlerutils"
	"github.com/Jeremias-V/Mini-POS/internal/middlewares"
	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
	"github.com/go-chi/chi"
)

type servicer interface {
	scanProduct(ctx context.Context, userID int64, productID int64) error
	viewCart(ctx context.Context, userID int64) ([]*CartProductDTO, error)
}

type middleware interface {
	AuthWithContext(h handlerutils.APIHandler) handlerutils.APIHandler
	ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(cartService servicer, middleware middleware) *handler {
	return &handler{
		service:    cartService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/add/{productID}",
		h.middleware.ErrorHandler(
			h.middleware.AuthWithContext(
				h.scanProductHandler,
			),
		),
	)

	router.Get(
		"/invoice",
		h.middleware.ErrorHandler(
			h.middleware.AuthWithContext(
				h.viewCartHandler,
			),
		),
	)
}

func (h *handler) scanProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	authUser := middlewares.GetAuthUserFromContext(ctx)

	productIDStr := chi.URLParam(r, "productID")

	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil {
		return servererrors.New(
			http.StatusNotFound,
			servererrors.ErrProductNotFound.Error(),
			nil,
		)
	}

	if err := h.service.scanProduct(ctx, authUser.UserID, productID); err != nil {
		switch {
		case errors.Is(err, servererrors.ErrProductNotFound),
			errors.Is(err, servererrors.ErrStockNotFound):
			return servererrors.New(
				http.StatusNotFound,
				err.Error(),
				nil,
			)

		case errors.Is(err, servererrors.ErrOutOfStock):
			return servererrors.New(
				http.StatusConflict,
				servererrors.ErrOutOfStock.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"product added to your invoice",
		nil,
	)
}

func (h *handler) viewCartHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	authUser := middlewares.GetAuthUserFromContext(ctx)

	entries, err := h.service.viewCart(ctx, authUser.UserID)
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

	return handlerutils.WriteJSON(
		w,
		http.StatusOK,
		CurrentInvoiceResponse{
			Cashier:        authUser.Username,
			ListOfProducts: entries,
		},
	)
}
