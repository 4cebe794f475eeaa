package product

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Jeremias-V/Mini-POS/internal/handlerutils"
	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
	"github.com/Jeremias-V/Mini-POS/internal/validate"
	"github.com/go-chi/chi"
)

type servicer interface {
	createProduct(ctx context.Context, newProduct *CreateProductRequest) error
	addStock(ctx context.Context, payload *AddStockRequest) error
	getAllProducts(ctx context.Context) ([]*ProductAndStockDTO, error)
	deleteProduct(ctx context.Context, productID int64) error
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

func NewHandler(productService servicer, middleware middleware) *handler {
	return &handler{
		service:    productService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/products",
		h.middleware.ErrorHandler(
			h.middleware.AuthWithContext(
				h.getAllProductsHandler,
			),
		),
	)

	// admin routes
	router.Post(
		"/product/create",
		h.middleware.ErrorHandler(
			h.middleware.AdminWithContext(
				h.createProductHandler,
			),
		),
	)

	router.Post(
		"/product/add",
		h.middleware.ErrorHandler(
			h.middleware.AdminWithContext(
				h.addStockHandler,
			),
		),
	)

	router.Delete(
		"/products/{productID}",
		h.middleware.ErrorHandler(
			h.middleware.AdminWithContext(
				h.deleteProductHandler,
			),
		),
	)
}

func (h *handler) createProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *CreateProductRequest
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

	if err := h.service.createProduct(ctx, payload); err != nil {
		switch {
		case errors.Is(err, servererrors.ErrProductAlreadyExists):
			return servererrors.New(
				http.StatusConflict,
				servererrors.ErrProductAlreadyExists.Error(),
				nil,
			)

		case errors.Is(err, servererrors.ErrInvalidPrice),
			errors.Is(err, servererrors.ErrInvalidWeight):
			return servererrors.New(
				http.StatusForbidden,
				err.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"new product created",
		nil,
	)
}

func (h *handler) addStockHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *AddStockRequest
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

	if err := h.service.addStock(ctx, payload); err != nil {
		switch {
		case errors.Is(err, servererrors.ErrProductNotFound),
			errors.Is(err, servererrors.ErrStockNotFound):
			return servererrors.New(
				http.StatusNotFound,
				err.Error(),
				nil,
			)

		case errors.Is(err, servererrors.ErrInvalidQuantity):
			return servererrors.New(
				http.StatusForbidden,
				servererrors.ErrInvalidQuantity.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"stock quantity added",
		nil,
	)
}

func (h *handler) getAllProductsHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	products, err := h.service.getAllProducts(ctx)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusOK,
		ListProductsResponse{
			ListOfProducts: products,
		},
	)
}

func (h *handler) deleteProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	productIDStr := chi.URLParam(r, "productID")

	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil {
		return servererrors.New(
			http.StatusNotFound,
			servererrors.ErrProductNotFound.Error(),
			nil,
		)
	}

	if err := h.service.deleteProduct(ctx, productID); err != nil {
		if errors.Is(err, servererrors.ErrProductNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrProductNotFound.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"product deleted",
		nil,
	)
}
