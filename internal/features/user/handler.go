package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Jeremias-V/Mini-POS/internal/handlerutils"
	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
	"github.com/Jeremias-V/Mini-POS/internal/validate"
	"github.com/go-chi/chi"
)

type servicer interface {
	registerUser(ctx context.Context, newUser *RegisterUserRequest) error
	loginUser(ctx context.Context, username, password string) (string, error)
}

type handler struct {
	service servicer
}

func NewHandler(userService servicer) *handler {
	return &handler{
		service: userService,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Post(
		"/register",
		handlerutils.MakeHandler(
			h.registerUserHandler,
		),
	)

	router.Post(
		"/login",
		handlerutils.MakeHandler(
			h.loginUserHandler,
		),
	)
}

func (h *handler) registerUserHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *RegisterUserRequest
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

	if err := h.service.registerUser(ctx, payload); err != nil {
		switch {
		case errors.Is(err, servererrors.ErrUserAlreadyExists):
			return servererrors.New(
				http.StatusConflict,
				servererrors.ErrUserAlreadyExists.Error(),
				nil,
			)

		case errors.Is(err, servererrors.ErrWrongAdminKey):
			return servererrors.New(
				http.StatusForbidden,
				servererrors.ErrWrongAdminKey.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"registered successfully",
		nil,
	)
}

func (h *handler) loginUserHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	username, password, ok := r.BasicAuth()
	if !ok || username == "" || password == "" {
		return servererrors.New(
			http.StatusUnauthorized,
			servererrors.ErrCouldNotVerify.Error(),
			nil,
		)
	}

	token, err := h.service.loginUser(ctx, username, password)
	if err != nil {
		if errors.Is(err, servererrors.ErrCouldNotVerify) {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrCouldNotVerify.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusOK,
		LoginResponse{
			Token: token,
		},
	)
}
