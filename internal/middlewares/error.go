package middlewares

import (
	"errors"
	"log"
	"net/http"

	"github.com/Jeremias-V/Mini-POS/internal/handlerutils"
	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
)

// ErrorHandler is a middleware that takes a handler that returns an error
// and returns a HandlerFunc to create centralized error handling and logging.
func (mw *middleware) ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			log.Println(err)

			var serverError *servererrors.ServerError
			if errors.As(err, &serverError) {
				handlerutils.WriteErrorJSON(
					w,
					serverError.StatusCode,
					serverError.Error(),
					serverError.Errors,
				)
				return
			}

			handlerutils.WriteErrorJSON(
				w,
				http.StatusInternalServerError,
				"something went wrong",
				nil,
			)
		}
	}
}
