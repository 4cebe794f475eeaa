package handlerutils

import (
	"errors"
	"log"
	"net/http"

	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
)

// MakeHandler adapts an APIHandler into a http.HandlerFunc, converting any
// returned error into the JSON error envelope. Errors that are not a
// *servererrors.ServerError are hidden behind a generic 500 message.
func MakeHandler(h APIHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			log.Println(err)

			var serverError *servererrors.ServerError
			if errors.As(err, &serverError) {
				WriteErrorJSON(
					w,
					serverError.StatusCode,
					serverError.Error(),
					serverError.Errors,
				)
				return
			}

			WriteErrorJSON(
				w,
				http.StatusInternalServerError,
				"something went wrong",
				nil,
			)
		}
	}
}
