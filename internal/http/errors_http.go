package httpx

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "github.com/dataetica/dataetica-api/internal/errors"
)

// WriteAppError translates an application error into the JSON error
// contract. Unrecognized errors become an opaque 500 so internals never
// leak to clients.
func WriteAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)

	switch code {
	case apperrors.ErrCodeValidation:
		writeAppErrorResponse(w, http.StatusBadRequest, err)
	case apperrors.ErrCodeUnauthenticated:
		writeAppErrorResponse(w, http.StatusUnauthorized, err)
	case apperrors.ErrCodeForbidden:
		writeAppErrorResponse(w, http.StatusForbidden, err)
	case apperrors.ErrCodeNotFound:
		writeAppErrorResponse(w, http.StatusNotFound, err)
	case apperrors.ErrCodeConflict, apperrors.ErrCodeForeignKey:
		writeAppErrorResponse(w, http.StatusConflict, err)
	case apperrors.ErrCodeRateLimited:
		writeRateLimited(w, err)
	case apperrors.ErrCodeTimeout:
		writeAppErrorResponse(w, http.StatusGatewayTimeout, err)
	default:
		WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "An internal error occurred.",
			"code":  string(apperrors.ErrCodeInternal),
		})
	}
}

func writeAppErrorResponse(w http.ResponseWriter, status int, err error) {
	body := map[string]any{
		"error": errMessage(err),
		"code":  string(apperrors.GetCode(err)),
	}
	if field := apperrors.GetField(err); field != "" {
		body["field"] = field
	}
	WriteJSON(w, status, body)
}

func writeRateLimited(w http.ResponseWriter, err error) {
	retryAfter := 1
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.RetryAfterSeconds > 0 {
		retryAfter = appErr.RetryAfterSeconds
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	WriteJSON(w, http.StatusTooManyRequests, map[string]any{
		"error":      errMessage(err),
		"code":       string(apperrors.ErrCodeRateLimited),
		"retryAfter": retryAfter,
	})
}

func errMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
