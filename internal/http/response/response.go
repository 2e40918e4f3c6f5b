package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"placecell/internal/common"
)

// ErrorCodeHeader carries the coded error class on error responses so the
// metrics middleware can count them without shared state.
const ErrorCodeHeader = "X-Error-Code"

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

func Error(w http.ResponseWriter, err error) {
	code := common.CodeInternal
	message := "internal error"
	var fields map[string]string
	var coded *common.Error
	if errors.As(err, &coded) {
		code = coded.Code
		message = coded.Message
		fields = coded.Fields
	}
	w.Header().Set(ErrorCodeHeader, string(code))
	JSON(w, statusFor(code), errorBody{Error: errorDetail{Code: string(code), Message: message, Fields: fields}})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
