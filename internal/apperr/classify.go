package apperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-bloglist/internal/logger"
)

// Response is the JSON body written for every failure.
// swagger:model ErrorResponse
type Response struct {
	// Human-readable message
	// default: Blog not found
	Error string `json:"error"`

	// Machine-checkable category
	// default: not_found
	Code string `json:"code"`

	// Authentication failure detail, only for code auth_failure
	// default: expired
	Reason string `json:"reason,omitempty"`
}

var statusByKind = map[Kind]int{
	KindValidation:       http.StatusBadRequest,
	KindMalformedKey:     http.StatusBadRequest,
	KindAuth:             http.StatusUnauthorized,
	KindForbidden:        http.StatusForbidden,
	KindNotFound:         http.StatusNotFound,
	KindMethodNotAllowed: http.StatusMethodNotAllowed,
}

// Classify maps a failure to its status code and response body.
// Failures outside the taxonomy become a 500 with a generic message.
func Classify(err error) (int, Response) {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, Response{
			Error: "Internal server error",
			Code:  string(KindUnclassified),
		}
	}

	status, ok := statusByKind[e.Kind]
	if !ok {
		return http.StatusInternalServerError, Response{
			Error: "Internal server error",
			Code:  string(KindUnclassified),
		}
	}

	msg := e.Msg
	if msg == "" {
		msg = http.StatusText(status)
	}
	return status, Response{
		Error:  msg,
		Code:   string(e.Kind),
		Reason: string(e.Reason),
	}
}

// Write classifies err and writes the JSON response.
func Write(w http.ResponseWriter, err error) {
	status, resp := Classify(err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "err", err)
	} else {
		logger.Log.Infow("request failed", "status", status, "code", resp.Code, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
