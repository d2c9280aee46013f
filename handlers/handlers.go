package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/shpjp/quicker-api/dto"
	"github.com/shpjp/quicker-api/monitoring"
	"github.com/shpjp/quicker-api/services"
)

var errInvalidJSON = errors.New("Invalid JSON")

func writeJSON(w http.ResponseWriter, code int, body dto.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

func ok(w http.ResponseWriter, code int, data any, message string) {
	writeJSON(w, code, dto.OK(data, message))
}

// fail translates err into a status code and failed envelope, and counts it
// against op.
func fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	kind := services.KindOf(err)
	code := statusFor(err)
	monitoring.OperationFailures.WithLabelValues(op, kind.String()).Inc()

	entry := logrus.WithFields(logrus.Fields{
		"operation": op,
		"method":    r.Method,
		"path":      r.URL.Path,
		"status":    code,
	}).WithError(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		entry.Error("request failed")
		msg = "Internal server error"
	} else {
		entry.Debug("request rejected")
	}
	writeJSON(w, code, dto.Fail(msg))
}

func statusFor(err error) int {
	if errors.Is(err, errInvalidJSON) {
		return http.StatusBadRequest
	}
	switch services.KindOf(err) {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConflict:
		return http.StatusConflict
	case services.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errInvalidJSON
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(v); err != nil {
		return errInvalidJSON
	}
	return nil
}
