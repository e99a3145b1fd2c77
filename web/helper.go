package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/svalinn/radialbuild/errors"
)

type contextKeyType string

const contextQueryKey contextKeyType = "query"

// fileResponse is written as raw body instead of JSON.
type fileResponse struct {
	contentType string
	body        []byte
}

func withQuery(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, contextQueryKey, r.URL.Query())
}

func extractQuery(ctx context.Context) url.Values {
	query, ok := ctx.Value(contextQueryKey).(url.Values)
	if !ok {
		log.Error("[ASSERT] Missing query in context")
		return url.Values{}
	}
	return query
}

func extractQueryString(ctx context.Context, name, fallback string) string {
	value := extractQuery(ctx).Get(name)
	if value == "" {
		return fallback
	}
	return value
}

func extractQueryFloat(ctx context.Context, name string) (float64, error) {
	value := extractQuery(ctx).Get(name)
	if value == "" {
		return 0, errors.FormError{"reason": errors.ErrInvalidForm.Error(), name: "query parameter is required"}
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.FormError{"reason": errors.ErrInvalidForm.Error(), name: fmt.Sprintf("%q is not a number", value)}
	}
	return parsed, nil
}

func extractQueryBool(ctx context.Context, name string) bool {
	value, err := strconv.ParseBool(extractQuery(ctx).Get(name))
	return err == nil && value
}

func writeJSONResponse(w http.ResponseWriter, httpStatus int, body interface{}) error {
	marshaled, marshalingErr := json.Marshal(body)
	if marshalingErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return marshalingErr
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, writeErr := w.Write(marshaled)
	return writeErr
}

func writeFileResponse(w http.ResponseWriter, file *fileResponse) error {
	w.Header().Set("Content-Type", file.contentType)
	w.WriteHeader(http.StatusOK)
	_, writeErr := w.Write(file.body)
	return writeErr
}

func handleRequestErr(w http.ResponseWriter, err error) {
	if formErr, ok := err.(errors.FormError); ok {
		_ = writeJSONResponse(w, http.StatusBadRequest, formErr)
		return
	}

	status := http.StatusInternalServerError
	switch err {
	case errors.ErrMalformed:
		status = http.StatusBadRequest
	case errors.ErrNotFound:
		status = http.StatusNotFound
	case errors.ErrNotImplemented:
		status = http.StatusNotImplemented
	case errors.ErrInternalServerError:
	default:
		log.Errorf("request failed: %s", err.Error())
		err = errors.ErrInternalServerError
	}
	_ = writeJSONResponse(w, status, err.Error())
}
