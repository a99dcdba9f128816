package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/rest/middleware/actor"
	restTypes "github.com/team-Roy/prototype-sub000/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// ErrUnauthenticated is returned when an endpoint needs a caller and none was resolved.
var ErrUnauthenticated = errors.New("missing caller identity")

// StatusFor maps an engine error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, types.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return sonic.ConfigDefault.NewEncoder(w).Encode(v)
}

// writeError answers with the status of err. Unexpected errors are logged and hidden.
func writeError(w http.ResponseWriter, req bunrouter.Request, logger *zap.Logger, err error) error {
	status := StatusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("method", req.Method),
			zap.String("route", req.Route()),
			zap.Error(err))
		message = "Internal server error"
	}

	return writeJSON(w, status, restTypes.ErrorResponse{Code: status, Message: message})
}

// decodeBody reads a JSON request body into v.
func decodeBody(req bunrouter.Request, v any) error {
	if err := sonic.ConfigDefault.NewDecoder(req.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %w", types.ErrValidation, err)
	}
	return nil
}

// requireActor returns the caller resolved by the actor middleware.
func requireActor(req bunrouter.Request) (types.Actor, error) {
	caller, ok := actor.FromContext(req.Context())
	if !ok {
		return types.Actor{}, ErrUnauthenticated
	}
	return caller, nil
}

// requireAdmin returns the caller when it is an admin.
func requireAdmin(req bunrouter.Request) (types.Actor, error) {
	caller, err := requireActor(req)
	if err != nil {
		return types.Actor{}, err
	}
	if !caller.IsAdmin {
		return types.Actor{}, fmt.Errorf("%w: admin role required", types.ErrForbidden)
	}
	return caller, nil
}

// callerID returns the caller's user id when one was resolved.
func callerID(req bunrouter.Request) *uint64 {
	caller, ok := actor.FromContext(req.Context())
	if !ok {
		return nil
	}
	return &caller.UserID
}

// pathID parses a positive numeric route parameter.
func pathID(req bunrouter.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(req.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid %s", types.ErrValidation, name)
	}
	return id, nil
}

// queryID parses an optional positive numeric query parameter.
func queryID(req bunrouter.Request, name string) (*uint64, error) {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("%w: invalid %s", types.ErrValidation, name)
	}
	return &id, nil
}

// queryInt parses an optional integer query parameter, returning 0 when absent.
func queryInt(req bunrouter.Request, name string) (int, error) {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", types.ErrValidation, name)
	}
	return value, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(req bunrouter.Request, name string) (bool, error) {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: invalid %s", types.ErrValidation, name)
	}
	return value, nil
}
