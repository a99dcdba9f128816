package actor

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Headers set by the gateway after authenticating the caller.
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserAdmin = "X-User-Admin"
)

// ErrInvalidHeader is returned when an identity header cannot be parsed.
var ErrInvalidHeader = errors.New("invalid identity header")

type actorCtxKey struct{}

// FromContext retrieves the caller stored by the middleware.
func FromContext(ctx context.Context) (types.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(types.Actor)
	return actor, ok
}

// WithActor returns a context carrying the caller.
func WithActor(ctx context.Context, actor types.Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

// Middleware resolves the caller from the gateway headers.
type Middleware struct {
	logger *zap.Logger
}

// New creates a new actor middleware.
func New(logger *zap.Logger) *Middleware {
	return &Middleware{
		logger: logger.Named("actor_middleware"),
	}
}

// AsRESTMiddleware returns a bunrouter middleware storing the caller in the request context.
// Requests without a user id pass through anonymously.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		actor, ok, err := parse(req.Header)
		if err != nil {
			m.logger.Debug("Rejected identity headers",
				zap.String("addr", req.RemoteAddr),
				zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}

		if !ok {
			return next(w, req)
		}

		return next(w, req.WithContext(WithActor(req.Context(), actor)))
	}
}

// parse reads the caller from the headers. ok is false when no user id was sent.
func parse(headers http.Header) (actor types.Actor, ok bool, err error) {
	rawID := headers.Get(HeaderUserID)
	if rawID == "" {
		return types.Actor{}, false, nil
	}

	userID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || userID == 0 {
		return types.Actor{}, false, ErrInvalidHeader
	}

	var isAdmin bool
	if rawAdmin := headers.Get(HeaderUserAdmin); rawAdmin != "" {
		isAdmin, err = strconv.ParseBool(rawAdmin)
		if err != nil {
			return types.Actor{}, false, ErrInvalidHeader
		}
	}

	return types.Actor{UserID: userID, IsAdmin: isAdmin}, true, nil
}
