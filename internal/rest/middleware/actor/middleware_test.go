package actor_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/rest/middleware/actor"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		userID     string
		admin      string
		wantStatus int
		wantActor  *types.Actor
	}{
		{"anonymous", "", "", http.StatusOK, nil},
		{"member", "42", "", http.StatusOK, &types.Actor{UserID: 42}},
		{"admin", "7", "true", http.StatusOK, &types.Actor{UserID: 7, IsAdmin: true}},
		{"not a number", "abc", "", http.StatusBadRequest, nil},
		{"zero id", "0", "", http.StatusBadRequest, nil},
		{"bad admin flag", "7", "maybe", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				got    types.Actor
				gotOK  bool
				called bool
			)

			router := bunrouter.New()
			router.Use(actor.New(zap.NewNop()).AsRESTMiddleware).GET("/", func(w http.ResponseWriter, req bunrouter.Request) error {
				called = true
				got, gotOK = actor.FromContext(req.Context())
				w.WriteHeader(http.StatusOK)
				return nil
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userID != "" {
				req.Header.Set(actor.HeaderUserID, tt.userID)
			}
			if tt.admin != "" {
				req.Header.Set(actor.HeaderUserAdmin, tt.admin)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.False(t, called)
				return
			}

			require.True(t, called)
			if tt.wantActor == nil {
				assert.False(t, gotOK)
				return
			}

			require.True(t, gotOK)
			assert.Equal(t, *tt.wantActor, got)
		})
	}
}
