package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/stretchr/testify/assert"
)

func TestConsumer_Handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		status     int
		wantCalled bool
		wantDone   bool
	}{
		{
			name:       "success: invalidates and acks",
			body:       `{"user_id":42,"role":"CLIENT"}`,
			status:     http.StatusOK,
			wantCalled: true,
			wantDone:   true,
		},
		{
			name:       "requeue on server error",
			body:       `{"user_id":42,"role":"CLIENT"}`,
			status:     http.StatusInternalServerError,
			wantCalled: true,
			wantDone:   false,
		},
		{
			name:       "requeue on rejected key",
			body:       `{"user_id":42}`,
			status:     http.StatusUnauthorized,
			wantCalled: true,
			wantDone:   false,
		},
		{
			name:     "drop undecodable body",
			body:     `not json`,
			wantDone: true,
		},
		{
			name:     "drop missing user",
			body:     `{"role":"ADMIN"}`,
			wantDone: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var called atomic.Bool
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called.Store(true)
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/internal/v1/users/42/role-cache/invalidate", r.URL.Path)
				assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := &Consumer{apiURL: srv.URL, apiKey: "secret-key", client: &http.Client{Timeout: time.Second}}
			assert.Equal(t, tt.wantDone, c.handle(context.Background(), []byte(tt.body)))
			assert.Equal(t, tt.wantCalled, called.Load())
		})
	}
}

func TestSavedSearchEvent_RoutingKey(t *testing.T) {
	e := SavedSearchEvent{Action: SavedSearchDeleted, Entity: constant.EntityMessages}
	assert.Equal(t, "saved_search.deleted", e.RoutingKey())
}
