package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MuTeLu-App/internal/domain/model"
)

func TestGoogleDirectionsProvider_GetWalkingRoute(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"origin":      q.Get("origin"),
			"destination": q.Get("destination"),
			"mode":        q.Get("mode"),
			"language":    q.Get("language"),
			"key":         q.Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"routes": [{
				"legs": [{"duration": {"value": 240}, "distance": {"value": 310}}],
				"overview_polyline": {"points": "a~l~Fjk~uOwHJy@P"}
			}]
		}`))
	}))
	defer server.Close()

	provider := NewGoogleDirectionsProvider("test-key").WithBaseURL(server.URL)
	route, err := provider.GetWalkingRoute(context.Background(),
		model.LatLng{Lat: 13.74434, Lng: 100.54033},
		model.LatLng{Lat: 13.74665, Lng: 100.53925},
	)
	require.NoError(t, err)

	assert.Equal(t, 240, route.DurationSeconds)
	assert.Equal(t, 310, route.DistanceMeters)
	assert.Equal(t, "a~l~Fjk~uOwHJy@P", route.Polyline)

	assert.Equal(t, "13.744340,100.540330", gotQuery["origin"])
	assert.Equal(t, "13.746650,100.539250", gotQuery["destination"])
	assert.Equal(t, "walking", gotQuery["mode"])
	assert.Equal(t, "th", gotQuery["language"])
	assert.Equal(t, "test-key", gotQuery["key"])
}

func TestGoogleDirectionsProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"HTTPエラー", http.StatusInternalServerError, `{}`},
		{"APIステータスエラー", http.StatusOK, `{"status": "REQUEST_DENIED", "error_message": "invalid key", "routes": []}`},
		{"ルートなし", http.StatusOK, `{"status": "OK", "routes": []}`},
		{"不正なJSON", http.StatusOK, `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			provider := NewGoogleDirectionsProvider("test-key").WithBaseURL(server.URL)
			_, err := provider.GetWalkingRoute(context.Background(), model.LatLng{}, model.LatLng{Lat: 1, Lng: 1})
			assert.Error(t, err)
		})
	}
}
