package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/smarthome-protocol/smarthome-go/pkg/service"
)

func hashToken(t *testing.T, token string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthorized(t *testing.T) {
	hash := hashToken(t, "secret-token")

	tests := []struct {
		name   string
		header string
		hashes []string
		want   bool
	}{
		{"no hashes configured", "", nil, true},
		{"valid token", "Bearer secret-token", []string{hash}, true},
		{"wrong token", "Bearer wrong", []string{hash}, false},
		{"missing header", "", []string{hash}, false},
		{"not bearer", "Basic secret-token", []string{hash}, false},
		{"empty token", "Bearer ", []string{hash}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/fulfillment", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, authorized(r, tt.hashes))
		})
	}
}

func TestRequireAuthRejects(t *testing.T) {
	hash := hashToken(t, "secret-token")
	handler := requireAuth([]string{hash}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/fulfillment", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/fulfillment", nil)
	r.Header.Set("Authorization", "Bearer secret-token")
	handler(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleFulfillment(t *testing.T) {
	svc := service.New("agent-1")
	svc.AddDevice(buildDevice(DeviceEntry{ID: "lamp-1", Kind: DeviceKindLamp, Name: "Desk Lamp"}))

	handler := handleFulfillment(svc)

	body := `{"requestId": "r1", "inputs": [{"intent": "action.devices.SYNC"}]}`
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/fulfillment", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"agentUserId":"agent-1"`)
	assert.Contains(t, w.Body.String(), `"id":"lamp-1"`)
}

func TestHandleFulfillmentBadRequest(t *testing.T) {
	svc := service.New("agent-1")
	handler := handleFulfillment(svc)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/fulfillment", strings.NewReader(`{"requestId"`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/fulfillment", strings.NewReader(`{"requestId": "r1", "inputs": []}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
