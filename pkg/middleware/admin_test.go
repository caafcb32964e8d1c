package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"parking-booking/pkg/utils"
)

func adminTestHandler(t *testing.T, keyHash string) http.Handler {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return AdminKey(utils.AdminConfig{KeyHash: keyHash}, zap.NewNop())(next)
}

func TestAdminKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name       string
		keyHash    string
		header     string
		wantStatus int
	}{
		{"valid key", string(hash), "s3cret", http.StatusOK},
		{"wrong key", string(hash), "guess", http.StatusForbidden},
		{"missing key", string(hash), "", http.StatusUnauthorized},
		{"unconfigured server rejects everyone", "", "s3cret", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/configs", nil)
			if tt.header != "" {
				req.Header.Set("X-Admin-Key", tt.header)
			}
			rec := httptest.NewRecorder()

			adminTestHandler(t, tt.keyHash).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
