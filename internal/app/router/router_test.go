package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	accounthandler "shop_backend/internal/feature/account/transport/handler"
	"shop_backend/internal/platform/ratelimit"
	"shop_backend/internal/platform/token"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter() *gin.Engine {
	account := accounthandler.NewAccountHandler(nil)
	svc := token.NewService("test-secret")
	return NewRouter(account, token.AuthRequired(svc), ratelimit.Middleware(nil))
}

func TestNewRouter_Healthz(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_LogoutIsPublic(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_GuardedRoutesRequireToken(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/update-profile"},
		{http.MethodDelete, "/api/delete-account"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
