package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"network/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewGinEngine(&Handlers{
		Auth:   &handler.Auth{},
		Feed:   &handler.Feed{},
		Post:   &handler.Post{},
		Like:   &handler.Like{},
		Follow: &handler.Follow{},
	})
}

func TestNewGinEngine_Fallbacks(t *testing.T) {
	r := newTestEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found."}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/follow", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed."}`, w.Body.String())
}

func TestNewGinEngine_Metrics(t *testing.T) {
	r := newTestEngine()

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "network_http_requests_total")
}

func TestServerID(t *testing.T) {
	assert.Regexp(t, `:8080$`, serverID(8080))
}
