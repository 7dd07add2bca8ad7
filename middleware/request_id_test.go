package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_MintsWhenAbsent(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())

	var seen string
	r.GET("/ping", func(ctx *gin.Context) {
		seen = GetRequestID(ctx)
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesInboundHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
