package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/swiftremit/money_transfer_app/internal/middleware"
)

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rate, err := limiter.NewRateFromFormatted("2-M")
	assert.NoError(t, err)
	ipLimiter := limiter.New(memory.NewStore(), rate)

	router := gin.New()
	router.POST("/login", middleware.RateLimit(ipLimiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	doPost := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, doPost())
	assert.Equal(t, http.StatusOK, doPost())
	assert.Equal(t, http.StatusTooManyRequests, doPost())
}

func TestRateLimit_PerClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rate, err := limiter.NewRateFromFormatted("1-M")
	assert.NoError(t, err)
	ipLimiter := limiter.New(memory.NewStore(), rate)

	router := gin.New()
	router.POST("/login", middleware.RateLimit(ipLimiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	doPost := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, doPost("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doPost("10.0.0.1:1234"))
	// A different client is tracked separately.
	assert.Equal(t, http.StatusOK, doPost("10.0.0.2:1234"))
}
