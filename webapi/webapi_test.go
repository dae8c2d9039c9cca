package webapi_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/kongbank/accounts/app"
	"github.com/kongbank/accounts/pkg/config"
	"github.com/kongbank/accounts/webapi"
)

type RateLimitTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *RateLimitTestSuite) SetupTest() {
	cfg := &config.App{
		Env: "test",
		RateLimit: config.RateLimit{
			MaxRequests: 5,
			Window:      time.Minute,
		},
	}
	s.app = webapi.SetupApp(app.New(cfg, slog.Default()))
}

func TestRateLimitTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimitTestSuite))
}

func (s *RateLimitTestSuite) TestRateLimit() {
	for i := range [6]int{} {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, err := s.app.Test(req, -1)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint:errcheck

		if i < 5 {
			s.Equal(fiber.StatusOK, resp.StatusCode, "expected OK for request %d", i+1)
		} else {
			s.Equal(fiber.StatusTooManyRequests, resp.StatusCode, "expected Too Many Requests for request %d", i+1)
		}
	}
}

func (s *RateLimitTestSuite) TestRateLimit_KeyedByForwardedFor() {
	// exhaust the limit for one client
	for range [5]int{} {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		resp, err := s.app.Test(req, -1)
		s.Require().NoError(err)
		resp.Body.Close() //nolint:errcheck
	}

	// a different client is unaffected
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.2")
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
}
