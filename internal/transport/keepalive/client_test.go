package keepalive

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestPing() {
	cases := []struct {
		name           string
		httpStatus     int
		retryAfter     string
		wantErrType    error
		wantRetryAfter time.Duration
	}{
		{name: "ok", httpStatus: http.StatusOK},
		{name: "redirect is not a failure", httpStatus: http.StatusNotModified},
		{name: "not found", httpStatus: http.StatusNotFound, wantErrType: new(StatusCodeError)},
		{name: "server error", httpStatus: http.StatusBadGateway, wantErrType: new(StatusCodeError)},
		{
			name:           "throttled",
			httpStatus:     http.StatusTooManyRequests,
			retryAfter:     "5",
			wantErrType:    new(TooManyRequestError),
			wantRetryAfter: 5 * time.Second,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				s.Equal(http.MethodGet, r.Method)
				if t.retryAfter != "" {
					w.Header().Set("Retry-After", t.retryAfter)
				}
				w.WriteHeader(t.httpStatus)
			}))
			defer server.Close()

			status, err := NewHTTPClient(server.URL).Ping(s.T().Context())
			s.Equal(t.httpStatus, status)
			if t.wantErrType == nil {
				s.Require().NoError(err)
				return
			}
			s.Require().IsType(t.wantErrType, err)
			var tooMany *TooManyRequestError
			if errors.As(err, &tooMany) {
				s.Equal(t.wantRetryAfter, tooMany.RetryAfter)
			}
		})
	}
}

func (s *ClientTestSuite) TestPingUnreachable() {
	_, err := NewHTTPClient("http://127.0.0.1:1/health").Ping(s.T().Context())
	s.Require().Error(err)
}

func (s *ClientTestSuite) TestParseRetryAfter() {
	cases := map[string]time.Duration{
		"1":    time.Second,
		"120":  120 * time.Second,
		"30":   30 * time.Second,
		"":     60 * time.Second,
		"soon": 60 * time.Second,
		"0":    60 * time.Second,
		"121":  60 * time.Second,
	}
	for value, want := range cases {
		s.Equal(want, parseRetryAfter(value), "Retry-After %q", value)
	}
}
