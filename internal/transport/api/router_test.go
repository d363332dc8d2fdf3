package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/fsdevblog/dues-desk/internal/logger"
	"github.com/fsdevblog/dues-desk/internal/transport/api/middlewares"
	"github.com/fsdevblog/dues-desk/internal/transport/api/mocks"
	"github.com/fsdevblog/dues-desk/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockUserService     *mocks.MockUserServicer
	mockCustomerService *mocks.MockCustomerServicer
	mockOrderService    *mocks.MockOrderServicer
	mockDuesService     *mocks.MockDuesServicer
	jwtSecret           []byte
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.mockCustomerService = mocks.NewMockCustomerServicer(mockCtrl)
	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.mockDuesService = mocks.NewMockDuesServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, err := New(RouterArgs{
		Logger:          logger.New(os.Stdout),
		UserService:     s.mockUserService,
		CustomerService: s.mockCustomerService,
		OrderService:    s.mockOrderService,
		DuesService:     s.mockDuesService,
		JWTSecretKey:    s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router
}

// request sends payload as JSON (raw when it is a string) and decodes a JSON object response.
func (s *HandlersTestSuite) request(
	method, url string,
	payload any,
	opts ...func(*testutils.RequestOptions),
) (*http.Response, map[string]any) {
	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(p)
	default:
		raw, err := json.Marshal(p)
		s.Require().NoError(err)
		body = bytes.NewReader(raw)
	}

	opts = append(opts, testutils.WithHeader("Content-Type", "application/json"))
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   body,
	}, opts...)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	var decoded map[string]any
	if res.ContentLength != 0 {
		_ = testutils.DecodeBody(res, &decoded)
	}
	return res, decoded
}

func (s *HandlersTestSuite) TestRequestIDAndCORS() {
	s.mockOrderService.EXPECT().Pending(gomock.Any()).Return(nil, nil).Times(2)

	res, _ := s.request(http.MethodGet, PendingOrdersRoute, nil)
	s.Equal(http.StatusOK, res.StatusCode)
	s.NotEmpty(res.Header.Get(middlewares.RequestIDHeader))

	res, _ = s.request(http.MethodGet, PendingOrdersRoute, nil,
		testutils.WithHeader(middlewares.RequestIDHeader, "req-42"),
		testutils.WithHeader("Origin", "http://portal.example.com"),
	)
	s.Equal("req-42", res.Header.Get(middlewares.RequestIDHeader))
	s.Equal("*", res.Header.Get("Access-Control-Allow-Origin"))
}
