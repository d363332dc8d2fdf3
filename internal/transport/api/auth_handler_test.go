package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/service"
	"github.com/fsdevblog/dues-desk/internal/service/tokens"
	"github.com/fsdevblog/dues-desk/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
)

func (s *HandlersTestSuite) TestSignup() {
	valid := map[string]any{
		"first_name":   gofakeit.FirstName(),
		"last_name":    gofakeit.LastName(),
		"email":        gofakeit.Email(),
		"password":     gofakeit.Password(true, true, true, false, false, 12),
		"user_type_id": 2,
		"mobile_phone": "9876543210",
	}
	withField := func(key string, value any) map[string]any {
		m := make(map[string]any, len(valid))
		for k, v := range valid {
			m[k] = v
		}
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
		return m
	}
	duplicate := withField("email", "taken@example.com")

	s.mockUserService.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{
			FirstName:   valid["first_name"].(string),
			LastName:    valid["last_name"].(string),
			Email:       valid["email"].(string),
			Password:    valid["password"].(string),
			UserTypeID:  2,
			MobilePhone: "9876543210",
		}).
		Return(&domain.User{
			ID:         1,
			Email:      valid["email"].(string),
			FirstName:  valid["first_name"].(string),
			Password:   "hashed",
			UserTypeID: 2,
		}, nil).Times(1)
	s.mockUserService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("registering user: %w", domain.ErrDuplicateKey)).Times(1)

	cases := []struct {
		name       string
		payload    map[string]any
		wantStatus int
		wantError  string
	}{
		{name: "all ok", payload: valid, wantStatus: http.StatusCreated},
		{name: "missing field", payload: withField("last_name", nil), wantStatus: http.StatusBadRequest,
			wantError: "All fields are required"},
		{name: "short mobile", payload: withField("mobile_phone", "98765"), wantStatus: http.StatusBadRequest,
			wantError: "Mobile number must be exactly 10 digits"},
		{name: "invalid email", payload: withField("email", "not-an-email"), wantStatus: http.StatusBadRequest,
			wantError: "email must be a valid email"},
		{name: "password over bcrypt limit", payload: withField("password", testutils.GenerateOverBytesUnderRunes(20)),
			wantStatus: http.StatusBadRequest, wantError: "password must be at most 72 bytes"},
		{name: "duplicate email", payload: duplicate, wantStatus: http.StatusBadRequest,
			wantError: "Email already exists"},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, body := s.request(http.MethodPost, SignupRoute, t.payload)
			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantError != "" {
				s.Equal(t.wantError, body["error"])
				return
			}
			user, ok := body["user"].(map[string]any)
			s.Require().True(ok)
			s.Equal(valid["email"], user["email"])
			s.NotContains(user, "password")
		})
	}
}

func (s *HandlersTestSuite) TestLogin() {
	email := gofakeit.Email()
	user := &domain.User{ID: 3, Email: email, FirstName: gofakeit.FirstName(), UserTypeID: 1}

	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: email, Password: "right password"}).
		Return(user, "jwt-token", nil)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: email, Password: "wrong password"}).
		Return(nil, "", fmt.Errorf("login: %w", domain.ErrPasswordMissMatch))
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: "ghost@example.com", Password: "any password"}).
		Return(nil, "", fmt.Errorf("login: %w", domain.ErrRecordNotFound))
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: "broken@example.com", Password: "any password"}).
		Return(nil, "", errors.New("connection refused"))

	cases := []struct {
		name       string
		email      string
		password   string
		wantStatus int
		wantError  string
	}{
		{name: "all ok", email: email, password: "right password", wantStatus: http.StatusOK},
		{name: "wrong password", email: email, password: "wrong password", wantStatus: http.StatusBadRequest,
			wantError: "Invalid credentials"},
		{name: "unknown email", email: "ghost@example.com", password: "any password",
			wantStatus: http.StatusNotFound, wantError: "User not found"},
		{name: "store failure is not leaked", email: "broken@example.com", password: "any password",
			wantStatus: http.StatusInternalServerError, wantError: "internal server error"},
		{name: "missing password", email: email, wantStatus: http.StatusBadRequest,
			wantError: "password is required"},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, body := s.request(http.MethodPost, LoginRoute, map[string]string{
				"email":    t.email,
				"password": t.password,
			})
			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantError != "" {
				s.Equal(t.wantError, body["error"])
				s.NotContains(body, "token")
				return
			}
			s.Equal("jwt-token", body["token"])
		})
	}
}

func (s *HandlersTestSuite) TestMe() {
	validToken, err := tokens.GenerateUserJWT(tokens.Subject{ID: 5, Email: "me@example.com", UserTypeID: 1},
		time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	goneToken, err := tokens.GenerateUserJWT(tokens.Subject{ID: 6}, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	expiredToken, err := tokens.GenerateUserJWT(tokens.Subject{ID: 5}, -time.Minute, s.jwtSecret)
	s.Require().NoError(err)
	foreignToken, err := tokens.GenerateUserJWT(tokens.Subject{ID: 5}, time.Hour, []byte("another secret"))
	s.Require().NoError(err)

	s.mockUserService.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&domain.User{ID: 5, FirstName: "Asha", LastName: "Rao"}, nil)
	s.mockUserService.EXPECT().GetByID(gomock.Any(), int64(6)).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "all ok", token: validToken, wantStatus: http.StatusOK},
		{name: "user deleted", token: goneToken, wantStatus: http.StatusNotFound},
		{name: "no token", wantStatus: http.StatusUnauthorized},
		{name: "expired token", token: expiredToken, wantStatus: http.StatusUnauthorized},
		{name: "foreign signature", token: foreignToken, wantStatus: http.StatusUnauthorized},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			var opts []func(*testutils.RequestOptions)
			if t.token != "" {
				opts = append(opts, testutils.WithBearer(t.token))
			}
			res, body := s.request(http.MethodGet, MeRoute, nil, opts...)
			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantStatus == http.StatusOK {
				s.Equal("Asha", body["first_name"])
				s.Equal("Rao", body["last_name"])
			}
		})
	}
}
