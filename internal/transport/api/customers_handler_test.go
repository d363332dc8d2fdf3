package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/service"
	"github.com/golang/mock/gomock"
)

func (s *HandlersTestSuite) TestCreateCustomer() {
	address := gofakeit.Street()
	installed := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	expires := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	s.mockCustomerService.EXPECT().
		Create(gomock.Any(), service.CreateCustomerArgs{
			Address:            address,
			StbNumber:          "STB-100",
			CardNumber:         "VC-100",
			AreaID:             3,
			SubscriptionStatus: "active",
			InstallationDate:   &installed,
			ExpiryDate:         &expires,
		}).
		Return(&domain.Customer{
			ID:               10,
			Address:          address,
			StbNumber:        "STB-100",
			AreaID:           3,
			InstallationDate: &installed,
			ExpiryDate:       &expires,
		}, nil)
	s.mockCustomerService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("creating customer: %w", domain.ErrForeignKey))

	cases := []struct {
		name       string
		payload    map[string]any
		wantStatus int
		wantError  string
	}{
		{
			name: "all ok",
			payload: map[string]any{
				"address": address, "stb_number": "STB-100", "card_number": "VC-100", "area_id": 3,
				"subscription_status": "active", "installation_date": "2024-01-15", "expiry_date": "2025-01-15",
			},
			wantStatus: http.StatusCreated,
		}, {
			name:       "missing address",
			payload:    map[string]any{"stb_number": "STB-100", "area_id": 3, "subscription_status": "active"},
			wantStatus: http.StatusBadRequest,
			wantError:  "address is required",
		}, {
			name: "bad date",
			payload: map[string]any{
				"address": address, "stb_number": "STB-100", "area_id": 3,
				"subscription_status": "active", "expiry_date": "15/01/2025",
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "expiry_date must be a date in YYYY-MM-DD format",
		}, {
			name: "unknown area",
			payload: map[string]any{
				"address": address, "stb_number": "STB-101", "area_id": 99, "subscription_status": "active",
			},
			wantStatus: http.StatusBadRequest,
			wantError:  domain.ErrForeignKey.Error(),
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, body := s.request(http.MethodPost, CustomersRoute, t.payload)
			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantError != "" {
				s.Equal(t.wantError, body["error"])
				return
			}
			customer, ok := body["customer"].(map[string]any)
			s.Require().True(ok)
			s.Equal("2024-01-15", customer["installation_date"])
		})
	}
}

func (s *HandlersTestSuite) TestShowCustomers() {
	s.mockCustomerService.EXPECT().List(gomock.Any()).
		Return([]domain.Customer{{ID: 1}, {ID: 2}}, nil)
	s.mockCustomerService.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(&domain.Customer{ID: 1, StbNumber: "STB-1"}, nil)
	s.mockCustomerService.EXPECT().GetByID(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	res, body := s.request(http.MethodGet, CustomersRoute, nil)
	s.Equal(http.StatusOK, res.StatusCode)
	s.Len(body["customers"], 2)

	res, body = s.request(http.MethodGet, "/customers/1", nil)
	s.Equal(http.StatusOK, res.StatusCode)
	s.Equal("STB-1", body["customer"].(map[string]any)["stb_number"])

	res, body = s.request(http.MethodGet, "/customers/404", nil)
	s.Equal(http.StatusNotFound, res.StatusCode)
	s.Equal("Customer not found", body["error"])

	res, _ = s.request(http.MethodGet, "/customers/abc", nil)
	s.Equal(http.StatusBadRequest, res.StatusCode)
}
