package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/service"
	"github.com/gin-gonic/gin"
)

const dateLayout = time.DateOnly

type CustomersHandler struct {
	customerSvs CustomerServicer
}

func NewCustomersHandler(customerSvs CustomerServicer) *CustomersHandler {
	return &CustomersHandler{
		customerSvs: customerSvs,
	}
}

type CustomerCreateParams struct {
	UserID             *int64  `json:"user_id"`
	Address            string  `binding:"required,max_bytes=500" json:"address"`
	StbNumber          string  `binding:"required,max_bytes=50"  json:"stb_number"`
	CardNumber         string  `binding:"max_bytes=50"           json:"card_number"`
	OldCardNumber      string  `binding:"max_bytes=50"           json:"old_card_number"`
	OldStbNumber       string  `binding:"max_bytes=50"           json:"old_stb_number"`
	AreaID             int64   `binding:"required"               json:"area_id"`
	SubscriptionStatus string  `binding:"required,max_bytes=30"  json:"subscription_status"`
	InstallationDate   *string `json:"installation_date"`
	ExpiryDate         *string `json:"expiry_date"`
}

type CustomerResponse struct {
	ID                 int64     `json:"id"`
	UserID             *int64    `json:"user_id"`
	Address            string    `json:"address"`
	StbNumber          string    `json:"stb_number"`
	CardNumber         string    `json:"card_number"`
	OldCardNumber      string    `json:"old_card_number"`
	OldStbNumber       string    `json:"old_stb_number"`
	AreaID             int64     `json:"area_id"`
	SubscriptionStatus string    `json:"subscription_status"`
	InstallationDate   *string   `json:"installation_date"`
	ExpiryDate         *string   `json:"expiry_date"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func newCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                 customer.ID,
		UserID:             customer.UserID,
		Address:            customer.Address,
		StbNumber:          customer.StbNumber,
		CardNumber:         customer.CardNumber,
		OldCardNumber:      customer.OldCardNumber,
		OldStbNumber:       customer.OldStbNumber,
		AreaID:             customer.AreaID,
		SubscriptionStatus: customer.SubscriptionStatus,
		InstallationDate:   formatDate(customer.InstallationDate),
		ExpiryDate:         formatDate(customer.ExpiryDate),
		CreatedAt:          customer.CreatedAt,
		UpdatedAt:          customer.UpdatedAt,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil //nolint:nilnil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, domain.NewValidationError("%s must be a date in YYYY-MM-DD format", field)
	}
	return &t, nil
}

// Create POST CustomersRoute.
func (h *CustomersHandler) Create(c *gin.Context) {
	var params CustomerCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortBadRequest(c, bindErrorMessage(bindErr))
		return
	}

	installation, dateErr := parseDate("installation_date", params.InstallationDate)
	if dateErr != nil {
		abortWithServiceError(c, dateErr, "")
		return
	}
	expiry, dateErr := parseDate("expiry_date", params.ExpiryDate)
	if dateErr != nil {
		abortWithServiceError(c, dateErr, "")
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerSvs.Create(ctx, service.CreateCustomerArgs{
		UserID:             params.UserID,
		Address:            params.Address,
		StbNumber:          params.StbNumber,
		CardNumber:         params.CardNumber,
		OldCardNumber:      params.OldCardNumber,
		OldStbNumber:       params.OldStbNumber,
		AreaID:             params.AreaID,
		SubscriptionStatus: params.SubscriptionStatus,
		InstallationDate:   installation,
		ExpiryDate:         expiry,
	})
	if err != nil {
		abortWithServiceError(c, err, "Customer not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Customer created", "customer": newCustomerResponse(customer)})
}

// Index GET CustomersRoute.
func (h *CustomersHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customers, err := h.customerSvs.List(ctx)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
		return
	}

	response := make([]CustomerResponse, len(customers))
	for i := range customers {
		response[i] = newCustomerResponse(&customers[i])
	}
	c.JSON(http.StatusOK, gin.H{"customers": response})
}

// Show GET CustomerRoute.
func (h *CustomersHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "customer")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerSvs.GetByID(ctx, id)
	if err != nil {
		abortWithServiceError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": newCustomerResponse(customer)})
}
