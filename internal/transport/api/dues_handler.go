package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DuesHandler struct {
	duesSvs  DuesServicer
	orderSvs OrderServicer
}

func NewDuesHandler(duesSvs DuesServicer, orderSvs OrderServicer) *DuesHandler {
	return &DuesHandler{
		duesSvs:  duesSvs,
		orderSvs: orderSvs,
	}
}

type DueCustomerResponse struct {
	ID         int64  `json:"id"`
	CardNumber string `json:"card_number"`
	StbNumber  string `json:"stb_number"`
	Address    string `json:"address"`
}

type DueItemResponse struct {
	OrderID   int64           `json:"order_id"`
	DueAmount decimal.Decimal `json:"due_amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type CustomerDuesResponse struct {
	Customer DueCustomerResponse `json:"customer"`
	Dues     []DueItemResponse   `json:"dues"`
	TotalDue decimal.Decimal     `json:"total_due"`
	DueCount int                 `json:"due_count"`
}

func newCustomerDuesResponse(dues *domain.CustomerDues) CustomerDuesResponse {
	items := make([]DueItemResponse, len(dues.Items))
	for i, item := range dues.Items {
		items[i] = DueItemResponse{
			OrderID:   item.OrderID,
			DueAmount: item.DueAmount,
			Status:    item.Status,
			CreatedAt: item.CreatedAt,
		}
	}
	return CustomerDuesResponse{
		Customer: DueCustomerResponse{
			ID:         dues.Customer.ID,
			CardNumber: dues.Customer.CardNumber,
			StbNumber:  dues.Customer.StbNumber,
			Address:    dues.Customer.Address,
		},
		Dues:     items,
		TotalDue: dues.TotalDue,
		DueCount: dues.Count,
	}
}

// Customer GET CustomerDuesRoute.
func (h *DuesHandler) Customer(c *gin.Context) {
	id, ok := paramID(c, "customer")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dues, err := h.duesSvs.CustomerDues(ctx, id)
	if err != nil {
		abortWithServiceError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, newCustomerDuesResponse(dues))
}

// FieldUser GET FieldUserDuesRoute. No dues is a regular 200 with a message.
func (h *DuesHandler) FieldUser(c *gin.Context) {
	id, ok := paramID(c, "field user")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := h.duesSvs.FieldAgentDues(ctx, id)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
		return
	}

	if len(orders) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No dues found",
			"dues":    []OrderResponse{},
			"count":   0,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"field_user_id": id,
		"dues":          newOrdersResponse(orders),
		"count":         len(orders),
	})
}

// Pending GET PendingOrdersRoute.
func (h *DuesHandler) Pending(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := h.orderSvs.Pending(ctx)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": newOrdersResponse(orders)})
}
