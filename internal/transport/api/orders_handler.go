package api

import (
	"bytes"
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// orderRequiredFields in the order they are reported to clients.
var orderRequiredFields = []string{
	"customer_id",
	"product_id",
	"payment_method_id",
	"status",
	"paid_amount",
	"due_amount",
	"portal_recharge_status",
}

// orderUpdatableFields keys accepted by Update. orderIgnoredFields are accepted and dropped.
var (
	orderUpdatableFields = []string{
		"status",
		"paid_amount",
		"due_amount",
		"comments",
		"portal_recharge_status",
		"payment_method_id",
		"product_id",
		"recharge_by_id",
	}
	orderIgnoredFields = []string{"id", "created_at", "updated_at"}
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

// OrderCreateParams pointers tell an absent field from a zero value.
type OrderCreateParams struct {
	CustomerID           *int64              `json:"customer_id"`
	ProductID            *int64              `json:"product_id"`
	PaymentMethodID      *int64              `json:"payment_method_id"`
	RechargeByID         *int64              `json:"recharge_by_id"`
	Status               *domain.OrderStatus `json:"status"`
	PaidAmount           *decimal.Decimal    `json:"paid_amount"`
	DueAmount            *decimal.Decimal    `json:"due_amount"`
	Comments             *string             `binding:"omitempty,max_bytes=2000" json:"comments"`
	PortalRechargeStatus *int16              `json:"portal_recharge_status"`
}

func (p *OrderCreateParams) missingFields() []string {
	present := map[string]bool{
		"customer_id":            p.CustomerID != nil,
		"product_id":             p.ProductID != nil,
		"payment_method_id":      p.PaymentMethodID != nil,
		"status":                 p.Status != nil,
		"paid_amount":            p.PaidAmount != nil,
		"due_amount":             p.DueAmount != nil,
		"portal_recharge_status": p.PortalRechargeStatus != nil,
	}
	var missing []string
	for _, field := range orderRequiredFields {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	return missing
}

type OrderResponse struct {
	ID                   int64              `json:"id"`
	CustomerID           int64              `json:"customer_id"`
	ProductID            int64              `json:"product_id"`
	PaymentMethodID      int64              `json:"payment_method_id"`
	RechargeByID         *int64             `json:"recharge_by_id"`
	Status               domain.OrderStatus `json:"status"`
	PaymentState         string             `json:"payment_state"`
	PaidAmount           decimal.Decimal    `json:"paid_amount"`
	DueAmount            decimal.Decimal    `json:"due_amount"`
	Comments             string             `json:"comments"`
	PortalRechargeStatus int16              `json:"portal_recharge_status"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:                   order.ID,
		CustomerID:           order.CustomerID,
		ProductID:            order.ProductID,
		PaymentMethodID:      order.PaymentMethodID,
		RechargeByID:         order.RechargeByID,
		Status:               order.Status,
		PaymentState:         string(order.Status.PaymentState()),
		PaidAmount:           order.PaidAmount,
		DueAmount:            order.DueAmount,
		Comments:             order.Comments,
		PortalRechargeStatus: order.PortalRechargeStatus,
		CreatedAt:            order.CreatedAt,
		UpdatedAt:            order.UpdatedAt,
	}
}

func newOrdersResponse(orders []domain.Order) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i])
	}
	return response
}

// Create POST OrdersRoute.
func (o *OrdersHandler) Create(c *gin.Context) {
	var params OrderCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortBadRequest(c, bindErrorMessage(bindErr))
		return
	}

	if missing := params.missingFields(); len(missing) > 0 {
		missingErr := &domain.MissingFieldsError{Required: orderRequiredFields, Missing: missing}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":           "Missing required fields",
			"required_fields": missingErr.Required,
			"missing_fields":  missingErr.Missing,
		})
		_ = c.Error(missingErr).SetType(gin.ErrorTypePublic)
		return
	}

	args := service.CreateOrderArgs{
		CustomerID:           *params.CustomerID,
		ProductID:            *params.ProductID,
		PaymentMethodID:      *params.PaymentMethodID,
		RechargeByID:         params.RechargeByID,
		Status:               *params.Status,
		PaidAmount:           *params.PaidAmount,
		DueAmount:            *params.DueAmount,
		PortalRechargeStatus: *params.PortalRechargeStatus,
	}
	if params.Comments != nil {
		args.Comments = *params.Comments
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Create(reqCtx, args)
	if err != nil {
		abortWithServiceError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order created", "order": newOrderResponse(order)})
}

// Index GET OrdersRoute.
func (o *OrdersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.List(reqCtx)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": newOrdersResponse(orders)})
}

// Show GET OrderRoute.
func (o *OrdersHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "order")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.GetByID(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": newOrderResponse(order)})
}

// Update PUT OrderRoute. Only the whitelisted fields may be changed.
func (o *OrdersHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "order")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
		return
	}

	args, parseErr := parseOrderUpdate(body)
	if parseErr != nil {
		abortWithServiceError(c, parseErr, "")
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, updErr := o.orderSvs.Update(reqCtx, id, args)
	if updErr != nil {
		abortWithServiceError(c, updErr, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated", "order": newOrderResponse(order)})
}

// parseOrderUpdate decodes a partial update. Keys outside the whitelist and null values are rejected by name.
func parseOrderUpdate(body []byte) (service.UpdateOrderArgs, error) {
	var args service.UpdateOrderArgs

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return args, domain.NewValidationError("request body must be a JSON object")
	}

	targets := map[string]any{
		"status":                 &args.Status,
		"paid_amount":            &args.PaidAmount,
		"due_amount":             &args.DueAmount,
		"comments":               &args.Comments,
		"portal_recharge_status": &args.PortalRechargeStatus,
		"payment_method_id":      &args.PaymentMethodID,
		"product_id":             &args.ProductID,
		"recharge_by_id":         &args.RechargeByID,
	}

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		if slices.Contains(orderIgnoredFields, key) {
			continue
		}
		target, allowed := targets[key]
		if !allowed {
			return args, domain.NewValidationError(
				"field %q cannot be updated, allowed fields: %s", key, strings.Join(orderUpdatableFields, ", "),
			)
		}
		if bytes.Equal(bytes.TrimSpace(fields[key]), []byte("null")) {
			return args, domain.NewValidationError("%s cannot be null", key)
		}
		if err := json.Unmarshal(fields[key], target); err != nil {
			return args, domain.NewValidationError("invalid value for %s", key)
		}
	}
	return args, nil
}

// Delete DELETE OrderRoute.
func (o *OrdersHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "order")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := o.orderSvs.Delete(reqCtx, id); err != nil {
		abortWithServiceError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
