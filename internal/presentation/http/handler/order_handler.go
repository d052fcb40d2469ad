package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/senicpos/pos-api/internal/application/service"
	"github.com/senicpos/pos-api/internal/domain/enum"
	"github.com/senicpos/pos-api/internal/presentation/http/dto/request"
	"github.com/senicpos/pos-api/internal/presentation/http/dto/response"
	"github.com/senicpos/pos-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	printerService *service.PrinterService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, printerService *service.PrinterService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		printerService: printerService,
	}
}

// Create handles order creation
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	paymentMethod, err := enum.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.CreateOrderInput{
		TenantID:       req.TenantID,
		CustomerID:     req.CustomerID,
		PaymentMethod:  paymentMethod,
		DiscountAmount: req.DiscountAmount,
		Notes:          req.Notes,
		Items:          make([]service.OrderLineInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderLineInput{
			InventoryItemID: item.InventoryItemID,
			Quantity:        item.Quantity,
			Discount:        item.Discount,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", response.NewOrderResponse(order))
}

// Get handles retrieving a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", response.NewOrderResponse(order))
}

// ListByTenant handles listing a tenant's orders, newest first
func (h *OrderHandler) ListByTenant(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId")
	if !ok {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	params := paginationFromQuery(c)
	result, err := h.orderService.ListOrders(c.Request.Context(), tenantID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	mapped := pagination.NewPaginatedResult(
		response.NewOrderListResponse(result.Items), result.Pagination)
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", mapped)
}

// Cancel handles order cancellation with stock restoration
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", response.NewOrderResponse(order))
}

// PrintReceipt handles printing an order receipt. The composed receipt is
// always returned in the body; a print failure is reported as an error
// while still allowing clients to render it.
func (h *OrderHandler) PrintReceipt(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	receipt, err := h.printerService.PrintOrderReceipt(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			response.Success(c, 200, "Receipt composed but printing failed", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", receipt)
}
