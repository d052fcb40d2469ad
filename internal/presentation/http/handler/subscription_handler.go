package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/senicpos/pos-api/internal/application/service"
	"github.com/senicpos/pos-api/internal/domain/enum"
	"github.com/senicpos/pos-api/internal/presentation/http/dto/request"
	"github.com/senicpos/pos-api/internal/presentation/http/dto/response"
)

// SubscriptionHandler handles subscription-related HTTP requests
type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Create handles subscription creation
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req request.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	plan, err := enum.ParseSubscriptionPlan(req.Plan)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	subscription, err := h.subscriptionService.CreateSubscription(c.Request.Context(), &service.CreateSubscriptionInput{
		TenantID:       req.TenantID,
		TenantName:     req.TenantName,
		Plan:           plan,
		DurationMonths: req.DurationMonths,
		AutoRenew:      req.AutoRenew,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Subscription created successfully", subscription)
}

// GetByTenant handles retrieving a tenant's subscription
func (h *SubscriptionHandler) GetByTenant(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId")
	if !ok {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	subscription, err := h.subscriptionService.GetSubscription(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subscription retrieved successfully", subscription)
}

// Renew handles extending a tenant's subscription by one month
func (h *SubscriptionHandler) Renew(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId")
	if !ok {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	subscription, err := h.subscriptionService.RenewSubscription(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subscription renewed successfully", subscription)
}

// ListExpiring handles listing subscriptions close to their end date
func (h *SubscriptionHandler) ListExpiring(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		response.BadRequest(c, "Invalid days parameter")
		return
	}

	subscriptions, err := h.subscriptionService.ListExpiring(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expiring subscriptions retrieved successfully", subscriptions)
}
