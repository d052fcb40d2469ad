package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/senicpos/pos-api/internal/application/service"
	"github.com/senicpos/pos-api/internal/presentation/http/dto/request"
	"github.com/senicpos/pos-api/internal/presentation/http/dto/response"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Create handles inventory item creation
func (h *InventoryHandler) Create(c *gin.Context) {
	var req request.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &service.CreateInventoryItemInput{
		TenantID:     req.TenantID,
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Barcode:      req.Barcode,
		Price:        req.Price,
		Cost:         req.Cost,
		Quantity:     req.Quantity,
		MinimumStock: req.MinimumStock,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory item created successfully", item)
}

// Get handles retrieving a single inventory item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item retrieved successfully", item)
}

// GetByBarcode handles barcode lookups for scanner-driven sales
func (h *InventoryHandler) GetByBarcode(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId")
	if !ok {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	barcode := c.Param("barcode")
	if barcode == "" {
		response.BadRequest(c, "Barcode is required")
		return
	}

	item, err := h.inventoryService.GetItemByBarcode(c.Request.Context(), tenantID, barcode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item retrieved successfully", item)
}

// ListByTenant handles listing a tenant's active inventory
func (h *InventoryHandler) ListByTenant(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId")
	if !ok {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	result, err := h.inventoryService.ListItems(c.Request.Context(), tenantID, paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Inventory items retrieved successfully", result)
}

// ListLowStock handles listing items at or below their minimum stock
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId")
	if !ok {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	items, err := h.inventoryService.ListLowStock(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// Update handles partial inventory item updates
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	var req request.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), id, &service.UpdateInventoryItemInput{
		Name:         req.Name,
		Description:  req.Description,
		Barcode:      req.Barcode,
		Price:        req.Price,
		Cost:         req.Cost,
		Quantity:     req.Quantity,
		MinimumStock: req.MinimumStock,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item updated successfully", item)
}

// Delete handles permanent inventory item removal
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
