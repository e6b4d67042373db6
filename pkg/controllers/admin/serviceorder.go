package admin

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"

	"github.com/gin-gonic/gin"
)

// ServiceOrderView is the flattened read model: the raw clientId/serviceId
// foreign keys are dropped in favor of the embedded records
type ServiceOrderView struct {
	ID          int               `json:"id"`
	Description string            `json:"description"`
	State       models.OrderState `json:"state"`
	Price       float64           `json:"price"`
	CreatedAt   time.Time         `json:"createdAt"`
	Client      models.Client     `json:"client"`
	Service     models.Service    `json:"service"`
}

func toServiceOrderView(so models.ServiceOrder) ServiceOrderView {
	return ServiceOrderView{
		ID:          so.ID,
		Description: so.Description,
		State:       so.State,
		Price:       so.Price,
		CreatedAt:   so.CreatedAt,
		Client:      so.Client,
		Service:     so.Service,
	}
}

// GetServiceOrders returns all service orders newest-first with client and
// service embedded
func GetServiceOrders(c *gin.Context) {
	var serviceOrders []models.ServiceOrder
	if err := database.DB.
		Preload("Client").
		Preload("Service").
		Order(`"createdAt" DESC`).
		Find(&serviceOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch service orders"})
		return
	}

	views := make([]ServiceOrderView, 0, len(serviceOrders))
	for _, so := range serviceOrders {
		views = append(views, toServiceOrderView(so))
	}

	c.JSON(http.StatusOK, views)
}

// GetServiceOrder returns one flattened service order, 404 if absent
func GetServiceOrder(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("orderId"))

	var serviceOrder models.ServiceOrder
	if err := database.DB.
		Preload("Client").
		Preload("Service").
		First(&serviceOrder, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service order not found"})
		return
	}

	c.JSON(http.StatusOK, toServiceOrderView(serviceOrder))
}

// UpdateServiceOrderPrice sets the negotiated price. The field is bound as a
// pointer so a legitimate price of 0 is accepted; negative values are rejected.
func UpdateServiceOrderPrice(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("orderId"))

	var req struct {
		NewPrice *float64 `json:"newPrice" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "newPrice is required"})
		return
	}
	if *req.NewPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "newPrice must not be negative"})
		return
	}

	var serviceOrder models.ServiceOrder
	if err := database.DB.First(&serviceOrder, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service order not found"})
		return
	}

	if err := database.DB.Model(&serviceOrder).Update("price", *req.NewPrice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update price"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Price updated successfully",
		"serviceOrder": serviceOrder,
	})
}

// UpdateServiceOrderState moves a service order through the shared state
// machine, rejecting illegal transitions.
func UpdateServiceOrderState(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("orderId"))

	var req struct {
		NewState models.OrderState `json:"newState" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "newState is required"})
		return
	}

	if !models.IsValidOrderState(req.NewState) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown state: " + string(req.NewState)})
		return
	}

	var serviceOrder models.ServiceOrder
	if err := database.DB.First(&serviceOrder, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service order not found"})
		return
	}

	if !models.CanTransition(serviceOrder.State, req.NewState) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("Illegal state transition from %s to %s", serviceOrder.State, req.NewState),
		})
		return
	}

	if err := database.DB.Model(&serviceOrder).Update("state", req.NewState).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "State updated successfully",
		"serviceOrder": serviceOrder,
	})
}

// FullUpdateServiceOrder merges the provided fields into the record, leaving
// absent fields untouched. Only state, price and description belong to the
// schema; anything else in the payload is ignored.
func FullUpdateServiceOrder(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("orderId"))

	var req struct {
		State       *models.OrderState `json:"state"`
		Price       *float64           `json:"price"`
		Description *string            `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	if req.State != nil && !models.IsValidOrderState(*req.State) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown state: " + string(*req.State)})
		return
	}

	var serviceOrder models.ServiceOrder
	if err := database.DB.First(&serviceOrder, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service order not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&serviceOrder).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update service order"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Service order updated successfully",
		"serviceOrder": serviceOrder,
	})
}

// DeleteServiceOrder removes one service order, 404 if absent
func DeleteServiceOrder(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("orderId"))

	var serviceOrder models.ServiceOrder
	if err := database.DB.First(&serviceOrder, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service order not found"})
		return
	}

	if err := database.DB.Delete(&serviceOrder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete service order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service order deleted successfully"})
}
