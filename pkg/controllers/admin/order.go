package admin

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderLineView is the denormalized per-line read model returned by GetOrder
type OrderLineView struct {
	ID              int                  `json:"id"`
	ProductID       int                  `json:"productId"`
	ProductDetailID int                  `json:"productDetailId"`
	Quantity        int                  `json:"quantity"`
	Price           float64              `json:"price"`
	ProductName     models.LocalizedText `json:"productName"`
	Picture         string               `json:"picture"`
	ColorName       models.LocalizedText `json:"colorName"`
	ColorCode       string               `json:"colorCode"`
}

// OrderDetailView is the joined single-order read model
type OrderDetailView struct {
	ID           int               `json:"id"`
	State        models.OrderState `json:"state"`
	Price        *float64          `json:"price"`
	Installation *bool             `json:"installation"`
	CreatedAt    time.Time         `json:"createdAt"`
	Client       models.Client     `json:"client"`
	Lines        []OrderLineView   `json:"lines"`
}

// GetOrders returns all orders newest-first with their client and lines
func GetOrders(c *gin.Context) {
	var orders []models.Order
	if err := database.DB.
		Preload("Client").
		Preload("Lines").
		Order(`"createdAt" DESC`).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder returns one order joined with its client, and each line joined
// with its product and product detail
func GetOrder(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("orderId"))

	var order models.Order
	if err := database.DB.Preload("Client").First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	var lines []models.OrderLine
	if err := database.DB.
		Preload("Product").
		Preload("ProductDetail").
		Where(`"orderId" = ?`, orderID).
		Find(&lines).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order lines"})
		return
	}

	view := OrderDetailView{
		ID:           order.ID,
		State:        order.State,
		Price:        order.Price,
		Installation: order.Installation,
		CreatedAt:    order.CreatedAt,
		Client:       order.Client,
		Lines:        make([]OrderLineView, 0, len(lines)),
	}

	for _, line := range lines {
		view.Lines = append(view.Lines, OrderLineView{
			ID:              line.ID,
			ProductID:       line.ProductID,
			ProductDetailID: line.ProductDetailID,
			Quantity:        line.Quantity,
			Price:           line.Price,
			ProductName:     line.Product.Name,
			Picture:         line.ProductDetail.Picture,
			ColorName:       line.ProductDetail.ColorName,
			ColorCode:       line.ProductDetail.ColorCode,
		})
	}

	c.JSON(http.StatusOK, view)
}

// UpdateOrderState moves an order through the state machine. Illegal
// transitions (e.g. COMPLETED back to PENDING) are rejected.
func UpdateOrderState(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("orderId"))

	var req struct {
		State models.OrderState `json:"state" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "state is required"})
		return
	}

	if !models.IsValidOrderState(req.State) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown state: " + string(req.State)})
		return
	}

	var order models.Order
	if err := database.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	if !models.CanTransition(order.State, req.State) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("Illegal state transition from %s to %s", order.State, req.State),
		})
		return
	}

	if err := database.DB.Model(&order).Update("state", req.State).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order state"})
		return
	}

	// Reload with client for the response
	if err := database.DB.Preload("Client").First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load updated order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order state updated successfully",
		"order":   order,
	})
}

// UpdateOrderQuantity overwrites one line's quantity in place. No stock
// re-check and no price recompute; concurrent writes are last-write-wins.
func UpdateOrderQuantity(c *gin.Context) {
	orderLineID, _ := strconv.Atoi(c.Param("orderLineId"))

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "quantity is required"})
		return
	}

	var line models.OrderLine
	if err := database.DB.First(&line, orderLineID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order line not found"})
		return
	}

	if err := database.DB.Model(&line).Update("quantity", *req.Quantity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update quantity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Quantity updated successfully",
		"orderLine": line,
	})
}

// FullUpdateOrder replaces an order wholesale: scalar fields fall back to
// their existing values when absent from the payload, and the line set is
// deleted and re-inserted from the replacement list (destructive replace,
// not a diff/merge).
func FullUpdateOrder(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("orderId"))

	var req struct {
		ClientID     *int               `json:"clientId"`
		State        *models.OrderState `json:"state"`
		Price        *float64           `json:"price"`
		Installation *bool              `json:"installation"`
		Lines        []struct {
			ProductID       int     `json:"productId" binding:"required"`
			ProductDetailID int     `json:"productDetailId" binding:"required"`
			Quantity        int     `json:"quantity" binding:"required"`
			Price           float64 `json:"price"`
		} `json:"lines"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	if req.State != nil && !models.IsValidOrderState(*req.State) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown state: " + string(*req.State)})
		return
	}

	var order models.Order
	if err := database.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.ClientID != nil {
			updates["clientId"] = *req.ClientID
		}
		if req.State != nil {
			updates["state"] = *req.State
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Installation != nil {
			updates["installation"] = *req.Installation
		}
		if len(updates) > 0 {
			if err := tx.Model(&order).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Lines != nil {
			if err := tx.Where(`"orderId" = ?`, orderID).Delete(&models.OrderLine{}).Error; err != nil {
				return err
			}
			for _, line := range req.Lines {
				replacement := models.OrderLine{
					OrderID:         orderID,
					ProductID:       line.ProductID,
					ProductDetailID: line.ProductDetailID,
					Quantity:        line.Quantity,
					Price:           line.Price,
				}
				if err := tx.Create(&replacement).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
		return
	}

	if err := database.DB.Preload("Client").Preload("Lines").First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load updated order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"order":   order,
	})
}

// DeleteOrder removes an order and all of its lines. There is no state
// check: completed orders can be deleted too.
func DeleteOrder(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("orderId"))

	var order models.Order
	if err := database.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(`"orderId" = ?`, orderID).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
