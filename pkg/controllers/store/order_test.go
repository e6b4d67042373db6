package store

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NadirSa01/zelije-backend/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateOrderSnapshotsProductPrice(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	product := seedProduct(t, db, 24.5)

	payload := map[string]interface{}{
		"fullName":  "Amina Berrada",
		"telephone": "0661234567",
		"address":   "12 Rue des Consuls",
		"city":      "Rabat",
		"lines": []map[string]interface{}{
			{
				"productId":       product.ID,
				"productDetailId": product.Details[0].ID,
				"quantity":        3,
			},
		},
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/order", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var line models.OrderLine
	assert.NoError(t, db.First(&line).Error)
	assert.Equal(t, 24.5, line.Price)
	assert.Equal(t, 3, line.Quantity)

	// Changing the catalog price later must not touch the snapshot
	assert.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).Update("price", 99.0).Error)

	var reloaded models.OrderLine
	assert.NoError(t, db.First(&reloaded, line.ID).Error)
	assert.Equal(t, 24.5, reloaded.Price)
}

func TestCreateOrderStartsPending(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	product := seedProduct(t, db, 12)

	payload := map[string]interface{}{
		"fullName":  "Karim El Fassi",
		"telephone": "0677654321",
		"address":   "5 Avenue Hassan II",
		"city":      "Fès",
		"lines": []map[string]interface{}{
			{
				"productId":       product.ID,
				"productDetailId": product.Details[0].ID,
				"quantity":        1,
			},
		},
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/order", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, db.Preload("Client").First(&order).Error)
	assert.Equal(t, models.OrderStatePending, order.State)
	assert.Equal(t, "Karim El Fassi", order.Client.FullName)
}

func TestCreateOrderUnknownProductLeavesNoRows(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	payload := map[string]interface{}{
		"fullName":  "Sara Alaoui",
		"telephone": "0650000000",
		"address":   "3 Derb Omar",
		"city":      "Casablanca",
		"lines": []map[string]interface{}{
			{
				"productId":       9999,
				"productDetailId": 1,
				"quantity":        2,
			},
		},
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/order", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	// The whole transaction must roll back, no orphan client or order
	var clientCount, orderCount, lineCount int64
	db.Model(&models.Client{}).Count(&clientCount)
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderLine{}).Count(&lineCount)
	assert.Equal(t, int64(0), clientCount)
	assert.Equal(t, int64(0), orderCount)
	assert.Equal(t, int64(0), lineCount)
}

func TestCreateOrderRequiresLines(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	payload := map[string]interface{}{
		"fullName":  "Sara Alaoui",
		"telephone": "0650000000",
		"address":   "3 Derb Omar",
		"city":      "Casablanca",
		"lines":     []map[string]interface{}{},
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/order", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
