package admin

import (
	"net/http"
	"sort"
	"time"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"
	"github.com/NadirSa01/zelije-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"
const minuteLayout = "2006-01-02 15:04"

// ChartBucket is one time-series entry keyed by a minute or day label
type ChartBucket struct {
	Label string `json:"_id"`
	Count int64  `json:"count"`
}

// parseDateRange resolves the startDate/endDate path params into an inclusive
// [midnight, 23:59:59.999] window. Missing params default to today.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	startParam := c.Param("startDate")
	endParam := c.Param("endDate")

	now := time.Now()
	if startParam == "" && endParam == "" {
		return utils.BeginningOfDay(now), utils.EndOfDay(now), true
	}

	start, err := time.ParseInLocation(dateLayout, startParam, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid startDate: expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation(dateLayout, endParam, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid endDate: expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "endDate must not be before startDate"})
		return time.Time{}, time.Time{}, false
	}
	// The daily series zero-fills every day in the range, cap it to a year
	if utils.DaysBetween(start, end) > 365 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date range must not exceed one year"})
		return time.Time{}, time.Time{}, false
	}

	return utils.BeginningOfDay(start), utils.EndOfDay(end), true
}

// GetIncomeInRange sums completed income over the window. Product income
// filters OrderLines by their OWN createdAt while requiring the parent
// Order to be COMPLETED - a line added to an old order inside the window
// counts towards that window.
func GetIncomeInRange(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	var productIncome float64
	if err := database.DB.Table("OrderLine").
		Select(`COALESCE(SUM("OrderLine".price * "OrderLine".quantity), 0)`).
		Joins(`JOIN "Order" ON "Order".id = "OrderLine"."orderId"`).
		Where(`"OrderLine"."createdAt" >= ? AND "OrderLine"."createdAt" <= ? AND "Order".state = ?`,
			start, end, models.OrderStateCompleted).
		Scan(&productIncome).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute product income"})
		return
	}

	var serviceIncome float64
	if err := database.DB.Model(&models.ServiceOrder{}).
		Select(`COALESCE(SUM(price), 0)`).
		Where(`"createdAt" >= ? AND "createdAt" <= ? AND state = ?`,
			start, end, models.OrderStateCompleted).
		Scan(&serviceIncome).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute service income"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dateRange": gin.H{
			"startDate": start.Format(dateLayout),
			"endDate":   end.Format(dateLayout),
		},
		"productIncome": productIncome,
		"serviceIncome": serviceIncome,
	})
}

// GetOrdersChart returns the orders and service-orders time series. A range
// that resolves to exactly today is bucketed by minute; any other range is
// bucketed by day and zero-filled so every calendar day appears.
func GetOrdersChart(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	now := time.Now()
	isToday := start.Equal(utils.BeginningOfDay(now)) && end.Equal(utils.EndOfDay(now))

	orderTimes, err := createdAtInRange(&models.Order{}, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	serviceTimes, err := createdAtInRange(&models.ServiceOrder{}, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch service orders"})
		return
	}

	var orderSeries, serviceSeries []ChartBucket
	if isToday {
		orderSeries = minuteSeries(orderTimes)
		serviceSeries = minuteSeries(serviceTimes)
	} else {
		orderSeries = dailySeries(orderTimes, start, end)
		serviceSeries = dailySeries(serviceTimes, start, end)
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":   orderSeries,
		"services": serviceSeries,
		"isToday":  isToday,
	})
}

// createdAtInRange loads the creation timestamps of all rows in the window
func createdAtInRange(model interface{}, start, end time.Time) ([]time.Time, error) {
	var times []time.Time
	err := database.DB.Model(model).
		Where(`"createdAt" >= ? AND "createdAt" <= ?`, start, end).
		Pluck("createdAt", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

// minuteSeries groups timestamps into minute-resolution buckets, ascending
func minuteSeries(times []time.Time) []ChartBucket {
	counts := make(map[string]int64)
	for _, t := range times {
		counts[t.Local().Format(minuteLayout)]++
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	series := make([]ChartBucket, 0, len(labels))
	for _, label := range labels {
		series = append(series, ChartBucket{Label: label, Count: counts[label]})
	}
	return series
}

// dailySeries groups timestamps into day buckets and zero-fills every
// calendar day in [start, end] so the series is gapless
func dailySeries(times []time.Time, start, end time.Time) []ChartBucket {
	counts := make(map[string]int64)
	for _, t := range times {
		counts[t.Local().Format(dateLayout)]++
	}

	series := []ChartBucket{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		label := day.Format(dateLayout)
		series = append(series, ChartBucket{Label: label, Count: counts[label]})
	}
	return series
}
