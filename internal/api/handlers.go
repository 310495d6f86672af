package api

import (
	"context"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"yieldboard/server/config"
	"yieldboard/server/internal/analytics"
	"yieldboard/server/internal/models"
)

const noDataMessage = "No sales or rental data available for the selected area, property type, or room type within the selected time period."

// DataSource supplies the immutable dataset snapshots.
type DataSource interface {
	Sales(ctx context.Context) ([]models.SaleRecord, error)
	Rentals(ctx context.Context) ([]models.RentalRecord, error)
}

type Handler struct {
	source DataSource
	cfg    *config.Config
	logger *logrus.Logger
	now    func() time.Time
}

type YieldQuery struct {
	Area         string `form:"area" binding:"required"`
	PropertyType string `form:"propertyType" binding:"required"`
	Rooms        string `form:"rooms" binding:"required"`
	Months       int    `form:"months"`
}

type ComparisonQuery struct {
	Areas        []string `form:"areas" binding:"required"`
	PropertyType string   `form:"propertyType" binding:"required"`
	Rooms        string   `form:"rooms" binding:"required"`
	Months       int      `form:"months"`
}

func NewHandler(source DataSource, cfg *config.Config, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		source: source,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// GetYield computes the headline metrics and the monthly sale-price series
// for one (area, property type, rooms, window) selection.
func (h *Handler) GetYield(c *gin.Context) {
	var query YieldQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.WithError(err).Error("Failed to parse yield query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	window := config.WindowByMonths(query.Months)
	if window == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported time window"})
		return
	}

	sales, rentals, ok := h.snapshots(c)
	if !ok {
		return
	}

	criteria := analytics.Criteria{
		Area:         strings.TrimSpace(query.Area),
		PropertyType: strings.TrimSpace(query.PropertyType),
		Rooms:        strings.TrimSpace(query.Rooms),
		MinDate:      h.minDate(window.Months),
	}
	salesSubset := analytics.FilterSales(sales, criteria)
	rentalSubset := analytics.FilterRentals(rentals, criteria)

	stats := analytics.ComputeYield(salesSubset, rentalSubset)
	if !stats.HasData() {
		// Absence of data is not an error; the dashboard renders the
		// message instead of a misleading 0% yield.
		c.JSON(http.StatusOK, gin.H{
			"no_data": true,
			"message": noDataMessage,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":   stats,
		"monthly": analytics.AggregateMonthly(salesSubset),
	})
}

// GetComparison builds the multi-area monthly yield table and its pivoted
// chart matrix.
func (h *Handler) GetComparison(c *gin.Context) {
	var query ComparisonQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.WithError(err).Error("Failed to parse comparison query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	window := config.WindowByMonths(query.Months)
	if window == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported time window"})
		return
	}

	sales, rentals, ok := h.snapshots(c)
	if !ok {
		return
	}

	rows := analytics.BuildComparison(sales, rentals, trimQueryValues(query.Areas),
		strings.TrimSpace(query.PropertyType), strings.TrimSpace(query.Rooms), h.minDate(window.Months))
	c.JSON(http.StatusOK, gin.H{
		"rows":  rows,
		"chart": analytics.Pivot(rows),
	})
}

// GetOptions returns the selector values derived from the sales snapshot.
func (h *Handler) GetOptions(c *gin.Context) {
	sales, err := h.source.Sales(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get sales dataset")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load datasets"})
		return
	}

	areas := make([]string, 0)
	propertyTypes := make([]string, 0)
	rooms := make([]string, 0)
	seen := map[string]map[string]bool{
		"areas": {}, "types": {}, "rooms": {},
	}
	for _, s := range sales {
		if s.Area != "" && !seen["areas"][s.Area] {
			seen["areas"][s.Area] = true
			areas = append(areas, s.Area)
		}
		if s.PropertyType != "" && !seen["types"][s.PropertyType] {
			seen["types"][s.PropertyType] = true
			propertyTypes = append(propertyTypes, s.PropertyType)
		}
		if s.Rooms != "" && !seen["rooms"][s.Rooms] {
			seen["rooms"][s.Rooms] = true
			rooms = append(rooms, s.Rooms)
		}
	}
	sort.Strings(areas)
	sort.Strings(propertyTypes)
	sort.Strings(rooms)

	c.JSON(http.StatusOK, gin.H{
		"areas":          areas,
		"property_types": propertyTypes,
		"rooms":          rooms,
		"default_area":   h.cfg.DefaultArea,
	})
}

// GetWindows returns the fixed set of selectable look-back periods.
func (h *Handler) GetWindows(c *gin.Context) {
	c.JSON(http.StatusOK, config.SupportedWindows)
}

func (h *Handler) snapshots(c *gin.Context) ([]models.SaleRecord, []models.RentalRecord, bool) {
	sales, err := h.source.Sales(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get sales dataset")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load datasets"})
		return nil, nil, false
	}

	rentals, err := h.source.Rentals(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get rentals dataset")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load datasets"})
		return nil, nil, false
	}

	return sales, rentals, true
}

func (h *Handler) minDate(months int) time.Time {
	return h.now().AddDate(0, -months, 0)
}

// trimQueryValues mirrors the dashboard's habit of trimming selector values
// before matching; stored fields are already trimmed at load time.
func trimQueryValues(values []string) []string {
	trimmed := make([]string, len(values))
	for i, v := range values {
		trimmed[i] = strings.TrimSpace(v)
	}
	return trimmed
}
