package httpserver

import (
	"log"
	"net/http"
	"time"

	"nautiq-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type availabilityRequest struct {
	ICalURL string `json:"icalUrl"`
	Year    int    `json:"year"`
	// Month is zero-based, matching the storefront's calendar widget.
	Month int `json:"month"`
}

// availabilityHandler serves the calendar lookup. An absent feed URL is a
// successful empty answer; any fetch or parse failure is a 500 carrying an
// empty list so the caller cannot mistake it for an open month.
func availabilityHandler(svc AvailabilityService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		empty := []domain.AvailabilityDay{}

		var req availabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability", "availability": empty})
			return
		}

		days, err := svc.ForMonth(c.Request.Context(), req.ICalURL, req.Year, time.Month(req.Month+1))
		if err != nil {
			logger.Printf("availability: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability", "availability": empty})
			return
		}
		if days == nil {
			days = empty
		}
		c.JSON(http.StatusOK, gin.H{"availability": days})
	}
}
