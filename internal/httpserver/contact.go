package httpserver

import (
	"log"
	"net/http"
	"strings"

	"nautiq-backend/internal/service/enquiry"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Contact string `json:"contact"`
	Date    string `json:"date"`
	Guests  string `json:"guests"`
	Budget  string `json:"budget"`
	Message string `json:"message"`
}

func (r contactRequest) complete() bool {
	return strings.TrimSpace(r.Contact) != "" &&
		strings.TrimSpace(r.Date) != "" &&
		strings.TrimSpace(r.Guests) != "" &&
		strings.TrimSpace(r.Budget) != ""
}

func contactHandler(svc EnquiryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil || !req.complete() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		err := svc.Submit(c.Request.Context(), enquiry.Enquiry{
			Contact: req.Contact,
			Date:    req.Date,
			Guests:  req.Guests,
			Budget:  req.Budget,
			Message: req.Message,
		})
		if err != nil {
			logger.Printf("contact: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
