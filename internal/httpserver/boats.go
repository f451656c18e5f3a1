package httpserver

import (
	"errors"
	"net/http"

	"nautiq-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func listBoatsHandler(catalog BoatCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		boats, err := catalog.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load fleet"})
			return
		}
		if boats == nil {
			boats = []domain.Boat{}
		}
		c.JSON(http.StatusOK, gin.H{"boats": boats})
	}
}

func getBoatHandler(catalog BoatCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		boat, err := catalog.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "boat not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load boat"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"boat": boat})
	}
}
