package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vsinha/siteorders/pkg/application/services/ordering"
	"github.com/vsinha/siteorders/pkg/domain/repositories"
)

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ordering.ErrNoActiveSession):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
