package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Delete removes a stored image by its public identifier. A missing object
// is not an error; the provider's result value reports it.
func (h HandlerSet) Delete(c *gin.Context) {
	publicID := c.Param("publicId")

	result, err := h.store.Delete(c.Request.Context(), publicID)
	if err != nil {
		h.serverError(c, fmt.Errorf("suppression de %s: %w", publicID, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Suppression traitée pour %s", publicID),
		"result":  string(result),
	})
}
