package httphandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings returns the runtime settings for the editor
func (h *HTTPHandler) GetSettings(ctx *gin.Context) {
	res, err := h.exporter.Export(ctx.Request.Context())
	if err != nil {
		h.log.Debugf("settings request aborted: %s", err)
		ctx.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	ctx.JSON(http.StatusOK, res)
}
