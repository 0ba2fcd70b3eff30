package httphandlers

import (
	"context"
	"net/http"

	"github.com/Lumerin-protocol/flow-editor-api/internal/config"
	"github.com/Lumerin-protocol/flow-editor-api/internal/interfaces"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type SettingsExporter interface {
	Export(ctx context.Context) (map[string]any, error)
}

type SanitizedConfig interface {
	GetSanitized() interface{}
}

type HTTPHandler struct {
	exporter SettingsExporter
	config   SanitizedConfig
	log      interfaces.ILogger
}

func NewHTTPHandler(exporter SettingsExporter, cfg SanitizedConfig, log interfaces.ILogger) *gin.Engine {
	handl := &HTTPHandler{
		exporter: exporter,
		config:   cfg,
		log:      log,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(log), Metrics())

	r.GET("/healthcheck", handl.HealthCheck)
	r.GET("/config", handl.GetConfig)
	r.GET("/settings", handl.GetSettings)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	err := r.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	return r
}

func (h *HTTPHandler) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "healthy",
		Version: config.BuildVersion,
	})
}
