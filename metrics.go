package main

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boletoapi_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	loginFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boletoapi_login_failures_total",
		Help: "Failed login attempts.",
	})

	boletosImported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boletoapi_boletos_imported_total",
		Help: "Boletos committed through bulk import.",
	})
)

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
