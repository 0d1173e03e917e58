package handler

import (
	"net/http"
	"time"

	"citibike/backend/internal/log"

	"github.com/gin-gonic/gin"
)

const greeting = "Hello World!"

func Hello(c *gin.Context) {
	c.String(http.StatusOK, greeting)
}

func NewRouter(logger log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery())

	r.GET("/", Hello)

	return r
}

func RequestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP())
	}
}
