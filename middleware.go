package main

import (
	"log/slog"
	"strings"
	"time"

	"boletoapi/models"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "usuario"

// jwtAuthMiddleware decodes the bearer token and resolves it to a user
// record. Missing header, bad signature, expired token and unknown subject
// all fail with the same 401.
func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondError(c, ErrCredentials)
			return
		}
		email, err := parseAccessToken(cfg, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			respondError(c, err)
			return
		}
		user, err := resolveUser(db, email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// currentUser returns the user resolved by jwtAuthMiddleware.
func currentUser(c *gin.Context) *models.Usuario {
	v, _ := c.Get(ctxUserKey)
	u, _ := v.(*models.Usuario)
	return u
}

// requireAdmin sits behind jwtAuthMiddleware on mutating boleto routes.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !canMutateBoletos(user) {
			respondError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

// requestLogger logs every request through slog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if user := currentUser(c); user != nil {
			attrs = append(attrs, "email", user.Email)
		}
		if c.Writer.Status() >= 500 {
			slog.Error("request", attrs...)
		} else {
			slog.Info("request", attrs...)
		}
	}
}
