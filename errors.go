package main

import (
	"errors"
	"log/slog"
	"net/http"

	"boletoapi/pkg/importar"

	"github.com/gin-gonic/gin"
)

// Failure taxonomy. Handlers and helpers wrap these sentinels; respondError
// maps them to HTTP statuses at the boundary so no handler picks codes ad hoc.
var (
	ErrCredentials = errors.New("credenciais inválidas")
	ErrForbidden   = errors.New("permissão insuficiente")
	ErrNotFound    = errors.New("registro não encontrado")
	ErrDuplicate   = errors.New("registro duplicado")
	ErrValidation  = errors.New("dados inválidos")
)

// respondError translates a domain failure into its external status. Anything
// outside the taxonomy becomes a generic 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var rowErr *importar.RowError
	switch {
	case errors.Is(err, ErrCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.As(err, &rowErr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Erro ao processar o arquivo: " + rowErr.Error()})
	default:
		slog.Error("unexpected failure", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "erro interno"})
	}
	c.Abort()
}
