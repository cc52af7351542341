package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"sweet-shop/constants"
	"sweet-shop/services"

	"github.com/gin-gonic/gin"
)

// parseSweetID parses a path id. Callers treat a malformed id exactly like a
// miss, so the API never distinguishes bad ids from absent ones.
func parseSweetID(raw string) (uint, bool) {
	sweetID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(sweetID), true
}

func respondSweetNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrSweetNotFound})
}

// respondError maps a service error onto the HTTP error taxonomy.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSweetNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case services.IsValidationError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
	}
}
