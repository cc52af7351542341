package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"sweet-shop/constants"
	"sweet-shop/dto"
	"sweet-shop/services"

	"github.com/gin-gonic/gin"
)

type IInventoryController interface {
	Purchase(ctx *gin.Context)
	Restock(ctx *gin.Context)
}

type InventoryController struct {
	service services.IInventoryService
}

func NewInventoryController(service services.IInventoryService) IInventoryController {
	return &InventoryController{service: service}
}

func (c *InventoryController) Purchase(ctx *gin.Context) {
	sweetID, ok := parseSweetID(ctx.Param("id"))
	if !ok {
		respondSweetNotFound(ctx)
		return
	}

	// The body is optional; an absent body or quantity means one unit.
	var input dto.PurchaseInput
	if err := ctx.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidQuantityValue})
		return
	}
	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	sweet, err := c.service.Purchase(sweetID, quantity)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Purchased %d %s(s) successfully", quantity, sweet.Name),
		"sweet":   dto.NewSweetResponse(sweet),
	})
}

func (c *InventoryController) Restock(ctx *gin.Context) {
	sweetID, ok := parseSweetID(ctx.Param("id"))
	if !ok {
		respondSweetNotFound(ctx)
		return
	}

	var input dto.RestockInput
	if err := ctx.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidQuantityValue})
		return
	}
	quantity := 0
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	sweet, err := c.service.Restock(sweetID, quantity)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Restocked %d %s(s) successfully", quantity, sweet.Name),
		"sweet":   dto.NewSweetResponse(sweet),
	})
}
