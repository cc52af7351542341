package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"sweet-shop/constants"
	"sweet-shop/dto"
	"sweet-shop/services"

	"github.com/gin-gonic/gin"
)

type ISweetController interface {
	FindAll(ctx *gin.Context)
	Search(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type SweetController struct {
	service services.ISweetService
}

func NewSweetController(service services.ISweetService) ISweetController {
	return &SweetController{service: service}
}

func (c *SweetController) FindAll(ctx *gin.Context) {
	sweets, err := c.service.FindAll()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Sweets retrieved successfully",
		"sweets":  dto.NewSweetResponses(*sweets),
	})
}

func (c *SweetController) Search(ctx *gin.Context) {
	name := strings.TrimSpace(ctx.Query("name"))
	category := strings.TrimSpace(ctx.Query("category"))

	minPrice, ok := parsePriceQuery(ctx, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := parsePriceQuery(ctx, "max_price")
	if !ok {
		return
	}

	sweets, err := c.service.Search(name, category, minPrice, maxPrice)
	if err != nil {
		respondError(ctx, err)
		return
	}

	responses := dto.NewSweetResponses(*sweets)
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Search results",
		"sweets":  responses,
		"count":   len(responses),
	})
}

// parsePriceQuery reads an optional float query param, answering 400 itself
// when the value is present but unparsable.
func parsePriceQuery(ctx *gin.Context, key string) (*float64, bool) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidPriceValue})
		return nil, false
	}
	return &value, true
}

func (c *SweetController) Create(ctx *gin.Context) {
	var input dto.CreateSweetInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newSweet, err := c.service.Create(input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Sweet added successfully",
		"sweet":   dto.NewSweetResponse(newSweet),
	})
}

func (c *SweetController) Update(ctx *gin.Context) {
	sweetID, ok := parseSweetID(ctx.Param("id"))
	if !ok {
		respondSweetNotFound(ctx)
		return
	}

	var input dto.UpdateSweetInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	updatedSweet, changed, err := c.service.Update(sweetID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	message := "Sweet updated successfully"
	if !changed {
		message = "No changes detected"
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
		"sweet":   dto.NewSweetResponse(updatedSweet),
	})
}

func (c *SweetController) Delete(ctx *gin.Context) {
	sweetID, ok := parseSweetID(ctx.Param("id"))
	if !ok {
		respondSweetNotFound(ctx)
		return
	}

	if err := c.service.Delete(sweetID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sweet deleted successfully"})
}
