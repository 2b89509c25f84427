package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dquispe/sufragio/internal/app/models/dto"
	"github.com/dquispe/sufragio/internal/app/repositories"
	"github.com/dquispe/sufragio/internal/app/services"
	"github.com/dquispe/sufragio/internal/middleware"
)

// CandidatoController handles candidate operations
type CandidatoController struct {
	candidatoService services.CandidatoService
}

// NewCandidatoController creates a new CandidatoController
func NewCandidatoController(candidatoService services.CandidatoService) *CandidatoController {
	return &CandidatoController{
		candidatoService: candidatoService,
	}
}

// GetAllCandidatos handles GET /api/candidatos with optional region, cargo,
// id_agrupacion and nombre_completo query filters. nombre is accepted as an
// alias of nombre_completo.
func (c *CandidatoController) GetAllCandidatos(ctx *gin.Context) {
	nombre := ctx.Query("nombre_completo")
	if nombre == "" {
		nombre = ctx.Query("nombre")
	}

	filter := repositories.CandidatoFilter{
		Region: ctx.Query("region"),
		Cargo:  ctx.Query("cargo"),
		Nombre: nombre,
	}
	if raw := ctx.Query("id_agrupacion"); raw != "" {
		agrupacionID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("El parámetro id_agrupacion debe ser numérico"))
			return
		}
		filter.AgrupacionID = agrupacionID
	}

	candidatos, err := c.candidatoService.ListCandidatos(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, candidatos)
}

// GetCandidatoByID handles GET /api/candidatos/:id.
func (c *CandidatoController) GetCandidatoByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.candidatoService.GetCandidatoDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}
