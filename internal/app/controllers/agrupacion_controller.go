package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dquispe/sufragio/internal/app/models/dto"
	"github.com/dquispe/sufragio/internal/app/services"
	"github.com/dquispe/sufragio/internal/middleware"
)

// AgrupacionController handles political grouping and plan operations
type AgrupacionController struct {
	agrupacionService services.AgrupacionService
}

// NewAgrupacionController creates a new AgrupacionController
func NewAgrupacionController(agrupacionService services.AgrupacionService) *AgrupacionController {
	return &AgrupacionController{
		agrupacionService: agrupacionService,
	}
}

// GetAllAgrupaciones handles GET /api/agrupaciones with an optional
// id_eleccion filter.
func (c *AgrupacionController) GetAllAgrupaciones(ctx *gin.Context) {
	var eleccionID int64
	if raw := ctx.Query("id_eleccion"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("El parámetro id_eleccion debe ser numérico"))
			return
		}
		eleccionID = parsed
	}

	agrupaciones, err := c.agrupacionService.ListAgrupaciones(ctx, eleccionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, agrupaciones)
}

// GetAgrupacionByID handles GET /api/agrupaciones/:id.
func (c *AgrupacionController) GetAgrupacionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.agrupacionService.GetAgrupacionDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// GetPlan handles GET /api/agrupaciones/:id/plan.
func (c *AgrupacionController) GetPlan(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	plan, err := c.agrupacionService.GetPlan(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

// GetPlanSector handles GET /api/agrupaciones/:id/plan/:sector.
func (c *AgrupacionController) GetPlanSector(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	sector, err := c.agrupacionService.GetPlanSector(ctx, id, ctx.Param("sector"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sector)
}
