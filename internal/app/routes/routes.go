package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dquispe/sufragio/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	centroController *controllers.CentroController,
	partidoController *controllers.PartidoController,
	eleccionController *controllers.EleccionController,
	agrupacionController *controllers.AgrupacionController,
	candidatoController *controllers.CandidatoController,
) {
	api := router.Group("/api")

	// Voting geography
	api.GET("/centros", centroController.GetAllCentros)
	api.GET("/mesas/:centroId", centroController.GetMesasByCentro)

	// Party registry
	api.GET("/partidos", partidoController.GetAllPartidos)

	// Electoral dimension
	api.GET("/elecciones", eleccionController.GetAllElecciones)

	agrupaciones := api.Group("/agrupaciones")
	{
		agrupaciones.GET("", agrupacionController.GetAllAgrupaciones)
		agrupaciones.GET("/:id", agrupacionController.GetAgrupacionByID)
		agrupaciones.GET("/:id/plan", agrupacionController.GetPlan)
		agrupaciones.GET("/:id/plan/:sector", agrupacionController.GetPlanSector)
	}

	candidatos := api.Group("/candidatos")
	{
		candidatos.GET("", candidatoController.GetAllCandidatos)
		candidatos.GET("/:id", candidatoController.GetCandidatoByID)
	}

	// Accounts
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
