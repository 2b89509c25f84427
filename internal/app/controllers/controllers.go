// Package controllers contains the Gin handlers for the public API. Each
// controller is a thin adapter: parse the request, call the service, map
// errors through middleware.HandleAPIError.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dquispe/sufragio/internal/app/models/dto"
)

// parseIDParam reads a numeric path parameter and writes a 400 response
// when it is not a valid integer.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("El identificador debe ser numérico"))
		return 0, false
	}
	return id, true
}
