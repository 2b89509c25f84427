package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dquispe/sufragio/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", apperrors.NewNotFoundError("Centro de votación no encontrado"), http.StatusNotFound, `{"error":"Centro de votación no encontrado"}`},
		{"missing field", apperrors.NewMissingFieldError("Faltan campos obligatorios (dni, password)"), http.StatusBadRequest, `{"error":"Faltan campos obligatorios (dni, password)"}`},
		{"invalid reference", apperrors.NewInvalidReferenceError("La mesa indicada no existe"), http.StatusBadRequest, `{"error":"La mesa indicada no existe"}`},
		{"conflict", apperrors.NewConflictError("El DNI ya está registrado"), http.StatusConflict, `{"error":"El DNI ya está registrado"}`},
		{"unauthorized", apperrors.NewUnauthorizedError("Credenciales inválidas"), http.StatusUnauthorized, `{"error":"Credenciales inválidas"}`},
		{"internal detail never leaks", errors.New("pq: connection refused"), http.StatusInternalServerError, `{"error":"Error interno del servidor"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/test", nil)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}
