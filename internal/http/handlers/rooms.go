package handlers

import (
	"net/http"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain"
	"hrgsms-backend/internal/domain/models"
	"hrgsms-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AvailableRooms GET /rooms/available?branch_id=&check_in=&check_out=
func (h *Handler) AvailableRooms(c *gin.Context) {
	var q models.AvailabilityQuery
	if !bindQuery(c, &q) {
		return
	}
	rows, err := services.RoomService{Deps: h.deps(c)}.Available(c.Request.Context(), q)
	if domain.IsValidation(err) {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		swallow(c, "room", "available", err)
		rows = []intdb.Row{}
	}
	c.JSON(http.StatusOK, rows)
}
