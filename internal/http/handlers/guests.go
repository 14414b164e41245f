package handlers

import (
	"net/http"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain/models"
	"hrgsms-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateGuest POST /guests/
func (h *Handler) CreateGuest(c *gin.Context) {
	var in models.GuestCreate
	if !bindJSON(c, &in) {
		return
	}
	id, err := services.GuestService{Deps: h.deps(c)}.Create(c.Request.Context(), in)
	if err != nil {
		failWrite(c, "guest", "create", err)
		return
	}
	c.JSON(http.StatusCreated, models.GuestCreated{GuestID: id, Message: "Guest created successfully"})
}

// SearchGuests GET /guests/search?q=
func (h *Handler) SearchGuests(c *gin.Context) {
	rows, err := services.GuestService{Deps: h.deps(c)}.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		swallow(c, "guest", "search", err)
		rows = []intdb.Row{}
	}
	c.JSON(http.StatusOK, gin.H{"guests": rows, "count": len(rows)})
}

// GetGuest GET /guests/:id. An empty result and a failed lookup both read as 404.
func (h *Handler) GetGuest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := services.GuestService{Deps: h.deps(c)}.Get(c.Request.Context(), id)
	if err != nil {
		swallow(c, "guest", "get", err)
		respondError(c, http.StatusNotFound, "Guest not found")
		return
	}
	c.JSON(http.StatusOK, row)
}
