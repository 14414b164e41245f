package handlers

import (
	"net/http"

	"hrgsms-backend/internal/domain/models"
	"hrgsms-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ListReservations GET /reservations/?today=&status=
func (h *Handler) ListReservations(c *gin.Context) {
	var f models.ReservationFilter
	if !bindQuery(c, &f) {
		return
	}
	rows, err := services.BookingService{Deps: h.deps(c)}.Search(c.Request.Context(), f)
	if err != nil {
		failRead(c, "booking", "list", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": rows, "count": len(rows)})
}

// CreateReservation POST /reservations/
func (h *Handler) CreateReservation(c *gin.Context) {
	var in models.ReservationCreate
	if !bindJSON(c, &in) {
		return
	}
	id, err := services.BookingService{Deps: h.deps(c)}.Create(c.Request.Context(), in)
	if err != nil {
		failWrite(c, "booking", "create", err)
		return
	}
	c.JSON(http.StatusCreated, models.BookingCreated{BookingID: id, Message: "Reservation created successfully"})
}

// CheckIn POST /reservations/:id/checkin
func (h *Handler) CheckIn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := services.BookingService{Deps: h.deps(c)}.CheckIn(c.Request.Context(), id)
	if err != nil {
		failWrite(c, "booking", "checkin", err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// CheckOut POST /reservations/:id/checkout
func (h *Handler) CheckOut(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := services.BookingService{Deps: h.deps(c)}.CheckOut(c.Request.Context(), id)
	if err != nil {
		failWrite(c, "booking", "checkout", err)
		return
	}
	c.JSON(http.StatusOK, row)
}
