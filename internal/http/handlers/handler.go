package handlers

import (
	"context"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/events"
	"hrgsms-backend/internal/http/middleware"
	"hrgsms-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Pinger reports store reachability for /health/db.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler holds what the route handlers share. Services are built per request.
type Handler struct {
	Procs  intdb.Caller
	Events events.Publisher
	DB     Pinger
}

func (h *Handler) deps(c *gin.Context) services.Deps {
	pub := h.Events
	if pub == nil {
		pub = events.Nop{}
	}
	return services.Deps{Procs: h.Procs, Events: pub, RequestID: middleware.GetRequestID(c)}
}
