package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"hrgsms-backend/internal/domain"
	"hrgsms-backend/internal/http/middleware"
	"hrgsms-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, detail string) {
	if strings.TrimSpace(detail) == "" {
		detail = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail, RequestID: middleware.GetRequestID(c)})
}

// failWrite answers a failed write. Input the service rejected is a 422 like
// any other schema failure; every store failure is a 400 carrying its message.
func failWrite(c *gin.Context, module, action string, err error) {
	utils.LogFailure(middleware.GetRequestID(c), module, action, err)
	if domain.IsValidation(err) {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondError(c, http.StatusBadRequest, err.Error())
}

// failRead answers a read whose failure must reach the client.
func failRead(c *gin.Context, module, action string, err error) {
	utils.LogFailure(middleware.GetRequestID(c), module, action, err)
	respondError(c, http.StatusInternalServerError, err.Error())
}

// swallow logs a read failure that is answered with an empty payload.
func swallow(c *gin.Context, module, action string, err error) {
	utils.LogFailure(middleware.GetRequestID(c), module, action, err)
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusUnprocessableEntity, validationDetail(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		respondError(c, http.StatusUnprocessableEntity, validationDetail(err))
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, fmt.Sprintf("%s: must be an integer", name))
		return 0, false
	}
	return id, true
}

// validationDetail flattens binding errors into one readable line.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				parts = append(parts, fmt.Sprintf("%s: field required", fe.Field()))
			case "datetime":
				parts = append(parts, fmt.Sprintf("%s: must be a date (YYYY-MM-DD)", fe.Field()))
			case "gt":
				parts = append(parts, fmt.Sprintf("%s: must be greater than %s", fe.Field(), fe.Param()))
			case "oneof":
				parts = append(parts, fmt.Sprintf("%s: must be one of %s", fe.Field(), fe.Param()))
			default:
				parts = append(parts, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
			}
		}
		return strings.Join(parts, "; ")
	}
	if errors.Is(err, io.EOF) {
		return "request body required"
	}
	return "invalid request: " + err.Error()
}
