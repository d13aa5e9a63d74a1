// README: Access-code validation handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CodeValidator reports whether an access code grants API access.
type CodeValidator interface {
	IsValid(ctx context.Context, code string) (bool, error)
}

type AccessHandler struct {
	codes CodeValidator
}

func NewAccessHandler(codes CodeValidator) *AccessHandler {
	return &AccessHandler{codes: codes}
}

// Validate lets clients check a code before storing it. The endpoint is
// public; an unknown code is a normal 200 response, not an auth failure.
func (h *AccessHandler) Validate(c *gin.Context) {
	ok, err := h.codes.IsValid(c.Request.Context(), c.Query("accessCode"))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"isValidAccessCode": ok})
}
