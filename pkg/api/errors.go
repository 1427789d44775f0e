package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saramhq/aegis/pkg/chat"
	"github.com/saramhq/aegis/pkg/generators"
	"github.com/saramhq/aegis/pkg/llm"
	"github.com/saramhq/aegis/pkg/render"
	"github.com/saramhq/aegis/pkg/retrieval"
	"github.com/saramhq/aegis/pkg/sourceset"
)

// Error codes owned by the HTTP layer.
const (
	ErrorCodeInvalidRequest  = "INVALID_REQUEST"
	ErrorCodeUnauthorized    = "UNAUTHORIZED"
	ErrorCodeEndpointRemoved = "ENDPOINT_REMOVED"
	ErrorCodeInternal        = "INTERNAL_ERROR"
	ErrorCodeConflict        = "SOURCE_SET_IN_PROGRESS"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Detail    string `json:"detail"`
	ErrorCode string `json:"error_code"`
}

// fail writes the uniform error body and aborts the request.
func fail(c *gin.Context, status int, code, detail string) {
	c.AbortWithStatusJSON(status, errorResponse{Detail: detail, ErrorCode: code})
}

// failValidation reports request-shape problems as 422.
func failValidation(c *gin.Context, detail string) {
	fail(c, http.StatusUnprocessableEntity, ErrorCodeInvalidRequest, detail)
}

// failFromError maps service-layer errors to HTTP responses.
func failFromError(c *gin.Context, err error) {
	var transition *render.TransitionError
	var apiErr *llm.APIError
	switch {
	case errors.Is(err, render.ErrJobNotFound):
		fail(c, http.StatusNotFound, render.ErrorCodeJobNotFound, "render job not found")
	case errors.Is(err, render.ErrScriptNotApproved):
		fail(c, http.StatusConflict, render.ErrorCodeScriptNotApproved, "script must be approved before rendering")
	case errors.Is(err, render.ErrNoRenderSpecForRetry):
		fail(c, http.StatusConflict, render.ErrorCodeNoRenderSpecForRetry, "job has no render spec snapshot to retry from")
	case errors.Is(err, render.ErrEmptyRenderSpec):
		fail(c, http.StatusUnprocessableEntity, render.ErrorCodeEmptyRenderSpec, "render spec has no scenes")
	case errors.As(err, &transition):
		fail(c, http.StatusConflict, render.ErrorCodeRender, transition.Error())
	case errors.Is(err, retrieval.ErrSearchUnavailable):
		fail(c, http.StatusServiceUnavailable, chat.ErrorCodeRAGUnavailable, "document search is temporarily unavailable")
	case errors.Is(err, sourceset.ErrAlreadyRunning):
		fail(c, http.StatusConflict, ErrorCodeConflict, "source-set pipeline is already running")
	case errors.Is(err, chat.ErrEmptyMessage):
		failValidation(c, "messages must contain at least one user message")
	case errors.Is(err, generators.ErrInvalidRequest):
		failValidation(c, err.Error())
	case errors.As(err, &apiErr):
		fail(c, http.StatusBadGateway, chat.ErrorCodeLLM, "llm provider error")
	default:
		slog.Error("Unhandled service error", "path", c.FullPath(), "error", err)
		fail(c, http.StatusInternalServerError, ErrorCodeInternal, "internal server error")
	}
}

// gone marks endpoints removed from the V2 surface. The paths stay routed so
// old clients get an explicit signal instead of a 404.
func gone(c *gin.Context) {
	fail(c, http.StatusGone, ErrorCodeEndpointRemoved, "this endpoint has been removed; see the V2 API")
}
