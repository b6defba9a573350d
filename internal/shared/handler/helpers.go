package handler

import (
	"net/http"

	sharedError "github.com/uknowme/member-server/internal/shared/error"
	"github.com/uknowme/member-server/internal/shared/validator"

	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req JoinRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		return respondBindError(c, err)
	}
	return true
}

// BindURI binds and validates path parameters the same way as BindJSON.
func BindURI(c *gin.Context, obj any) bool {
	if err := c.ShouldBindUri(obj); err != nil {
		return respondBindError(c, err)
	}
	return true
}

func respondBindError(c *gin.Context, err error) bool {
	// Add error to context for middleware logging
	_ = c.Error(err)

	if resp, ok := validator.ToErrorResponse(err); ok {
		c.JSON(http.StatusBadRequest, resp)
	} else {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
	}
	return false
}

// RespondError sends an error response with logging
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	_ = c.Error(err)
	c.JSON(errResp.Status, errResp)
}

// RespondServiceError maps a service error to its registered response,
// falling back to 500.
//
// Usage:
//
//	if err := service.DoSomething(ctx); err != nil {
//	    handler.RespondServiceError(c, err)
//	    return
//	}
func RespondServiceError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		RespondError(c, err, resp)
		return
	}
	RespondError(c, err, sharedError.InternalServerError)
}
