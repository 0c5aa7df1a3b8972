// Package controller holds the HTTP response helpers shared by the auth, user
// and admin controllers.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/lshigami/MedQuest/internal/middleware"
	"github.com/lshigami/MedQuest/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a service error to its HTTP status and client-facing message.
// Anything unrecognized is a 500 with a generic message.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		return http.StatusBadRequest, "Email already exists"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, service.ErrPasswordTooLong):
		return http.StatusBadRequest, "Password too long"
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, service.ErrQuestionNotFound):
		return http.StatusNotFound, "Question not found"
	case errors.Is(err, service.ErrInvalidQuestion),
		errors.Is(err, service.ErrInvalidAnswer),
		errors.Is(err, service.ErrCorrectnessMismatch):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrLLMUnavailable):
		return http.StatusServiceUnavailable, "Question drafting is not configured"
	case errors.Is(err, service.ErrDraftUnparseable):
		return http.StatusBadGateway, "Could not parse drafted question"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// RespondError writes the {error} body for err. Server-side failures are logged
// with the request id; their details never reach the client.
func RespondError(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("request_id", middleware.RequestIDFrom(c)).
			Str("path", c.FullPath()).
			Msg("Request failed")
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

// RespondBindError answers a malformed body or query with 400.
func RespondBindError(c *gin.Context, err error) {
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request")
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
}

// CallerID returns the authenticated user's id. Routes using it sit behind RequireAuth.
func CallerID(c *gin.Context) (uint, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return 0, false
	}
	return claims.UserID, true
}

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question ID"})
		return 0, false
	}
	return uint(id), true
}
