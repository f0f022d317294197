package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/app"
	"hbnb/internal/model"
	"hbnb/internal/transport/http/middleware"
	"hbnb/internal/transport/http/response"
)

func currentClaims(c *gin.Context) app.Claims {
	return app.Claims{
		UserID:  c.GetString(middleware.ContextUserIDKey),
		IsAdmin: c.GetBool(middleware.ContextIsAdminKey),
	}
}

// writeDomainError maps facade errors onto the status taxonomy:
// validation and broken references are 400, conflicts are 409, bad
// credentials are 401, anything unrecognized is 500.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, app.ErrInvalidInput),
		errors.Is(err, app.ErrOwnerNotFound),
		errors.Is(err, app.ErrUserNotFound),
		errors.Is(err, app.ErrPlaceNotFound),
		errors.Is(err, app.ErrSelfReview):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrEmailExists),
		errors.Is(err, app.ErrAmenityExists),
		errors.Is(err, app.ErrDuplicateReview):
		response.Error(c, http.StatusConflict, response.CodeConflict, err.Error())
	case errors.Is(err, app.ErrInvalidCredential):
		response.Error(c, http.StatusUnauthorized, response.CodeInvalidCredentials, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "internal server error")
	}
}

func notFound(c *gin.Context, what string) {
	response.Error(c, http.StatusNotFound, response.CodeNotFound, what+" not found")
}

func forbidden(c *gin.Context, message string) {
	response.Error(c, http.StatusForbidden, response.CodeForbidden, message)
}
