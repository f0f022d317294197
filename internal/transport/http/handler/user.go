package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/app"
	"hbnb/internal/transport/http/response"
)

type UserHandler struct {
	facade *app.Facade
}

type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email,max=120"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	IsAdmin   bool   `json:"is_admin"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email,max=120"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=72"`
	IsAdmin   *bool   `json:"is_admin"`
}

func NewUserHandler(facade *app.Facade) *UserHandler {
	return &UserHandler{facade: facade}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := h.facade.CreateUser(c.Request.Context(), app.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Created(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.ListUsers(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.OK(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.facade.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if user == nil {
		notFound(c, "user")
		return
	}
	response.OK(c, user)
}

func (h *UserHandler) Places(c *gin.Context) {
	user, err := h.facade.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if user == nil {
		notFound(c, "user")
		return
	}

	places, err := h.facade.GetPlacesByOwner(c.Request.Context(), user.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.OK(c, places)
}

// Update lets a user modify their own profile, minus email, password and
// the admin flag; admins may modify anyone and anything.
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	id := c.Param("id")
	claims := currentClaims(c)
	if !claims.IsAdmin {
		if claims.UserID != id {
			forbidden(c, "you can only update your own profile")
			return
		}
		if req.Email != nil || req.Password != nil || req.IsAdmin != nil {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "you cannot modify email, password or admin status")
			return
		}
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), id, app.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if user == nil {
		notFound(c, "user")
		return
	}
	response.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	deleted, err := h.facade.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if !deleted {
		notFound(c, "user")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
