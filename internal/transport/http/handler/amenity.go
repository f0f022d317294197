package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/app"
	"hbnb/internal/transport/http/response"
)

type AmenityHandler struct {
	facade *app.Facade
}

type CreateAmenityRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type UpdateAmenityRequest struct {
	Name *string `json:"name" binding:"omitempty,max=50"`
}

func NewAmenityHandler(facade *app.Facade) *AmenityHandler {
	return &AmenityHandler{facade: facade}
}

func (h *AmenityHandler) Create(c *gin.Context) {
	var req CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	amenity, err := h.facade.CreateAmenity(c.Request.Context(), app.CreateAmenityInput{Name: req.Name})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Created(c, amenity)
}

func (h *AmenityHandler) List(c *gin.Context) {
	amenities, err := h.facade.ListAmenities(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.OK(c, amenities)
}

func (h *AmenityHandler) Get(c *gin.Context) {
	amenity, err := h.facade.GetAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if amenity == nil {
		notFound(c, "amenity")
		return
	}
	response.OK(c, amenity)
}

func (h *AmenityHandler) Places(c *gin.Context) {
	amenity, err := h.facade.GetAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if amenity == nil {
		notFound(c, "amenity")
		return
	}

	places, err := h.facade.GetPlacesByAmenity(c.Request.Context(), amenity.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.OK(c, places)
}

func (h *AmenityHandler) Update(c *gin.Context) {
	var req UpdateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	amenity, err := h.facade.UpdateAmenity(c.Request.Context(), c.Param("id"), app.UpdateAmenityInput{Name: req.Name})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if amenity == nil {
		notFound(c, "amenity")
		return
	}
	response.OK(c, amenity)
}

func (h *AmenityHandler) Delete(c *gin.Context) {
	deleted, err := h.facade.DeleteAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if !deleted {
		notFound(c, "amenity")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
