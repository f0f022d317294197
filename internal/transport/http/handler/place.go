package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/app"
	"hbnb/internal/model"
	"hbnb/internal/transport/http/response"
)

type PlaceHandler struct {
	facade *app.Facade
}

// Float fields are pointers so that zero coordinates survive the
// required check.
type CreatePlaceRequest struct {
	Title       string   `json:"title" binding:"required,max=100"`
	Description string   `json:"description" binding:"omitempty,max=500"`
	Price       *float64 `json:"price" binding:"required"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	OwnerID     string   `json:"owner_id" binding:"omitempty"`
}

type UpdatePlaceRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Price       *float64 `json:"price"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

func NewPlaceHandler(facade *app.Facade) *PlaceHandler {
	return &PlaceHandler{facade: facade}
}

// Create registers a place owned by the caller. Admins may create places
// on behalf of another user through owner_id.
func (h *PlaceHandler) Create(c *gin.Context) {
	var req CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	claims := currentClaims(c)
	ownerID := claims.UserID
	if req.OwnerID != "" && req.OwnerID != claims.UserID {
		if !claims.IsAdmin {
			forbidden(c, "only admins can create places for other users")
			return
		}
		ownerID = req.OwnerID
	}

	place, err := h.facade.CreatePlace(c.Request.Context(), app.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		OwnerID:     ownerID,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Created(c, place)
}

func (h *PlaceHandler) List(c *gin.Context) {
	places, err := h.facade.ListPlaces(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.OK(c, places)
}

func (h *PlaceHandler) Get(c *gin.Context) {
	details, err := h.facade.GetPlaceWithRelated(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if details == nil {
		notFound(c, "place")
		return
	}
	response.OK(c, details)
}

func (h *PlaceHandler) Update(c *gin.Context) {
	var req UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	place, ok := h.authorizePlace(c)
	if !ok {
		return
	}

	updated, err := h.facade.UpdatePlace(c.Request.Context(), place.ID, app.UpdatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if updated == nil {
		notFound(c, "place")
		return
	}
	response.OK(c, updated)
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	place, ok := h.authorizePlace(c)
	if !ok {
		return
	}

	deleted, err := h.facade.DeletePlace(c.Request.Context(), place.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if !deleted {
		notFound(c, "place")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

func (h *PlaceHandler) Reviews(c *gin.Context) {
	place, err := h.facade.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if place == nil {
		notFound(c, "place")
		return
	}

	reviews, err := h.facade.GetReviewsByPlace(c.Request.Context(), place.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.OK(c, reviews)
}

func (h *PlaceHandler) Amenities(c *gin.Context) {
	place, err := h.facade.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if place == nil {
		notFound(c, "place")
		return
	}

	amenities, err := h.facade.GetPlaceAmenities(c.Request.Context(), place.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.OK(c, amenities)
}

func (h *PlaceHandler) AddAmenity(c *gin.Context) {
	if _, ok := h.authorizePlace(c); !ok {
		return
	}

	added, err := h.facade.AddAmenityToPlace(c.Request.Context(), c.Param("id"), c.Param("amenity_id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if !added {
		notFound(c, "place or amenity")
		return
	}
	response.OK(c, gin.H{"linked": true})
}

func (h *PlaceHandler) RemoveAmenity(c *gin.Context) {
	if _, ok := h.authorizePlace(c); !ok {
		return
	}

	removed, err := h.facade.RemoveAmenityFromPlace(c.Request.Context(), c.Param("id"), c.Param("amenity_id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if !removed {
		notFound(c, "association")
		return
	}
	response.OK(c, gin.H{"unlinked": true})
}

// authorizePlace loads the place and checks the caller is its owner or an
// admin. It writes the response itself when the check fails.
func (h *PlaceHandler) authorizePlace(c *gin.Context) (*model.Place, bool) {
	place, err := h.facade.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return nil, false
	}
	if place == nil {
		notFound(c, "place")
		return nil, false
	}

	claims := currentClaims(c)
	if !claims.IsAdmin && place.OwnerID != claims.UserID {
		forbidden(c, "you do not own this place")
		return nil, false
	}
	return place, true
}
