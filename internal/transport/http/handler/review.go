package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/app"
	"hbnb/internal/model"
	"hbnb/internal/transport/http/response"
)

type ReviewHandler struct {
	facade *app.Facade
}

type CreateReviewRequest struct {
	Text    string `json:"text" binding:"required,max=500"`
	Rating  *int   `json:"rating" binding:"required"`
	PlaceID string `json:"place_id" binding:"required"`
}

type UpdateReviewRequest struct {
	Text   *string `json:"text" binding:"omitempty,max=500"`
	Rating *int    `json:"rating"`
}

func NewReviewHandler(facade *app.Facade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Create posts a review authored by the caller.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	claims := currentClaims(c)
	review, err := h.facade.CreateReview(c.Request.Context(), app.CreateReviewInput{
		Text:    req.Text,
		Rating:  *req.Rating,
		PlaceID: req.PlaceID,
		UserID:  claims.UserID,
	}, claims)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Created(c, review)
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.facade.ListReviews(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.OK(c, reviews)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	review, err := h.facade.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if review == nil {
		notFound(c, "review")
		return
	}
	response.OK(c, review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	review, ok := h.authorizeReview(c)
	if !ok {
		return
	}

	updated, err := h.facade.UpdateReview(c.Request.Context(), review.ID, app.UpdateReviewInput{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if updated == nil {
		notFound(c, "review")
		return
	}
	response.OK(c, updated)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	review, ok := h.authorizeReview(c)
	if !ok {
		return
	}

	deleted, err := h.facade.DeleteReview(c.Request.Context(), review.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if !deleted {
		notFound(c, "review")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// authorizeReview loads the review and checks the caller is its author or
// an admin.
func (h *ReviewHandler) authorizeReview(c *gin.Context) (*model.Review, bool) {
	review, err := h.facade.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return nil, false
	}
	if review == nil {
		notFound(c, "review")
		return nil, false
	}

	claims := currentClaims(c)
	if !claims.IsAdmin && review.UserID != claims.UserID {
		forbidden(c, "you did not write this review")
		return nil, false
	}
	return review, true
}
