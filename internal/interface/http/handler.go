package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yanqian/closet-stylist/internal/domain/auth"
	"github.com/yanqian/closet-stylist/internal/domain/closet"
	apperrors "github.com/yanqian/closet-stylist/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	authSvc   auth.Service
	closetSvc closet.Service
	authCfg   auth.Config
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(authSvc auth.Service, closetSvc closet.Service, authCfg auth.Config, logger *slog.Logger) *Handler {
	return &Handler{
		authSvc:   authSvc,
		closetSvc: closetSvc,
		authCfg:   authCfg,
		logger:    logger.With("component", "http.handler"),
	}
}

type addGarmentRequest struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Tags      []string `json:"tags"`
	ColorHex  string   `json:"colorHex"`
	Photo     []byte   `json:"photo"`
	PhotoMime string   `json:"photoMime"`
}

type updateGarmentRequest struct {
	Name      *string  `json:"name"`
	Type      *string  `json:"type"`
	ColorHex  *string  `json:"colorHex"`
	ColorName *string  `json:"colorName"`
	Tags      []string `json:"tags"`
}

type updateProfileRequest struct {
	BodyType        *string  `json:"bodyType"`
	Undertone       *string  `json:"undertone"`
	PreferredStyles []string `json:"preferredStyles"`
	FavoriteColors  []string `json:"favoriteColors"`
	DislikedColors  []string `json:"dislikedColors"`
	Formality       *int     `json:"formality"`
}

// AddGarment registers a new wardrobe item.
func (h *Handler) AddGarment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req addGarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	garment, err := h.closetSvc.AddGarment(c.Request.Context(), userID, closet.AddGarmentRequest{
		Name:      req.Name,
		Type:      req.Type,
		Tags:      req.Tags,
		ColorHex:  req.ColorHex,
		Photo:     req.Photo,
		PhotoMime: req.PhotoMime,
	})
	if err != nil {
		abortWithError(c, closetError(err))
		return
	}
	c.JSON(http.StatusCreated, garment)
}

// ListGarments returns the wardrobe in creation order.
func (h *Handler) ListGarments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	garments, err := h.closetSvc.ListGarments(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, closetError(err))
		return
	}
	if garments == nil {
		garments = []closet.Garment{}
	}
	c.JSON(http.StatusOK, gin.H{"garments": garments})
}

// GetGarment returns a single garment.
func (h *Handler) GetGarment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := garmentID(c)
	if !ok {
		return
	}
	garment, err := h.closetSvc.GetGarment(c.Request.Context(), userID, id)
	if err != nil {
		abortWithError(c, closetError(err))
		return
	}
	c.JSON(http.StatusOK, garment)
}

// UpdateGarment applies partial edits to a garment.
func (h *Handler) UpdateGarment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := garmentID(c)
	if !ok {
		return
	}
	var req updateGarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	garment, err := h.closetSvc.UpdateGarment(c.Request.Context(), userID, id, closet.UpdateGarmentRequest{
		Name:      req.Name,
		Type:      req.Type,
		ColorHex:  req.ColorHex,
		ColorName: req.ColorName,
		Tags:      req.Tags,
	})
	if err != nil {
		abortWithError(c, closetError(err))
		return
	}
	c.JSON(http.StatusOK, garment)
}

// DeleteGarment removes a garment and its photo.
func (h *Handler) DeleteGarment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := garmentID(c)
	if !ok {
		return
	}
	if err := h.closetSvc.DeleteGarment(c.Request.Context(), userID, id); err != nil {
		abortWithError(c, closetError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SimilarGarments returns the closest color matches for a garment.
func (h *Handler) SimilarGarments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := garmentID(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be a positive integer", err))
			return
		}
		limit = parsed
	}
	matches, err := h.closetSvc.SimilarGarments(c.Request.Context(), userID, id, limit)
	if err != nil {
		abortWithError(c, closetError(err))
		return
	}
	if matches == nil {
		matches = []closet.SimilarGarment{}
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// GetProfile returns the user's style profile, defaulted when unset.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	profile, err := h.closetSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, closetError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies partial style profile edits.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	profile, err := h.closetSvc.UpdateProfile(c.Request.Context(), userID, closet.UpdateProfileRequest{
		BodyType:        req.BodyType,
		Undertone:       req.Undertone,
		PreferredStyles: req.PreferredStyles,
		FavoriteColors:  req.FavoriteColors,
		DislikedColors:  req.DislikedColors,
		Formality:       req.Formality,
	})
	if err != nil {
		abortWithError(c, closetError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ResetProfile restores the default style profile.
func (h *Handler) ResetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.closetSvc.ResetProfile(c.Request.Context(), userID); err != nil {
		abortWithError(c, closetError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SuggestOutfits runs the matching engine over the user's wardrobe.
func (h *Handler) SuggestOutfits(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	resp, err := h.closetSvc.SuggestOutfits(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, closetError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func currentUserID(c *gin.Context) (int64, bool) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth claims", nil))
		return 0, false
	}
	return claims.UserID, true
}

func garmentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid garment id", err))
		return uuid.UUID{}, false
	}
	return id, true
}

func closetError(err error) *HTTPError {
	status := http.StatusInternalServerError
	code := "closet_failed"
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "garment_not_found"):
		status = http.StatusNotFound
		code = "garment_not_found"
	case apperrors.IsCode(err, "color_extract_error"):
		status = http.StatusBadGateway
		code = "color_extract_failed"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
