package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/ai"
	"wayfare/internal/domain"
	"wayfare/internal/middleware"
	"wayfare/internal/port"
	"wayfare/internal/service"
)

// AIHandler handles AI import and suggestion endpoints.
type AIHandler struct {
	aiService   service.AIService
	tripService service.TripService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(aiService service.AIService, tripService service.TripService) *AIHandler {
	return &AIHandler{aiService: aiService, tripService: tripService}
}

// imagePayload is one uploaded image, base64-encoded by the client.
type imagePayload struct {
	Data        string `json:"data" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

func decodeImages(payloads []imagePayload) ([]port.ImageAttachment, error) {
	images := make([]port.ImageAttachment, 0, len(payloads))
	for _, p := range payloads {
		if !domain.AllowedImageTypes[p.ContentType] {
			return nil, domain.ErrUnsupportedImageType
		}
		data, err := base64.StdEncoding.DecodeString(p.Data)
		if err != nil {
			return nil, err
		}
		images = append(images, port.ImageAttachment{Data: data, ContentType: p.ContentType})
	}
	return images, nil
}

// Analyze handles POST /api/v1/trip/ai/analyze
func (h *AIHandler) Analyze(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var req struct {
		Target string         `json:"target" binding:"required"`
		Extra  string         `json:"extra"`
		Images []imagePayload `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "target is required")
		return
	}

	target := ai.ImportTarget(req.Target)
	if !ai.ValidImportTargets[target] {
		RespondError(c, http.StatusBadRequest, "INVALID_TARGET", "target must be one of: restaurant, highlight, hotel, flight")
		return
	}
	if len(req.Images) == 0 && req.Extra == "" {
		RespondError(c, http.StatusBadRequest, "EMPTY_REQUEST", "provide images or text to analyze")
		return
	}

	images, err := decodeImages(req.Images)
	if err != nil {
		if err == domain.ErrUnsupportedImageType {
			HandleError(c, err)
			return
		}
		RespondError(c, http.StatusBadRequest, "INVALID_IMAGE", "image data must be base64 encoded")
		return
	}

	results, err := h.aiService.AnalyzeImport(c.Request.Context(), &service.AnalyzeInput{
		TripID: tripID,
		Target: target,
		Extra:  req.Extra,
		Images: images,
	})
	if err != nil {
		HandleAIError(c, err)
		return
	}

	RespondOK(c, gin.H{"results": results})
}

// SaveImports handles POST /api/v1/trip/ai/imports
func (h *AIHandler) SaveImports(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var req struct {
		Target  string            `json:"target" binding:"required"`
		Results []ai.ImportResult `json:"results" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "target and results are required")
		return
	}

	target := ai.ImportTarget(req.Target)
	if !ai.ValidImportTargets[target] {
		RespondError(c, http.StatusBadRequest, "INVALID_TARGET", "target must be one of: restaurant, highlight, hotel, flight")
		return
	}

	saved, err := h.aiService.SaveImports(c.Request.Context(), tripID, target, req.Results)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"saved": saved})
}

// Suggest handles POST /api/v1/trip/ai/suggest
func (h *AIHandler) Suggest(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var req struct {
		Kind string `json:"kind" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "kind is required")
		return
	}

	kind := ai.SuggestionKind(req.Kind)
	if !ai.ValidSuggestionKinds[kind] {
		RespondError(c, http.StatusBadRequest, "INVALID_KIND", "kind must be one of: restaurant, highlight, passport-stamp")
		return
	}

	suggestions, err := h.aiService.Suggest(c.Request.Context(), &service.SuggestInput{
		TripID: tripID,
		Kind:   kind,
	})
	if err != nil {
		HandleAIError(c, err)
		return
	}

	RespondOK(c, gin.H{"suggestions": suggestions})
}

// SaveSuggestions handles POST /api/v1/trip/ai/suggestions
func (h *AIHandler) SaveSuggestions(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var req struct {
		Suggestions []ai.Suggestion `json:"suggestions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "suggestions are required")
		return
	}

	saved, err := h.aiService.SaveSuggestions(c.Request.Context(), tripID, req.Suggestions)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"saved": saved})
}

// GetAIConfig handles GET /api/v1/trip/ai/config. The API key never leaves
// the server; only whether one is set.
func (h *AIHandler) GetAIConfig(c *gin.Context) {
	trip, err := middleware.GetTrip(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	RespondOK(c, gin.H{
		"provider":   trip.AIProvider,
		"model":      trip.AIModel,
		"configured": trip.AIAPIKey != "",
	})
}

// SetAIConfig handles PUT /api/v1/trip/ai/config. Admin PIN required; the
// settings are replaced wholesale.
func (h *AIHandler) SetAIConfig(c *gin.Context) {
	trip, err := middleware.GetTrip(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var req struct {
		AdminPIN string `json:"admin_pin" binding:"required"`
		Provider string `json:"provider"`
		Model    string `json:"model"`
		APIKey   string `json:"api_key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "admin_pin is required")
		return
	}

	if err := h.tripService.VerifyAdminPIN(c.Request.Context(), trip.ID, req.AdminPIN); err != nil {
		HandleError(c, err)
		return
	}

	err = h.tripService.SetAIConfig(c.Request.Context(), &service.SetAIConfigInput{
		TripID:   trip.ID,
		Provider: req.Provider,
		Model:    req.Model,
		APIKey:   req.APIKey,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"provider": req.Provider, "model": req.Model, "configured": req.APIKey != ""})
}
