package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/geofence"
	"github.com/clockwise-hq/attendance-backend-go/internal/handler/http/response"
)

type ConfigHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type configHandlerImpl struct {
	geofenceService geofence.Service
}

func NewConfigHandler(geofenceService geofence.Service) ConfigHandler {
	return &configHandlerImpl{geofenceService: geofenceService}
}

// Get implements ConfigHandler.
func (h *configHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.geofenceService.GetConfig(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Geofence configuration fetched", cfg)
}

// Update implements ConfigHandler.
func (h *configHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req geofence.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode config update", "error", err)
		response.BadRequest(w, "Invalid request body")
		return
	}

	actor := req.UpdatedBy
	if actor == "" {
		actor = "admin"
	}

	cfg, err := h.geofenceService.UpdateConfig(r.Context(), req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Geofence configuration updated", cfg)
}
