package handler

import (
	"encoding/json"
	"net/http"

	"travelease/internal/vehicles/repository"
	"travelease/internal/vehicles/service"
	apperrors "travelease/pkg/errors"
	httputil "travelease/pkg/http"
	"travelease/pkg/logger"
	"travelease/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type VehicleHandler struct {
	service service.VehicleService
	log     *logger.Logger
}

func NewVehicleHandler(service service.VehicleService, log *logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		log:     log,
	}
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	filter := repository.ListFilter{
		Category: query.Get("category"),
		Location: query.Get("location"),
		Sort:     query.Get("sort"),
	}

	vehicles, err := h.service.List(r.Context(), filter)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, vehicles); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	vehicle, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	// A nil vehicle serializes as null; callers treat that as "not found".
	if vehicle == nil {
		if err := httputil.WriteSuccess(w, nil); err != nil {
			h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
		}
		return
	}

	if err := httputil.WriteSuccess(w, vehicle); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *VehicleHandler) Add(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var vehicle model.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		if writeErr := httputil.WriteMutationError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Add", "error", writeErr)
		}
		return
	}

	id, err := h.service.Add(r.Context(), &vehicle)
	if err != nil {
		if writeErr := httputil.WriteMutationError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Add", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMutation(w, httputil.MutationResponse{
		Success:    true,
		Message:    "Vehicle added successfully",
		InsertedID: id,
	}); err != nil {
		h.log.Error("failed to write mutation response", "handler", "Add", "error", err)
	}
}

func (h *VehicleHandler) ListByOwner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")

	vehicles, err := h.service.GetByOwner(r.Context(), email)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListByOwner", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, vehicles); err != nil {
		h.log.Error("failed to write success response", "handler", "ListByOwner", "error", err)
	}
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		if writeErr := httputil.WriteMutationError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := h.service.Update(r.Context(), id, fields); err != nil {
		if writeErr := httputil.WriteMutationError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMutation(w, httputil.MutationResponse{
		Success: true,
		Message: "Vehicle updated successfully",
	}); err != nil {
		h.log.Error("failed to write mutation response", "handler", "Update", "error", err)
	}
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteMutationError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMutation(w, httputil.MutationResponse{
		Success: true,
		Message: "Vehicle deleted successfully",
	}); err != nil {
		h.log.Error("failed to write mutation response", "handler", "Delete", "error", err)
	}
}

func (h *VehicleHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/vehicles", h.List)
	router.GET("/vehicle/:id", h.GetByID)
	router.POST("/add-vehicle", h.Add)
	router.GET("/my-vehicles/:email", h.ListByOwner)
	router.PUT("/update-vehicle/:id", h.Update)
	router.DELETE("/delete-vehicle/:id", h.Delete)
}
