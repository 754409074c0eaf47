package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-property-listing/internal/middleware"
	"go-property-listing/internal/model"
	"go-property-listing/internal/service"
	"go-property-listing/pkg/apierror"
)

type PropertyHandler struct {
	properties *service.PropertyService
}

func NewPropertyHandler(properties *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("authentication required"))
		return
	}

	postedBy, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		writeError(w, apierror.Unauthorized("invalid token subject"))
		return
	}

	var payload model.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body", ""))
		return
	}

	property, err := h.properties.Create(r.Context(), postedBy, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, property, nil)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	property, err := h.properties.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, property, nil)
}

// ListMine returns the authenticated user's own listings.
func (h *PropertyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("authentication required"))
		return
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		writeError(w, apierror.Unauthorized("invalid token subject"))
		return
	}

	properties, err := h.properties.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, properties, nil)
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.properties.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, properties, nil)
}
