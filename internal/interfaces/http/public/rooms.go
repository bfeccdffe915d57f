package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/roomee/roomee-services/api/internal/interfaces/http/common"
	publicapp "github.com/roomee/roomee-services/api/internal/public/application"
	publicdomain "github.com/roomee/roomee-services/api/internal/public/domain"
)

func (h *Handler) roomListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		maxRent, _ := common.ParsePositiveInt(query.Get("maxRent"), 0)
		filter := publicapp.RoomFilter{
			Location: strings.TrimSpace(query.Get("location")),
			MaxRent:  maxRent,
		}

		rooms, err := h.rooms.List(ctx, filter)
		if err != nil {
			h.logger.Printf("room list fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load rooms")
			return
		}

		items := make([]roomResponse, 0, len(rooms))
		for _, room := range rooms {
			items = append(items, buildRoomResponse(room))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"rooms": items})
	}
}

func (h *Handler) roomCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req roomCreateRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Photos) > common.MaxRoomPhotoCount {
			common.WriteError(h.logger, w, http.StatusBadRequest, "too many photos")
			return
		}

		var coordinates *publicdomain.Coordinates
		if req.Lat != nil && req.Lng != nil {
			coordinates = &publicdomain.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
		}

		room, err := h.rooms.Create(ctx, user.ID, publicapp.CreateRoomCommand{
			Title:           req.Title,
			Description:     req.Description,
			Location:        req.Location,
			Coordinates:     coordinates,
			Photos:          req.Photos,
			BedType:         req.BedType,
			Furnished:       req.Furnished,
			PrivateBathroom: req.PrivateBathroom,
			Rent:            req.Rent,
			Utilities: publicdomain.Utilities{
				Included:   req.UtilitiesIncl,
				Additional: req.UtilitiesAdd,
			},
			Amenities:      req.Amenities,
			HouseRules:     req.HouseRules,
			FloorLevel:     req.FloorLevel,
			SafetyFeatures: req.SafetyFeatures,
			AvailableFrom:  req.AvailableFrom,
			AvailableUntil: req.AvailableUntil,
		})
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildRoomResponse(*room))
	}
}

func (h *Handler) roomSetActiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		roomID := strings.TrimSpace(chi.URLParam(r, "id"))
		if roomID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "room id is required")
			return
		}

		var req roomSetActiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := h.rooms.SetActive(ctx, roomID, user.ID, req.Active); err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "room not found")
				return
			}
			h.logger.Printf("room toggle failed id=%s err=%v", roomID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to update room")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
