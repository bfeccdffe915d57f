package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/roomee/roomee-services/api/internal/interfaces/http/common"
	publicapp "github.com/roomee/roomee-services/api/internal/public/application"
	publicdomain "github.com/roomee/roomee-services/api/internal/public/domain"
)

func (h *Handler) mandatoryQuestionIDs() []string {
	return h.surveys.MandatoryQuestionIDs()
}

func (h *Handler) profileGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		profile, err := h.profiles.Get(ctx, user.ID)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "profile not found")
				return
			}
			h.logger.Printf("profile fetch failed user=%s err=%v", user.ID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load profile")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildProfileResponse(*profile, h.mandatoryQuestionIDs()))
	}
}

func (h *Handler) profileUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req profileRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		cmd := publicapp.UpdateProfileCommand{
			FullName:            req.FullName,
			Age:                 req.Age,
			Pronouns:            req.Pronouns,
			RelationshipStatus:  req.RelationshipStatus,
			Occupation:          req.Occupation,
			Location:            req.Location,
			PreferredAreas:      req.PreferredAreas,
			Bio:                 req.Bio,
			LanguagesSpoken:     req.LanguagesSpoken,
			CulturalPreferences: req.CulturalPreferences,
			DietaryRestrictions: req.DietaryRestrictions,
			MobilityNeeds:       req.MobilityNeeds,
			EmergencyContact:    publicdomain.EmergencyContact(req.EmergencyContact),
			SafetyPreferences:   publicdomain.SafetyPreferences(req.SafetyPreferences),
			Privacy:             publicdomain.PrivacySettings(req.Privacy),
			BedType:             req.RoomPreferences.BedType,
			FloorLevel:          req.RoomPreferences.FloorLevel,
			Furnished:           req.RoomPreferences.Furnished,
			PrivateBathroom:     req.RoomPreferences.PrivateBathroom,
			BudgetMin:           req.RoomPreferences.BudgetMin,
			BudgetMax:           req.RoomPreferences.BudgetMax,
			MoveInDate:          req.RoomPreferences.MoveInDate,
			LeaseDuration:       req.RoomPreferences.LeaseDuration,
			Amenities:           req.RoomPreferences.Amenities,
		}

		profile, err := h.profiles.Update(ctx, user.ID, cmd)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildProfileResponse(*profile, h.mandatoryQuestionIDs()))
	}
}
