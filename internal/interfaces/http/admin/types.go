package admin

import (
	"time"

	admindomain "github.com/roomee/roomee-services/api/internal/admin/domain"
	"github.com/roomee/roomee-services/api/internal/identity"
)

type dashboardResponse struct {
	TotalUsers           int       `json:"totalUsers"`
	VerifiedUsers        int       `json:"verifiedUsers"`
	VerificationRate     float64   `json:"verificationRate"`
	ActiveMatches        int       `json:"activeMatches"`
	SuccessfulMatches    int       `json:"successfulMatches"`
	AvailableRooms       int       `json:"availableRooms"`
	PendingVerifications int       `json:"pendingVerifications"`
	GeneratedAt          time.Time `json:"generatedAt"`
}

type verificationResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	Type           string     `json:"type"`
	Number         string     `json:"number"`
	HolderName     string     `json:"holderName"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	OCRConfidence  float64    `json:"ocrConfidence"`
	Verified       bool       `json:"verified"`
	VerifiedAt     *time.Time `json:"verifiedAt,omitempty"`
	RejectedReason string     `json:"rejectedReason,omitempty"`
	SubmittedAt    time.Time  `json:"submittedAt"`
}

type reviewRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

func buildDashboardResponse(stats admindomain.DashboardStats) dashboardResponse {
	return dashboardResponse{
		TotalUsers:           stats.TotalUsers,
		VerifiedUsers:        stats.VerifiedUsers,
		VerificationRate:     stats.VerificationRate(),
		ActiveMatches:        stats.ActiveMatches,
		SuccessfulMatches:    stats.SuccessfulMatches,
		AvailableRooms:       stats.AvailableRooms,
		PendingVerifications: stats.PendingVerifications,
		GeneratedAt:          stats.GeneratedAt,
	}
}

func buildVerificationResponse(doc identity.Document) verificationResponse {
	return verificationResponse{
		ID:             doc.ID,
		UserID:         doc.UserID,
		Type:           doc.Type.String(),
		Number:         doc.Number,
		HolderName:     doc.HolderName,
		DateOfBirth:    doc.DateOfBirth,
		OCRConfidence:  doc.OCRConfidence,
		Verified:       doc.Verified,
		VerifiedAt:     doc.VerifiedAt,
		RejectedReason: doc.RejectedReason,
		SubmittedAt:    doc.SubmittedAt,
	}
}
