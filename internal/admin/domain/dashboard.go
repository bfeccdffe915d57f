package domain

import "time"

// DashboardStats is the operational snapshot shown on the admin overview.
type DashboardStats struct {
	TotalUsers           int
	VerifiedUsers        int
	ActiveMatches        int
	SuccessfulMatches    int
	AvailableRooms       int
	PendingVerifications int
	GeneratedAt          time.Time
}

// VerificationRate returns the share of verified members, 0 when the
// service has no members yet.
func (s DashboardStats) VerificationRate() float64 {
	if s.TotalUsers == 0 {
		return 0
	}
	return float64(s.VerifiedUsers) / float64(s.TotalUsers)
}
