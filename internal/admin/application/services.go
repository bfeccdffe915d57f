package application

import (
	"context"
	"fmt"
	"time"

	admindomain "github.com/roomee/roomee-services/api/internal/admin/domain"
	"github.com/roomee/roomee-services/api/internal/identity"
)

// StatsRepository aggregates the counters shown on the admin dashboard.
type StatsRepository interface {
	Collect(ctx context.Context) (admindomain.DashboardStats, error)
}

// VerificationRepository exposes admin review operations over submitted
// identity documents.
type VerificationRepository interface {
	FindPending(ctx context.Context, paging Paging) ([]identity.Document, error)
	Review(ctx context.Context, documentID string, approve bool, reason string, reviewedAt time.Time) (*identity.Document, error)
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
}

// DashboardService serves the admin overview.
type DashboardService struct {
	stats StatsRepository
	now   func() time.Time
}

func NewDashboardService(stats StatsRepository) *DashboardService {
	return &DashboardService{stats: stats, now: time.Now}
}

func (s *DashboardService) Overview(ctx context.Context) (admindomain.DashboardStats, error) {
	stats, err := s.stats.Collect(ctx)
	if err != nil {
		return admindomain.DashboardStats{}, err
	}
	stats.GeneratedAt = s.now().UTC()
	return stats, nil
}

// VerificationService reviews member-submitted identity documents.
type VerificationService struct {
	verifications VerificationRepository
	now           func() time.Time
}

func NewVerificationService(verifications VerificationRepository) *VerificationService {
	return &VerificationService{verifications: verifications, now: time.Now}
}

func (s *VerificationService) ListPending(ctx context.Context, paging Paging) ([]identity.Document, error) {
	if paging.Limit <= 0 || paging.Limit > 100 {
		paging.Limit = 50
	}
	if paging.Page < 1 {
		paging.Page = 1
	}
	return s.verifications.FindPending(ctx, paging)
}

// Review approves or rejects a document. Rejections must carry a reason so
// the member knows what to resubmit.
func (s *VerificationService) Review(ctx context.Context, documentID string, approve bool, reason string) (*identity.Document, error) {
	if !approve && reason == "" {
		return nil, fmt.Errorf("a rejection reason is required")
	}
	if approve {
		reason = ""
	}
	return s.verifications.Review(ctx, documentID, approve, reason, s.now().UTC())
}
