package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roomee/roomee-services/api/internal/identity"
	"github.com/roomee/roomee-services/api/internal/metrics"
)

// SubmitDocumentCommand is the client's OCR-extracted claim about an ID
// document. The OCR pipeline itself runs on the device; the service stores
// the claim for admin review.
type SubmitDocumentCommand struct {
	Type          string
	Number        string
	HolderName    string
	DateOfBirth   *time.Time
	OCRConfidence float64
}

// IdentityService stores submitted documents and implements Verifier on top
// of the latest one per member.
type IdentityService struct {
	documents DocumentRepository
	now       func() time.Time
}

func NewIdentityService(documents DocumentRepository) *IdentityService {
	return &IdentityService{documents: documents, now: time.Now}
}

// Submit records a document for review. Low-confidence extractions are
// stored too; they simply can never pass the verification gate.
func (s *IdentityService) Submit(ctx context.Context, userID string, cmd SubmitDocumentCommand) (*identity.Document, error) {
	docType, err := identity.NewDocumentType(cmd.Type)
	if err != nil {
		return nil, err
	}
	if cmd.Number == "" {
		return nil, fmt.Errorf("document number is required")
	}
	if cmd.HolderName == "" {
		return nil, fmt.Errorf("holder name is required")
	}
	if cmd.OCRConfidence < 0 || cmd.OCRConfidence > 1 {
		return nil, fmt.Errorf("ocr confidence must be between 0 and 1")
	}

	doc := &identity.Document{
		UserID:        userID,
		Type:          docType,
		Number:        cmd.Number,
		HolderName:    cmd.HolderName,
		DateOfBirth:   cmd.DateOfBirth,
		OCRConfidence: cmd.OCRConfidence,
		SubmittedAt:   s.now().UTC(),
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	metrics.DocumentSubmissions.WithLabelValues(docType.String()).Inc()
	return doc, nil
}

// Latest returns the member's most recent document.
func (s *IdentityService) Latest(ctx context.Context, userID string) (*identity.Document, error) {
	return s.documents.LatestByUser(ctx, userID)
}

// IsVerified reports whether the member's latest document clears the
// verification gate. A member with no document is simply unverified.
func (s *IdentityService) IsVerified(ctx context.Context, userID string) (bool, error) {
	doc, err := s.documents.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return doc.Valid(), nil
}
