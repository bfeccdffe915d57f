package identity

import (
	"fmt"
	"strings"
	"time"
)

// DocumentType enumerates the government ID kinds members may submit.
type DocumentType string

const (
	DocumentAadhar         DocumentType = "aadhar"
	DocumentPassport       DocumentType = "passport"
	DocumentVoterID        DocumentType = "voter_id"
	DocumentDrivingLicense DocumentType = "driving_license"
)

var documentTypes = []DocumentType{
	DocumentAadhar,
	DocumentPassport,
	DocumentVoterID,
	DocumentDrivingLicense,
}

func NewDocumentType(value string) (DocumentType, error) {
	candidate := DocumentType(strings.TrimSpace(strings.ToLower(value)))
	for _, t := range documentTypes {
		if candidate == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown document type: %s", value)
}

func (t DocumentType) String() string { return string(t) }

// MinOCRConfidence is the floor below which an extraction is treated as
// unreadable and the document cannot pass verification.
const MinOCRConfidence = 0.8

// Document is a member-submitted ID record. The OCR pipeline runs outside
// this service; the client submits its extracted claim and confidence, and
// admins review the record afterwards.
type Document struct {
	ID             string
	UserID         string
	Type           DocumentType
	Number         string
	HolderName     string
	DateOfBirth    *time.Time
	OCRConfidence  float64
	Verified       bool
	VerifiedAt     *time.Time
	RejectedReason string
	SubmittedAt    time.Time
}

// Valid reports whether the document clears the verification gate: the
// record has been verified, carries a holder name and number, and the OCR
// extraction met the confidence floor.
func (d Document) Valid() bool {
	if !d.Verified {
		return false
	}
	if strings.TrimSpace(d.HolderName) == "" || strings.TrimSpace(d.Number) == "" {
		return false
	}
	return d.OCRConfidence >= MinOCRConfidence
}
