package vision

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no API key is set for the vision backend.
var ErrNotConfigured = errors.New("vision API is not configured")

// ParseRequest carries one report image to analyze.
type ParseRequest struct {
	// ImageBase64 is the raw image, base64 encoded, without a data: prefix.
	ImageBase64 string
	// MimeType is the image content type, e.g. "image/jpeg".
	MimeType string
}

// ReportItem is one named measurement extracted from a report.
type ReportItem struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Unit      string `json:"unit"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// Report is the structured result of parsing a medical report image.
type Report struct {
	Date     string       `json:"date"`
	Hospital string       `json:"hospital"`
	Category string       `json:"category"`
	Summary  string       `json:"summary"`
	Items    []ReportItem `json:"items"`
}

// Service proxies report images to an external vision-language API and
// returns the extracted structure. Nothing in the record store depends on it.
type Service interface {
	ParseReport(ctx context.Context, req ParseRequest) (*Report, error)
}
