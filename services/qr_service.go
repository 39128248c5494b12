package services

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// QRService renders QR PNGs pointing at the public menu of a branch.
type QRService struct {
	baseURL string
}

// NewQRService builds a QR service. baseURL is the public site root, e.g.
// "https://savoria.restaurant" — read from QR_BASE_URL when empty.
func NewQRService(baseURL string) (*QRService, error) {
	if baseURL == "" {
		baseURL = os.Getenv("QR_BASE_URL")
	}
	if baseURL == "" {
		return nil, errors.New("QR base URL not configured")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid QR base URL: %w", err)
	}
	return &QRService{baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// MenuURL builds the public menu URL encoded into a branch QR code. A table
// number, when present, is carried as a query parameter so orders can be
// attributed to the table.
func (s *QRService) MenuURL(branchSlug string, tableNumber *int) string {
	target := fmt.Sprintf("%s/menu/%s", s.baseURL, branchSlug)
	if tableNumber != nil {
		target = fmt.Sprintf("%s?table=%d", target, *tableNumber)
	}
	return target
}

// GeneratePNG renders the QR code as PNG bytes. Size is the square pixel
// dimension; medium error recovery keeps codes scannable when printed small.
func (s *QRService) GeneratePNG(target string, size int) ([]byte, error) {
	if target == "" {
		return nil, errors.New("target URL cannot be empty")
	}
	if size <= 0 {
		size = 512
	}
	png, err := qrcode.Encode(target, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
