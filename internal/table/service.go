package table

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

const qrService = "https://api.qrserver.com/v1/create-qr-code/"

type Service struct {
	repo Repository

	// publicBaseURL is what the QR code resolves to on a customer's phone.
	publicBaseURL string
}

func NewService(repo Repository, publicBaseURL string) *Service {
	return &Service{repo: repo, publicBaseURL: publicBaseURL}
}

func (s *Service) Create(ctx context.Context, number string, seats int, location string) (*Table, error) {
	if number == "" {
		return nil, errors.New("table number is required")
	}
	if seats < 1 {
		return nil, errors.New("table must have at least 1 seat")
	}

	t := &Table{
		ID:       uuid.New().String(),
		Number:   number,
		Seats:    seats,
		Location: location,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]Table, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// GenerateQR builds a QR image URL pointing customers at the table's menu
// and stores it on the table row.
func (s *Service) GenerateQR(ctx context.Context, id string) (*Table, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tableURL := fmt.Sprintf("%s/menu?table=%s", s.publicBaseURL, url.QueryEscape(t.Number))
	qrURL := fmt.Sprintf(
		"%s?size=200x200&data=%s",
		qrService,
		url.QueryEscape(tableURL),
	)

	if err := s.repo.SetQRCodeURL(ctx, id, qrURL); err != nil {
		return nil, err
	}
	t.QRCodeURL = qrURL
	return t, nil
}
