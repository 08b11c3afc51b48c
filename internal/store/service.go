package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
)

type Service struct {
	repo    Repository
	storage catalog.Storage
}

func NewService(repo Repository, storage catalog.Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// Get falls back to the default branding when nothing has been saved yet.
func (s *Service) Get(ctx context.Context) (*Store, error) {
	store, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return DefaultStore(), nil
		}
		return nil, err
	}
	return store, nil
}

// Update applies a partial branding edit: empty fields keep their current
// value, mirroring how the admin panel submits one setting at a time.
func (s *Service) Update(ctx context.Context, update *Store) (*Store, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		current.Name = update.Name
	}
	if update.Logo != "" {
		current.Logo = update.Logo
	}
	mergeTheme(&current.Theme, update.Theme)

	if err := s.repo.Upsert(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) SetLogo(
	ctx context.Context,
	body io.Reader,
	filename string,
	contentType string,
) (*Store, error) {

	if s.storage == nil {
		return nil, catalog.ErrStorageNotConfigured
	}
	if err := catalog.ValidateImageExtension(filename); err != nil {
		return nil, err
	}

	key := fmt.Sprintf(
		"branding/logo-%s%s",
		uuid.New().String(),
		strings.ToLower(filepath.Ext(filename)),
	)

	url, err := s.storage.Upload(ctx, key, body, contentType)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, &Store{Logo: url})
}

func mergeTheme(dst *Theme, src Theme) {
	if src.PrimaryColor != "" {
		dst.PrimaryColor = src.PrimaryColor
	}
	if src.SecondaryColor != "" {
		dst.SecondaryColor = src.SecondaryColor
	}
	if src.AccentColor != "" {
		dst.AccentColor = src.AccentColor
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.BorderRadius != "" {
		dst.BorderRadius = src.BorderRadius
	}
}
