package catalog

import (
	"context"

	"github.com/goliatone/go-catalog/pkg/domain"
)

// Preview returns the entire catalog as one nested tree in a single
// traversal, cached as one blob under its own key.
func (s *Service) Preview(ctx context.Context) ([]domain.Menu, error) {
	var menus []domain.Menu
	if s.cache.read(ctx, previewKey, &menus) {
		return menus, nil
	}

	menus, err := s.preview.Preview(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.write(ctx, previewKey, menus)
	return menus, nil
}
