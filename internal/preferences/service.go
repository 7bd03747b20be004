package preferences

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type logoStore interface {
	GetLogo(ctx context.Context, userID string) (string, error)
	SetLogo(ctx context.Context, userID, key string) error
}

type Service struct {
	store logoStore
}

func NewService(store logoStore) *Service {
	return &Service{
		store: store,
	}
}

// Logo returns the selected logo, falling back to the default when
// nothing (or a no longer known key) is stored.
func (s *Service) Logo(ctx context.Context, userID string) (Logo, error) {
	key, err := s.store.GetLogo(ctx, userID)
	if err != nil {
		return Logo{}, err
	}

	logo, err := LogoFor(key)
	if err != nil {
		if key != "" {
			log.Warnf("stored logo preference [%s] for user %s unknown, using default", key, userID)
		}
		return LogoFor(DefaultLogo)
	}

	return logo, nil
}

func (s *Service) SetLogo(ctx context.Context, userID, key string) (Logo, error) {
	logo, err := LogoFor(key)
	if err != nil {
		return Logo{}, err
	}

	if err := s.store.SetLogo(ctx, userID, key); err != nil {
		return Logo{}, err
	}

	return logo, nil
}
