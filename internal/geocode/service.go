package geocode

import (
	"context"
	"errors"
	"log/slog"

	apperrors "pvzadmin/pkg/errors"
	"pvzadmin/pkg/logger"
)

// Resolver is the upstream geocoding provider.
type Resolver interface {
	Resolve(ctx context.Context, address string) (Coords, error)
}

// GeocodeService answers address lookups, serving repeated addresses
// from the TTL cache so the upstream provider is hit at most once per
// address per cache window.
type GeocodeService interface {
	Lookup(ctx context.Context, address string) (Coords, error)
}

type geocodeService struct {
	cache    *Cache
	resolver Resolver
	log      *logger.Logger
}

func NewService(cache *Cache, resolver Resolver, log *logger.Logger) GeocodeService {
	return &geocodeService{
		cache:    cache,
		resolver: resolver,
		log:      log,
	}
}

func (s *geocodeService) Lookup(ctx context.Context, address string) (Coords, error) {
	if coords, ok := s.cache.Get(address); ok {
		s.log.Debug("geocode cache hit", slog.String("address", address))
		return coords, nil
	}

	coords, err := s.resolver.Resolve(ctx, address)
	if err != nil {
		if errors.Is(err, ErrNotResolved) {
			return Coords{}, apperrors.NotFound("address")
		}
		s.log.Error("geocoder lookup failed",
			slog.String("address", address),
			slog.String("error", err.Error()))
		return Coords{}, apperrors.BadGateway("geocoding service unavailable", err)
	}

	s.cache.Set(address, coords)
	return coords, nil
}
