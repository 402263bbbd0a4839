package catalog

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/wooldev/trolley-api/internal/resource"
)

const (
	productsCacheKey = "catalog:products"
	historyCacheKey  = "catalog:history"
)

// Source provides the catalog and shopper history snapshots.
type Source interface {
	Products(ctx context.Context) ([]resource.Product, error)
	ShopperHistory(ctx context.Context) ([]resource.ShopperHistory, error)
}

// Service answers sorted-catalog queries, caching resource snapshots between
// requests.
type Service struct {
	source Source
	cache  Cache
	logger zerolog.Logger
}

// ServiceConfig collects Service dependencies.
type ServiceConfig struct {
	Source Source
	Cache  Cache
	Logger zerolog.Logger
}

// NewService validates the configuration and builds a Service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Source == nil {
		return nil, errors.New("catalog: source is required")
	}
	return &Service{
		source: cfg.Source,
		cache:  cfg.Cache,
		logger: cfg.Logger,
	}, nil
}

// SortedProducts returns the catalog ordered by the requested option.
// Recommended ordering consults shopper history, every other option sorts the
// catalog snapshot directly.
func (s *Service) SortedProducts(ctx context.Context, opt Option) ([]resource.Product, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}
	if opt != Recommended {
		return SortProducts(products, opt), nil
	}
	histories, err := s.histories(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(products, histories), nil
}

func (s *Service) products(ctx context.Context) ([]resource.Product, error) {
	var cached []resource.Product
	if err := s.cache.GetJSON(ctx, productsCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("key", productsCacheKey).Msg("catalog cache read failed")
	}

	products, err := s.source.Products(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, productsCacheKey, products); err != nil {
		s.logger.Warn().Err(err).Str("key", productsCacheKey).Msg("catalog cache write failed")
	}
	return products, nil
}

func (s *Service) histories(ctx context.Context) ([]resource.ShopperHistory, error) {
	var cached []resource.ShopperHistory
	if err := s.cache.GetJSON(ctx, historyCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("key", historyCacheKey).Msg("catalog cache read failed")
	}

	histories, err := s.source.ShopperHistory(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, historyCacheKey, histories); err != nil {
		s.logger.Warn().Err(err).Str("key", historyCacheKey).Msg("catalog cache write failed")
	}
	return histories, nil
}
