package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"decor-golang/internal/storage"
)

type CatalogStorage interface {
	GetDecorationTechniques(ctx context.Context, companyID string) ([]storage.DecorationTechnique, error)
	GetDecorationPlacements(ctx context.Context, companyID string) ([]storage.DecorationPlacement, error)
	GetDecorationUpcharges(ctx context.Context, companyID, techniqueID string) ([]storage.DecorationUpcharge, error)
}

type TechniqueWithUpcharges struct {
	storage.DecorationTechnique
	Upcharges []storage.DecorationUpcharge `json:"upcharges"`
}

// Catalog is everything a company offers for decorating line items.
type Catalog struct {
	CompanyID  string                        `json:"companyId"`
	Techniques []TechniqueWithUpcharges      `json:"techniques"`
	Placements []storage.DecorationPlacement `json:"placements"`
}

type Service struct {
	storage CatalogStorage
}

func NewService(storage CatalogStorage) *Service {
	return &Service{storage: storage}
}

// Catalog loads techniques and placements in parallel, then the upcharges of
// every technique.
func (s *Service) Catalog(ctx context.Context, companyID string) (*Catalog, error) {
	const op = "service.catalog.Catalog"

	var (
		techniques []storage.DecorationTechnique
		placements []storage.DecorationPlacement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		techniques, err = s.storage.GetDecorationTechniques(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		placements, err = s.storage.GetDecorationPlacements(gctx, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := &Catalog{
		CompanyID:  companyID,
		Techniques: make([]TechniqueWithUpcharges, len(techniques)),
		Placements: placements,
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, t := range techniques {
		i, t := i, t
		out.Techniques[i].DecorationTechnique = t
		g.Go(func() error {
			upcharges, err := s.storage.GetDecorationUpcharges(gctx, companyID, t.ID)
			if err != nil {
				return fmt.Errorf("technique %s: %w", t.ID, err)
			}
			out.Techniques[i].Upcharges = upcharges
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: upcharges: %w", op, err)
	}

	return out, nil
}
