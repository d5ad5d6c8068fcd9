package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	pkgcache "github.com/ghuser/biblioteca/pkg/cache"
	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/pkg/logger"
	"github.com/ghuser/biblioteca/pkg/telemetry"
	magazinedomain "github.com/ghuser/biblioteca/services/magazine/domain"
	"github.com/ghuser/biblioteca/services/magazine/domain/repositories"
	domainsvcs "github.com/ghuser/biblioteca/services/magazine/domain/services"
)

const CachePrefix = "catalog:revista"

var _ catalog.Service[MagazineDTO] = (*MagazineService)(nil)

// MagazineService implements the magazine catalog.
type MagazineService struct {
	repo    repositories.MagazineRepository
	cache   *pkgcache.EntryCache[MagazineDTO]
	metrics *telemetry.CatalogMetrics
	log     logger.Logger
	now     func() time.Time
	derived catalog.Invalidators
}

func NewMagazineService(
	repo repositories.MagazineRepository,
	cache *pkgcache.EntryCache[MagazineDTO],
	metrics *telemetry.CatalogMetrics,
	log logger.Logger,
) *MagazineService {
	if log == nil {
		log = logger.Discard()
	}
	return &MagazineService{repo: repo, cache: cache, metrics: metrics, log: log, now: time.Now}
}

func (s *MagazineService) FindAll(ctx context.Context) ([]MagazineDTO, error) {
	return s.find(ctx, repositories.Filter{})
}

func (s *MagazineService) FindByID(ctx context.Context, id int64) (MagazineDTO, bool, error) {
	key := strconv.FormatInt(id, 10)
	if s.cache != nil {
		dto, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.WarnContext(ctx, "magazine cache read failed", "revista_id", id, "error", err)
		}
		s.metrics.CacheLookup(ctx, CachePrefix, hit)
		if hit {
			return dto, true, nil
		}
	}

	m, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, magazinedomain.ErrMagazineNotFound) {
		return MagazineDTO{}, false, nil
	}
	if err != nil {
		return MagazineDTO{}, false, fmt.Errorf("get magazine: %w", err)
	}
	dto := toDTO(m)
	s.cacheSet(ctx, dto)
	return dto, true, nil
}

func (s *MagazineService) Save(ctx context.Context, dto MagazineDTO) (MagazineDTO, error) {
	m := toModel(dto)
	m.MarkCreated(s.now())
	if err := domainsvcs.ValidateMagazine(m); err != nil {
		return MagazineDTO{}, fmt.Errorf("%w: %w", magazinedomain.ErrInvalidMagazine, err)
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return MagazineDTO{}, fmt.Errorf("save magazine: %w", err)
	}
	s.metrics.Write(ctx, string(catalog.KindMagazine), string(catalog.ActionCreated))
	s.invalidateDerived(ctx)
	s.log.InfoContext(ctx, "revista creada", "revista_id", m.ID)
	return toDTO(m), nil
}

func (s *MagazineService) Update(ctx context.Context, id int64, dto MagazineDTO) (MagazineDTO, error) {
	m := toModel(dto)
	m.ID = id
	m.MarkUpdated(s.now())
	if err := domainsvcs.ValidateMagazine(m); err != nil {
		return MagazineDTO{}, fmt.Errorf("%w: %w", magazinedomain.ErrInvalidMagazine, err)
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return MagazineDTO{}, fmt.Errorf("update magazine: %w", err)
	}
	s.metrics.Write(ctx, string(catalog.KindMagazine), string(catalog.ActionUpdated))
	s.invalidateDerived(ctx)
	out := toDTO(m)
	s.cacheSet(ctx, out)
	return out, nil
}

func (s *MagazineService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete magazine: %w", err)
	}
	s.metrics.Write(ctx, string(catalog.KindMagazine), string(catalog.ActionDeleted))
	s.invalidateDerived(ctx)
	if s.cache != nil {
		if err := s.cache.Delete(ctx, strconv.FormatInt(id, 10)); err != nil {
			s.log.WarnContext(ctx, "magazine cache evict failed", "revista_id", id, "error", err)
		}
	}
	return nil
}

// Search matches titulo, autor, categoria, editorial and issn.
func (s *MagazineService) Search(ctx context.Context, query string) ([]MagazineDTO, error) {
	return s.find(ctx, repositories.Filter{Query: query})
}

func (s *MagazineService) FindByAvailable(ctx context.Context, available bool) ([]MagazineDTO, error) {
	return s.find(ctx, repositories.Filter{Available: &available})
}

func (s *MagazineService) FindByCategory(ctx context.Context, category string) ([]MagazineDTO, error) {
	return s.find(ctx, repositories.Filter{Category: category})
}

func (s *MagazineService) FindByFrequency(ctx context.Context, frequency string) ([]MagazineDTO, error) {
	return s.find(ctx, repositories.Filter{Frequency: frequency})
}

func (s *MagazineService) FindByPublisher(ctx context.Context, publisher string) ([]MagazineDTO, error) {
	return s.find(ctx, repositories.Filter{Publisher: publisher})
}

func (s *MagazineService) FindByAuthor(ctx context.Context, author string) ([]MagazineDTO, error) {
	return s.find(ctx, repositories.Filter{Author: author})
}

func (s *MagazineService) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazine categories: %w", err)
	}
	return cats, nil
}

func (s *MagazineService) CountByAvailability(ctx context.Context) (catalog.Tally, error) {
	t, err := s.repo.CountByAvailability(ctx)
	if err != nil {
		return catalog.Tally{}, fmt.Errorf("count magazines: %w", err)
	}
	return t, nil
}

func (s *MagazineService) find(ctx context.Context, f repositories.Filter) ([]MagazineDTO, error) {
	ms, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find magazines: %w", err)
	}
	return toDTOs(ms), nil
}

// InvalidateOnWrite registers inv to be cleared after every successful write.
// Call it during wiring, before the service handles requests.
func (s *MagazineService) InvalidateOnWrite(inv catalog.Invalidator) {
	s.derived = append(s.derived, inv)
}

func (s *MagazineService) invalidateDerived(ctx context.Context) {
	if err := s.derived.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "magazine derived cache invalidation failed", "error", err)
	}
}

func (s *MagazineService) cacheSet(ctx context.Context, dto MagazineDTO) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, strconv.FormatInt(dto.ID, 10), dto); err != nil {
		s.log.WarnContext(ctx, "magazine cache write failed", "revista_id", dto.ID, "error", err)
	}
}
