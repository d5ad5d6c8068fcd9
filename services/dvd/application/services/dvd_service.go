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
	dvddomain "github.com/ghuser/biblioteca/services/dvd/domain"
	"github.com/ghuser/biblioteca/services/dvd/domain/repositories"
	domainsvcs "github.com/ghuser/biblioteca/services/dvd/domain/services"
)

const CachePrefix = "catalog:dvd"

var _ catalog.Service[DVDDTO] = (*DVDService)(nil)

// DVDService implements the DVD catalog together with its range queries and
// price statistics.
type DVDService struct {
	repo    repositories.DVDRepository
	cache   *pkgcache.EntryCache[DVDDTO]
	metrics *telemetry.CatalogMetrics
	log     logger.Logger
	now     func() time.Time
	derived catalog.Invalidators
}

func NewDVDService(
	repo repositories.DVDRepository,
	cache *pkgcache.EntryCache[DVDDTO],
	metrics *telemetry.CatalogMetrics,
	log logger.Logger,
) *DVDService {
	if log == nil {
		log = logger.Discard()
	}
	return &DVDService{repo: repo, cache: cache, metrics: metrics, log: log, now: time.Now}
}

func (s *DVDService) FindAll(ctx context.Context) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{})
}

func (s *DVDService) FindByID(ctx context.Context, id int64) (DVDDTO, bool, error) {
	key := strconv.FormatInt(id, 10)
	if s.cache != nil {
		dto, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.WarnContext(ctx, "dvd cache read failed", "dvd_id", id, "error", err)
		}
		s.metrics.CacheLookup(ctx, CachePrefix, hit)
		if hit {
			return dto, true, nil
		}
	}

	d, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, dvddomain.ErrDVDNotFound) {
		return DVDDTO{}, false, nil
	}
	if err != nil {
		return DVDDTO{}, false, fmt.Errorf("get dvd: %w", err)
	}
	dto := toDTO(d)
	s.cacheSet(ctx, dto)
	return dto, true, nil
}

func (s *DVDService) Save(ctx context.Context, dto DVDDTO) (DVDDTO, error) {
	d := toModel(dto)
	d.MarkCreated(s.now())
	if err := domainsvcs.ValidateDVD(d); err != nil {
		return DVDDTO{}, fmt.Errorf("%w: %w", dvddomain.ErrInvalidDVD, err)
	}
	if err := s.repo.Save(ctx, d); err != nil {
		return DVDDTO{}, fmt.Errorf("save dvd: %w", err)
	}
	s.metrics.Write(ctx, string(catalog.KindDVD), string(catalog.ActionCreated))
	s.invalidateDerived(ctx)
	s.log.InfoContext(ctx, "dvd creado", "dvd_id", d.ID)
	return toDTO(d), nil
}

func (s *DVDService) Update(ctx context.Context, id int64, dto DVDDTO) (DVDDTO, error) {
	d := toModel(dto)
	d.ID = id
	d.MarkUpdated(s.now())
	if err := domainsvcs.ValidateDVD(d); err != nil {
		return DVDDTO{}, fmt.Errorf("%w: %w", dvddomain.ErrInvalidDVD, err)
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return DVDDTO{}, fmt.Errorf("update dvd: %w", err)
	}
	s.metrics.Write(ctx, string(catalog.KindDVD), string(catalog.ActionUpdated))
	s.invalidateDerived(ctx)
	out := toDTO(d)
	s.cacheSet(ctx, out)
	return out, nil
}

func (s *DVDService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete dvd: %w", err)
	}
	s.metrics.Write(ctx, string(catalog.KindDVD), string(catalog.ActionDeleted))
	s.invalidateDerived(ctx)
	if s.cache != nil {
		if err := s.cache.Delete(ctx, strconv.FormatInt(id, 10)); err != nil {
			s.log.WarnContext(ctx, "dvd cache evict failed", "dvd_id", id, "error", err)
		}
	}
	return nil
}

// Search matches titulo, director and genero.
func (s *DVDService) Search(ctx context.Context, query string) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{Query: query})
}

func (s *DVDService) FindByAvailable(ctx context.Context, available bool) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{Available: &available})
}

func (s *DVDService) FindByTitle(ctx context.Context, title string) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{Title: title})
}

func (s *DVDService) FindByDirector(ctx context.Context, director string) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{Director: director})
}

func (s *DVDService) FindByGenre(ctx context.Context, genre string) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{Genre: genre})
}

func (s *DVDService) FindByRating(ctx context.Context, rating string) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{Rating: rating})
}

// FindByCast matches a substring of the comma-separated cast list.
func (s *DVDService) FindByCast(ctx context.Context, actor string) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{Cast: actor})
}

func (s *DVDService) FindByReleaseYear(ctx context.Context, year int) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{ReleaseYear: &year})
}

// FindByDurationBetween returns DVDs running between lo and hi minutes inclusive.
func (s *DVDService) FindByDurationBetween(ctx context.Context, lo, hi int) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{MinDuration: &lo, MaxDuration: &hi})
}

func (s *DVDService) FindByReleaseYearBetween(ctx context.Context, from, to int) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{MinYear: &from, MaxYear: &to})
}

func (s *DVDService) FindByPriceBetween(ctx context.Context, lo, hi float64) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{MinPrice: &lo, MaxPrice: &hi})
}

// FindAtMostPrice returns DVDs priced at or below ceiling, cheapest first.
func (s *DVDService) FindAtMostPrice(ctx context.Context, ceiling float64) ([]DVDDTO, error) {
	return s.find(ctx, repositories.Filter{MaxPrice: &ceiling, Order: repositories.OrderByPriceAsc})
}

// RecentAvailable returns the available DVDs, most recently added first.
func (s *DVDService) RecentAvailable(ctx context.Context) ([]DVDDTO, error) {
	yes := true
	return s.find(ctx, repositories.Filter{Available: &yes, Order: repositories.OrderByNewest})
}

func (s *DVDService) Genres(ctx context.Context) ([]string, error) {
	genres, err := s.repo.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dvd genres: %w", err)
	}
	return genres, nil
}

func (s *DVDService) Ratings(ctx context.Context) ([]string, error) {
	ratings, err := s.repo.Ratings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dvd ratings: %w", err)
	}
	return ratings, nil
}

func (s *DVDService) CountAvailable(ctx context.Context) (int64, error) {
	t, err := s.CountByAvailability(ctx)
	if err != nil {
		return 0, err
	}
	return t.Available, nil
}

// AveragePriceAvailable is nil when there is nothing to average.
func (s *DVDService) AveragePriceAvailable(ctx context.Context) (*float64, error) {
	avg, err := s.repo.AveragePriceAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("average dvd price: %w", err)
	}
	return avg, nil
}

// Stats combines CountAvailable and AveragePriceAvailable.
func (s *DVDService) Stats(ctx context.Context) (StatsDTO, error) {
	n, err := s.CountAvailable(ctx)
	if err != nil {
		return StatsDTO{}, err
	}
	avg, err := s.AveragePriceAvailable(ctx)
	if err != nil {
		return StatsDTO{}, err
	}
	return StatsDTO{Available: n, AveragePrice: avg}, nil
}

func (s *DVDService) CountByAvailability(ctx context.Context) (catalog.Tally, error) {
	t, err := s.repo.CountByAvailability(ctx)
	if err != nil {
		return catalog.Tally{}, fmt.Errorf("count dvds: %w", err)
	}
	return t, nil
}

func (s *DVDService) find(ctx context.Context, f repositories.Filter) ([]DVDDTO, error) {
	ds, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find dvds: %w", err)
	}
	return toDTOs(ds), nil
}

// InvalidateOnWrite registers inv to be cleared after every successful write.
// Call it during wiring, before the service handles requests.
func (s *DVDService) InvalidateOnWrite(inv catalog.Invalidator) {
	s.derived = append(s.derived, inv)
}

func (s *DVDService) invalidateDerived(ctx context.Context) {
	if err := s.derived.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "dvd derived cache invalidation failed", "error", err)
	}
}

func (s *DVDService) cacheSet(ctx context.Context, dto DVDDTO) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, strconv.FormatInt(dto.ID, 10), dto); err != nil {
		s.log.WarnContext(ctx, "dvd cache write failed", "dvd_id", dto.ID, "error", err)
	}
}
