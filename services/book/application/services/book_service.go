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
	bookdomain "github.com/ghuser/biblioteca/services/book/domain"
	"github.com/ghuser/biblioteca/services/book/domain/repositories"
	domainsvcs "github.com/ghuser/biblioteca/services/book/domain/services"
)

// CachePrefix namespaces book entries in Redis.
const CachePrefix = "catalog:libro"

var _ catalog.Service[BookDTO] = (*BookService)(nil)

// BookService implements the book catalog. Event publishing is handled by the
// repository layer (outbox pattern); FindByID is served from Redis when a
// cache is configured.
type BookService struct {
	repo    repositories.BookRepository
	cache   *pkgcache.EntryCache[BookDTO]
	metrics *telemetry.CatalogMetrics
	log     logger.Logger
	now     func() time.Time
	derived catalog.Invalidators
}

// NewBookService wires a BookService. cache and metrics may be nil.
func NewBookService(
	repo repositories.BookRepository,
	cache *pkgcache.EntryCache[BookDTO],
	metrics *telemetry.CatalogMetrics,
	log logger.Logger,
) *BookService {
	if log == nil {
		log = logger.Discard()
	}
	return &BookService{repo: repo, cache: cache, metrics: metrics, log: log, now: time.Now}
}

func (s *BookService) FindAll(ctx context.Context) ([]BookDTO, error) {
	return s.find(ctx, repositories.Filter{})
}

// FindByID reads through the cache. A cache failure falls back to the store.
func (s *BookService) FindByID(ctx context.Context, id int64) (BookDTO, bool, error) {
	key := strconv.FormatInt(id, 10)
	if s.cache != nil {
		dto, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.WarnContext(ctx, "book cache read failed", "libro_id", id, "error", err)
		}
		s.metrics.CacheLookup(ctx, CachePrefix, hit)
		if hit {
			return dto, true, nil
		}
	}

	book, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, bookdomain.ErrBookNotFound) {
		return BookDTO{}, false, nil
	}
	if err != nil {
		return BookDTO{}, false, fmt.Errorf("get book: %w", err)
	}

	dto := toDTO(book)
	s.cacheSet(ctx, dto)
	return dto, true, nil
}

// Save validates and inserts a new book. Any id in dto is ignored.
func (s *BookService) Save(ctx context.Context, dto BookDTO) (BookDTO, error) {
	book := toModel(dto)
	book.MarkCreated(s.now())
	if err := domainsvcs.ValidateBook(book); err != nil {
		return BookDTO{}, fmt.Errorf("%w: %w", bookdomain.ErrInvalidBook, err)
	}
	if err := s.repo.Save(ctx, book); err != nil {
		return BookDTO{}, fmt.Errorf("save book: %w", err)
	}
	s.metrics.Write(ctx, string(catalog.KindBook), string(catalog.ActionCreated))
	s.invalidateDerived(ctx)
	s.log.InfoContext(ctx, "libro creado", "libro_id", book.ID)
	return toDTO(book), nil
}

// Update replaces every client-writable field of the book with id.
func (s *BookService) Update(ctx context.Context, id int64, dto BookDTO) (BookDTO, error) {
	book := toModel(dto)
	book.ID = id
	book.MarkUpdated(s.now())
	if err := domainsvcs.ValidateBook(book); err != nil {
		return BookDTO{}, fmt.Errorf("%w: %w", bookdomain.ErrInvalidBook, err)
	}
	if err := s.repo.Update(ctx, book); err != nil {
		return BookDTO{}, fmt.Errorf("update book: %w", err)
	}
	s.metrics.Write(ctx, string(catalog.KindBook), string(catalog.ActionUpdated))
	s.invalidateDerived(ctx)

	out := toDTO(book)
	s.cacheSet(ctx, out)
	return out, nil
}

func (s *BookService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	s.metrics.Write(ctx, string(catalog.KindBook), string(catalog.ActionDeleted))
	s.invalidateDerived(ctx)
	if s.cache != nil {
		if err := s.cache.Delete(ctx, strconv.FormatInt(id, 10)); err != nil {
			s.log.WarnContext(ctx, "book cache evict failed", "libro_id", id, "error", err)
		}
	}
	return nil
}

// Search matches query against titulo, autor, genero, editorial and isbn.
// An empty query matches every book.
func (s *BookService) Search(ctx context.Context, query string) ([]BookDTO, error) {
	return s.find(ctx, repositories.Filter{Query: query})
}

func (s *BookService) FindByAvailable(ctx context.Context, available bool) ([]BookDTO, error) {
	return s.find(ctx, repositories.Filter{Available: &available})
}

func (s *BookService) FindByGenre(ctx context.Context, genre string) ([]BookDTO, error) {
	return s.find(ctx, repositories.Filter{Genre: genre})
}

func (s *BookService) FindByPublisher(ctx context.Context, publisher string) ([]BookDTO, error) {
	return s.find(ctx, repositories.Filter{Publisher: publisher})
}

func (s *BookService) FindByAuthor(ctx context.Context, author string) ([]BookDTO, error) {
	return s.find(ctx, repositories.Filter{Author: author})
}

// FindByISBN looks up the single book with the exact isbn.
func (s *BookService) FindByISBN(ctx context.Context, isbn string) (BookDTO, bool, error) {
	if isbn == "" {
		return BookDTO{}, false, nil
	}
	books, err := s.repo.Find(ctx, repositories.Filter{ISBN: isbn})
	if err != nil {
		return BookDTO{}, false, fmt.Errorf("find book by isbn: %w", err)
	}
	if len(books) == 0 {
		return BookDTO{}, false, nil
	}
	return toDTO(books[0]), true, nil
}

// Genres lists the distinct genres in use, sorted.
func (s *BookService) Genres(ctx context.Context) ([]string, error) {
	genres, err := s.repo.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("list book genres: %w", err)
	}
	return genres, nil
}

func (s *BookService) CountByAvailability(ctx context.Context) (catalog.Tally, error) {
	t, err := s.repo.CountByAvailability(ctx)
	if err != nil {
		return catalog.Tally{}, fmt.Errorf("count books: %w", err)
	}
	return t, nil
}

func (s *BookService) find(ctx context.Context, f repositories.Filter) ([]BookDTO, error) {
	books, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	return toDTOs(books), nil
}

// InvalidateOnWrite registers inv to be cleared after every successful write.
// Call it during wiring, before the service handles requests.
func (s *BookService) InvalidateOnWrite(inv catalog.Invalidator) {
	s.derived = append(s.derived, inv)
}

func (s *BookService) invalidateDerived(ctx context.Context) {
	if err := s.derived.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "book derived cache invalidation failed", "error", err)
	}
}

func (s *BookService) cacheSet(ctx context.Context, dto BookDTO) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, strconv.FormatInt(dto.ID, 10), dto); err != nil {
		s.log.WarnContext(ctx, "book cache write failed", "libro_id", dto.ID, "error", err)
	}
}
