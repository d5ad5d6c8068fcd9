package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/pkg/database"
	"github.com/ghuser/biblioteca/pkg/events"
	bookdomain "github.com/ghuser/biblioteca/services/book/domain"
	domainevents "github.com/ghuser/biblioteca/services/book/domain/events"
	"github.com/ghuser/biblioteca/services/book/domain/models"
	"github.com/ghuser/biblioteca/services/book/domain/repositories"
)

const selectBooks = `SELECT id, titulo, autor, ano_publicacion, descripcion, disponible,
	isbn, numero_paginas, genero, editorial, idioma, precio, stock,
	fecha_creacion, fecha_actualizacion FROM libros`

// BookRepository implements repositories.BookRepository. The SQL is portable
// between PostgreSQL and SQLite.
type BookRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewBookRepository returns a BookRepository backed by the given pool. When bus
// is non-nil every write also stores a catalog.ChangeEvent in the outbox.
func NewBookRepository(db *database.Database, bus *events.EventBus) *BookRepository {
	return &BookRepository{db: db, bus: bus}
}

// Save inserts the book and assigns the generated id.
func (r *BookRepository) Save(ctx context.Context, book *models.Book) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, database.Rebind(`INSERT INTO libros
			(titulo, autor, ano_publicacion, descripcion, disponible, isbn, numero_paginas,
			 genero, editorial, idioma, precio, stock, fecha_creacion, fecha_actualizacion)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`),
			book.Title, book.Author, book.PublicationYear, database.NullString(book.Description),
			book.Available, book.ISBN, database.NullInt(book.Pages), database.NullString(book.Genre),
			database.NullString(book.Publisher), database.NullString(book.Language),
			database.NullFloat(book.Price), database.NullInt(book.Stock),
			book.CreatedAt, book.UpdatedAt,
		).Scan(&book.ID)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return bookdomain.ErrBookAlreadyExists
			}
			return fmt.Errorf("insert book: %w", err)
		}
		return r.publish(ctx, tx, book.ID, catalog.ActionCreated, book.CreatedAt)
	})
}

// Update overwrites every mutable column. book.CreatedAt is replaced by the
// stored value and book.UpdatedAt is moved past the stored one if needed.
func (r *BookRepository) Update(ctx context.Context, book *models.Book) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var created, updated time.Time
		err := tx.QueryRowContext(ctx, database.Rebind(
			`SELECT fecha_creacion, fecha_actualizacion FROM libros WHERE id = ?`), book.ID,
		).Scan(&created, &updated)
		if errors.Is(err, sql.ErrNoRows) {
			return bookdomain.ErrBookNotFound
		}
		if err != nil {
			return fmt.Errorf("load book %d: %w", book.ID, err)
		}
		book.Restore(created, updated)

		_, err = tx.ExecContext(ctx, database.Rebind(`UPDATE libros SET
			titulo = ?, autor = ?, ano_publicacion = ?, descripcion = ?, disponible = ?,
			isbn = ?, numero_paginas = ?, genero = ?, editorial = ?, idioma = ?, precio = ?,
			stock = ?, fecha_actualizacion = ? WHERE id = ?`),
			book.Title, book.Author, book.PublicationYear, database.NullString(book.Description),
			book.Available, book.ISBN, database.NullInt(book.Pages), database.NullString(book.Genre),
			database.NullString(book.Publisher), database.NullString(book.Language),
			database.NullFloat(book.Price), database.NullInt(book.Stock),
			book.UpdatedAt, book.ID,
		)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return bookdomain.ErrBookAlreadyExists
			}
			return fmt.Errorf("update book %d: %w", book.ID, err)
		}
		return r.publish(ctx, tx, book.ID, catalog.ActionUpdated, book.UpdatedAt)
	})
}

// Delete removes the row with id.
func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, database.Rebind(`DELETE FROM libros WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete book %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete book %d: %w", id, err)
		}
		if n == 0 {
			return bookdomain.ErrBookNotFound
		}
		return r.publish(ctx, tx, id, catalog.ActionDeleted, catalog.Stamp(time.Now()))
	})
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	q, args := database.Select(selectBooks).Where("id = ?", id).Build()
	book, err := scanBook(r.db.DB().QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, bookdomain.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query book %d: %w", id, err)
	}
	return book, nil
}

// Find returns the books matching f ordered by id.
func (r *BookRepository) Find(ctx context.Context, f repositories.Filter) ([]*models.Book, error) {
	q := database.Select(selectBooks)
	if f.Query != "" {
		p := catalog.LikePattern(f.Query)
		q.Where(`LOWER(titulo) LIKE ? ESCAPE '\' OR LOWER(autor) LIKE ? ESCAPE '\'
			OR LOWER(genero) LIKE ? ESCAPE '\' OR LOWER(editorial) LIKE ? ESCAPE '\'
			OR LOWER(isbn) LIKE ? ESCAPE '\'`, p, p, p, p, p)
	}
	if f.Available != nil {
		q.Where("disponible = ?", *f.Available)
	}
	if f.Genre != "" {
		q.Where(`LOWER(genero) LIKE ? ESCAPE '\'`, catalog.LikePattern(f.Genre))
	}
	if f.Publisher != "" {
		q.Where(`LOWER(editorial) LIKE ? ESCAPE '\'`, catalog.LikePattern(f.Publisher))
	}
	if f.Author != "" {
		q.Where(`LOWER(autor) LIKE ? ESCAPE '\'`, catalog.LikePattern(f.Author))
	}
	if f.ISBN != "" {
		q.Where("isbn = ?", f.ISBN)
	}
	query, args := q.OrderBy("id").Build()

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	books := make([]*models.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}

func (r *BookRepository) Genres(ctx context.Context) ([]string, error) {
	return database.Strings(ctx, r.db.DB(), `SELECT DISTINCT genero FROM libros
		WHERE genero IS NOT NULL AND genero <> '' ORDER BY genero`)
}

// CountByAvailability tallies all books in one statement.
func (r *BookRepository) CountByAvailability(ctx context.Context) (catalog.Tally, error) {
	return database.CountByAvailability(ctx, r.db.DB(), "libros")
}

func (r *BookRepository) publish(ctx context.Context, tx *sql.Tx, id int64, action catalog.Action, at time.Time) error {
	if r.bus == nil {
		return nil
	}
	evt := catalog.NewChangeEvent(catalog.KindBook, id, action, at)
	if err := r.bus.PublishTx(ctx, tx, domainevents.Topic(action), evt.EventID.String(), evt); err != nil {
		return fmt.Errorf("publish book %s: %w", action, err)
	}
	return nil
}

func scanBook(row database.Scanner) (*models.Book, error) {
	var (
		b                      models.Book
		desc, genre, pub, lang sql.NullString
		pages, stock           sql.NullInt64
		price                  sql.NullFloat64
	)
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.PublicationYear, &desc, &b.Available,
		&b.ISBN, &pages, &genre, &pub, &lang, &price, &stock,
		&b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Kind = catalog.KindBook
	b.Description = desc.String
	b.Genre = genre.String
	b.Publisher = pub.String
	b.Language = lang.String
	b.Pages = database.IntPtr(pages)
	b.Stock = database.IntPtr(stock)
	b.Price = database.FloatPtr(price)
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return &b, nil
}
