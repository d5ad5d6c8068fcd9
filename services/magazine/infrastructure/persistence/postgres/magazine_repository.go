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
	magazinedomain "github.com/ghuser/biblioteca/services/magazine/domain"
	domainevents "github.com/ghuser/biblioteca/services/magazine/domain/events"
	"github.com/ghuser/biblioteca/services/magazine/domain/models"
	"github.com/ghuser/biblioteca/services/magazine/domain/repositories"
)

const selectMagazines = `SELECT id, titulo, autor, ano_publicacion, descripcion, disponible,
	numero_edicion, categoria, periodicidad, issn, precio, numero_paginas, editorial,
	fecha_creacion, fecha_actualizacion FROM revistas`

// MagazineRepository implements repositories.MagazineRepository.
type MagazineRepository struct {
	db  *database.Database
	bus *events.EventBus
}

func NewMagazineRepository(db *database.Database, bus *events.EventBus) *MagazineRepository {
	return &MagazineRepository{db: db, bus: bus}
}

func (r *MagazineRepository) Save(ctx context.Context, m *models.Magazine) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, database.Rebind(`INSERT INTO revistas
			(titulo, autor, ano_publicacion, descripcion, disponible, numero_edicion, categoria,
			 periodicidad, issn, precio, numero_paginas, editorial, fecha_creacion, fecha_actualizacion)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`),
			m.Title, m.Author, m.PublicationYear, database.NullString(m.Description), m.Available,
			database.NullInt(m.IssueNumber), database.NullString(m.Category),
			database.NullString(m.Frequency), database.NullString(m.ISSN),
			database.NullFloat(m.Price), database.NullInt(m.Pages), database.NullString(m.Publisher),
			m.CreatedAt, m.UpdatedAt,
		).Scan(&m.ID)
		if err != nil {
			return fmt.Errorf("insert magazine: %w", err)
		}
		return r.publish(ctx, tx, m.ID, catalog.ActionCreated, m.CreatedAt)
	})
}

// Update overwrites every mutable column and keeps the stored creation time.
func (r *MagazineRepository) Update(ctx context.Context, m *models.Magazine) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var created, updated time.Time
		err := tx.QueryRowContext(ctx, database.Rebind(
			`SELECT fecha_creacion, fecha_actualizacion FROM revistas WHERE id = ?`), m.ID,
		).Scan(&created, &updated)
		if errors.Is(err, sql.ErrNoRows) {
			return magazinedomain.ErrMagazineNotFound
		}
		if err != nil {
			return fmt.Errorf("load magazine %d: %w", m.ID, err)
		}
		m.Restore(created, updated)

		if _, err := tx.ExecContext(ctx, database.Rebind(`UPDATE revistas SET
			titulo = ?, autor = ?, ano_publicacion = ?, descripcion = ?, disponible = ?,
			numero_edicion = ?, categoria = ?, periodicidad = ?, issn = ?, precio = ?,
			numero_paginas = ?, editorial = ?, fecha_actualizacion = ? WHERE id = ?`),
			m.Title, m.Author, m.PublicationYear, database.NullString(m.Description), m.Available,
			database.NullInt(m.IssueNumber), database.NullString(m.Category),
			database.NullString(m.Frequency), database.NullString(m.ISSN),
			database.NullFloat(m.Price), database.NullInt(m.Pages), database.NullString(m.Publisher),
			m.UpdatedAt, m.ID,
		); err != nil {
			return fmt.Errorf("update magazine %d: %w", m.ID, err)
		}
		return r.publish(ctx, tx, m.ID, catalog.ActionUpdated, m.UpdatedAt)
	})
}

func (r *MagazineRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, database.Rebind(`DELETE FROM revistas WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete magazine %d: %w", id, err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("delete magazine %d: %w", id, err)
		} else if n == 0 {
			return magazinedomain.ErrMagazineNotFound
		}
		return r.publish(ctx, tx, id, catalog.ActionDeleted, catalog.Stamp(time.Now()))
	})
}

func (r *MagazineRepository) GetByID(ctx context.Context, id int64) (*models.Magazine, error) {
	q, args := database.Select(selectMagazines).Where("id = ?", id).Build()
	m, err := scanMagazine(r.db.DB().QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, magazinedomain.ErrMagazineNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query magazine %d: %w", id, err)
	}
	return m, nil
}

func (r *MagazineRepository) Find(ctx context.Context, f repositories.Filter) ([]*models.Magazine, error) {
	q := database.Select(selectMagazines)
	if f.Query != "" {
		p := catalog.LikePattern(f.Query)
		q.Where(`LOWER(titulo) LIKE ? ESCAPE '\' OR LOWER(autor) LIKE ? ESCAPE '\'
			OR LOWER(categoria) LIKE ? ESCAPE '\' OR LOWER(editorial) LIKE ? ESCAPE '\'
			OR LOWER(issn) LIKE ? ESCAPE '\'`, p, p, p, p, p)
	}
	if f.Available != nil {
		q.Where("disponible = ?", *f.Available)
	}
	for _, c := range []struct{ col, v string }{
		{"categoria", f.Category},
		{"periodicidad", f.Frequency},
		{"editorial", f.Publisher},
		{"autor", f.Author},
	} {
		if c.v != "" {
			q.Where("LOWER("+c.col+`) LIKE ? ESCAPE '\'`, catalog.LikePattern(c.v))
		}
	}
	query, args := q.OrderBy("id").Build()

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query magazines: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]*models.Magazine, 0)
	for rows.Next() {
		m, err := scanMagazine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan magazine: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate magazines: %w", err)
	}
	return out, nil
}

func (r *MagazineRepository) Categories(ctx context.Context) ([]string, error) {
	return database.Strings(ctx, r.db.DB(), `SELECT DISTINCT categoria FROM revistas
		WHERE categoria IS NOT NULL AND categoria <> '' ORDER BY categoria`)
}

func (r *MagazineRepository) CountByAvailability(ctx context.Context) (catalog.Tally, error) {
	return database.CountByAvailability(ctx, r.db.DB(), "revistas")
}

func (r *MagazineRepository) publish(ctx context.Context, tx *sql.Tx, id int64, action catalog.Action, at time.Time) error {
	if r.bus == nil {
		return nil
	}
	evt := catalog.NewChangeEvent(catalog.KindMagazine, id, action, at)
	if err := r.bus.PublishTx(ctx, tx, domainevents.Topic(action), evt.EventID.String(), evt); err != nil {
		return fmt.Errorf("publish magazine %s: %w", action, err)
	}
	return nil
}

func scanMagazine(row database.Scanner) (*models.Magazine, error) {
	var (
		m                                  models.Magazine
		desc, category, freq, issn, pubStr sql.NullString
		issue, pages                       sql.NullInt64
		price                              sql.NullFloat64
	)
	if err := row.Scan(&m.ID, &m.Title, &m.Author, &m.PublicationYear, &desc, &m.Available,
		&issue, &category, &freq, &issn, &price, &pages, &pubStr,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Kind = catalog.KindMagazine
	m.Description = desc.String
	m.IssueNumber = database.IntPtr(issue)
	m.Category = category.String
	m.Frequency = freq.String
	m.ISSN = issn.String
	m.Price = database.FloatPtr(price)
	m.Pages = database.IntPtr(pages)
	m.Publisher = pubStr.String
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return &m, nil
}
