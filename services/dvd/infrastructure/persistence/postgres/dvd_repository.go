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
	dvddomain "github.com/ghuser/biblioteca/services/dvd/domain"
	domainevents "github.com/ghuser/biblioteca/services/dvd/domain/events"
	"github.com/ghuser/biblioteca/services/dvd/domain/models"
	"github.com/ghuser/biblioteca/services/dvd/domain/repositories"
)

const selectDVDs = `SELECT id, titulo, director, ano_lanzamiento, genero, duracion, clasificacion,
	actores, sinopsis, precio, disponible, fecha_creacion, fecha_actualizacion FROM dvds`

var orderClauses = map[repositories.Order]string{
	repositories.OrderByID:       "id",
	repositories.OrderByPriceAsc: "precio ASC, id",
	repositories.OrderByNewest:   "fecha_creacion DESC, id DESC",
}

// DVDRepository implements repositories.DVDRepository.
type DVDRepository struct {
	db  *database.Database
	bus *events.EventBus
}

func NewDVDRepository(db *database.Database, bus *events.EventBus) *DVDRepository {
	return &DVDRepository{db: db, bus: bus}
}

func (r *DVDRepository) Save(ctx context.Context, d *models.DVD) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, database.Rebind(`INSERT INTO dvds
			(titulo, director, ano_lanzamiento, genero, duracion, clasificacion, actores, sinopsis,
			 precio, disponible, fecha_creacion, fecha_actualizacion)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`),
			d.Title, d.Director, database.NullInt(d.ReleaseYear), database.NullString(d.Genre),
			database.NullInt(d.Duration), database.NullString(d.Rating), database.NullString(d.Cast),
			database.NullString(d.Synopsis), database.NullFloat(d.Price), d.Available,
			d.CreatedAt, d.UpdatedAt,
		).Scan(&d.ID)
		if err != nil {
			return fmt.Errorf("insert dvd: %w", err)
		}
		return r.publish(ctx, tx, d.ID, catalog.ActionCreated, d.CreatedAt)
	})
}

// Update overwrites every mutable column and keeps the stored creation time.
func (r *DVDRepository) Update(ctx context.Context, d *models.DVD) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var created, updated time.Time
		err := tx.QueryRowContext(ctx, database.Rebind(
			`SELECT fecha_creacion, fecha_actualizacion FROM dvds WHERE id = ?`), d.ID,
		).Scan(&created, &updated)
		if errors.Is(err, sql.ErrNoRows) {
			return dvddomain.ErrDVDNotFound
		}
		if err != nil {
			return fmt.Errorf("load dvd %d: %w", d.ID, err)
		}
		d.Restore(created, updated)

		if _, err := tx.ExecContext(ctx, database.Rebind(`UPDATE dvds SET
			titulo = ?, director = ?, ano_lanzamiento = ?, genero = ?, duracion = ?,
			clasificacion = ?, actores = ?, sinopsis = ?, precio = ?, disponible = ?,
			fecha_actualizacion = ? WHERE id = ?`),
			d.Title, d.Director, database.NullInt(d.ReleaseYear), database.NullString(d.Genre),
			database.NullInt(d.Duration), database.NullString(d.Rating), database.NullString(d.Cast),
			database.NullString(d.Synopsis), database.NullFloat(d.Price), d.Available,
			d.UpdatedAt, d.ID,
		); err != nil {
			return fmt.Errorf("update dvd %d: %w", d.ID, err)
		}
		return r.publish(ctx, tx, d.ID, catalog.ActionUpdated, d.UpdatedAt)
	})
}

func (r *DVDRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, database.Rebind(`DELETE FROM dvds WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete dvd %d: %w", id, err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("delete dvd %d: %w", id, err)
		} else if n == 0 {
			return dvddomain.ErrDVDNotFound
		}
		return r.publish(ctx, tx, id, catalog.ActionDeleted, catalog.Stamp(time.Now()))
	})
}

func (r *DVDRepository) GetByID(ctx context.Context, id int64) (*models.DVD, error) {
	q, args := database.Select(selectDVDs).Where("id = ?", id).Build()
	d, err := scanDVD(r.db.DB().QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dvddomain.ErrDVDNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query dvd %d: %w", id, err)
	}
	return d, nil
}

// Find returns the DVDs matching f in the requested order.
func (r *DVDRepository) Find(ctx context.Context, f repositories.Filter) ([]*models.DVD, error) {
	q := database.Select(selectDVDs)
	if f.Query != "" {
		p := catalog.LikePattern(f.Query)
		q.Where(`LOWER(titulo) LIKE ? ESCAPE '\' OR LOWER(director) LIKE ? ESCAPE '\'
			OR LOWER(genero) LIKE ? ESCAPE '\'`, p, p, p)
	}
	if f.Available != nil {
		q.Where("disponible = ?", *f.Available)
	}
	for _, c := range []struct{ col, v string }{
		{"titulo", f.Title},
		{"director", f.Director},
		{"genero", f.Genre},
		{"clasificacion", f.Rating},
		{"actores", f.Cast},
	} {
		if c.v != "" {
			q.Where("LOWER("+c.col+`) LIKE ? ESCAPE '\'`, catalog.LikePattern(c.v))
		}
	}
	if f.ReleaseYear != nil {
		q.Where("ano_lanzamiento = ?", *f.ReleaseYear)
	}
	if f.MinYear != nil {
		q.Where("ano_lanzamiento >= ?", *f.MinYear)
	}
	if f.MaxYear != nil {
		q.Where("ano_lanzamiento <= ?", *f.MaxYear)
	}
	if f.MinDuration != nil {
		q.Where("duracion >= ?", *f.MinDuration)
	}
	if f.MaxDuration != nil {
		q.Where("duracion <= ?", *f.MaxDuration)
	}
	if f.MinPrice != nil {
		q.Where("precio >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q.Where("precio <= ?", *f.MaxPrice)
	}
	order, ok := orderClauses[f.Order]
	if !ok {
		order = orderClauses[repositories.OrderByID]
	}
	query, args := q.OrderBy(order).Build()

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query dvds: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]*models.DVD, 0)
	for rows.Next() {
		d, err := scanDVD(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dvd: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dvds: %w", err)
	}
	return out, nil
}

func (r *DVDRepository) Genres(ctx context.Context) ([]string, error) {
	return database.Strings(ctx, r.db.DB(), `SELECT DISTINCT genero FROM dvds
		WHERE genero IS NOT NULL AND genero <> '' ORDER BY genero`)
}

func (r *DVDRepository) Ratings(ctx context.Context) ([]string, error) {
	return database.Strings(ctx, r.db.DB(), `SELECT DISTINCT clasificacion FROM dvds
		WHERE clasificacion IS NOT NULL AND clasificacion <> '' ORDER BY clasificacion`)
}

func (r *DVDRepository) CountByAvailability(ctx context.Context) (catalog.Tally, error) {
	return database.CountByAvailability(ctx, r.db.DB(), "dvds")
}

func (r *DVDRepository) AveragePriceAvailable(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.DB().QueryRowContext(ctx, database.Rebind(
		`SELECT AVG(precio) FROM dvds WHERE disponible = ?`), true,
	).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("average dvd price: %w", err)
	}
	return database.FloatPtr(avg), nil
}

func (r *DVDRepository) publish(ctx context.Context, tx *sql.Tx, id int64, action catalog.Action, at time.Time) error {
	if r.bus == nil {
		return nil
	}
	evt := catalog.NewChangeEvent(catalog.KindDVD, id, action, at)
	if err := r.bus.PublishTx(ctx, tx, domainevents.Topic(action), evt.EventID.String(), evt); err != nil {
		return fmt.Errorf("publish dvd %s: %w", action, err)
	}
	return nil
}

func scanDVD(row database.Scanner) (*models.DVD, error) {
	var (
		d                             models.DVD
		genre, rating, cast, synopsis sql.NullString
		year, duration                sql.NullInt64
		price                         sql.NullFloat64
	)
	if err := row.Scan(&d.ID, &d.Title, &d.Director, &year, &genre, &duration, &rating,
		&cast, &synopsis, &price, &d.Available, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.ReleaseYear = database.IntPtr(year)
	d.Genre = genre.String
	d.Duration = database.IntPtr(duration)
	d.Rating = rating.String
	d.Cast = cast.String
	d.Synopsis = synopsis.String
	d.Price = database.FloatPtr(price)
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	return &d, nil
}
