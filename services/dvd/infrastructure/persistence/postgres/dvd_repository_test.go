package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/pkg/database/dbtest"
	dvddomain "github.com/ghuser/biblioteca/services/dvd/domain"
	"github.com/ghuser/biblioteca/services/dvd/domain/models"
	"github.com/ghuser/biblioteca/services/dvd/domain/repositories"
	"github.com/ghuser/biblioteca/services/dvd/infrastructure/persistence/postgres"
)

var base = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newDVD(title, director string, year, minutes int, price float64, available bool) *models.DVD {
	d := &models.DVD{
		Title:       title,
		Director:    director,
		ReleaseYear: &year,
		Duration:    &minutes,
		Price:       &price,
		Available:   available,
	}
	d.MarkCreated(base)
	return d
}

func titles(ds []*models.DVD) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Title
	}
	return out
}

func TestDVDRepository_Lifecycle(t *testing.T) {
	repo := postgres.NewDVDRepository(dbtest.New(t), nil)
	ctx := context.Background()

	d := &models.DVD{Title: "Metropolis", Director: "Fritz Lang", Available: true}
	d.MarkCreated(base)
	require.NoError(t, repo.Save(ctx, d))
	assert.Equal(t, int64(1), d.ID)

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ReleaseYear)
	assert.Nil(t, got.Price)
	assert.Empty(t, got.Genre)
	assert.True(t, got.CreatedAt.Equal(base))

	year := 1927
	got.ReleaseYear = &year
	got.Cast = "Brigitte Helm"
	got.MarkUpdated(base)
	require.NoError(t, repo.Update(ctx, got))
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	reread, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, reread.ReleaseYear)
	assert.Equal(t, 1927, *reread.ReleaseYear)
	assert.Equal(t, "Brigitte Helm", reread.Cast)

	require.NoError(t, repo.Delete(ctx, d.ID))
	assert.ErrorIs(t, repo.Delete(ctx, d.ID), dvddomain.ErrDVDNotFound)
	assert.ErrorIs(t, repo.Update(ctx, got), dvddomain.ErrDVDNotFound)
	_, err = repo.GetByID(ctx, d.ID)
	assert.ErrorIs(t, err, dvddomain.ErrDVDNotFound)
}

func TestDVDRepository_Find(t *testing.T) {
	repo := postgres.NewDVDRepository(dbtest.New(t), nil)
	ctx := context.Background()

	alien := newDVD("Alien", "Ridley Scott", 1979, 117, 12.5, true)
	alien.Genre = "Ciencia ficción"
	alien.Rating = "R"
	alien.Cast = "Sigourney Weaver, Tom Skerritt"
	blade := newDVD("Blade Runner", "Ridley Scott", 1982, 117, 9.99, false)
	blade.Genre = "Ciencia ficción"
	blade.Rating = "R"
	toy := newDVD("Toy Story", "John Lasseter", 1995, 81, 7, true)
	toy.Genre = "Animación"
	toy.Rating = "G"
	toy.MarkCreated(base.Add(time.Hour))
	for _, d := range []*models.DVD{alien, blade, toy} {
		require.NoError(t, repo.Save(ctx, d))
	}

	yes := true
	y1982, from, to := 1982, 1980, 2000
	short, long := 80, 100
	lo, hi, ceiling := 8.0, 13.0, 10.0

	tests := []struct {
		name   string
		filter repositories.Filter
		want   []string
	}{
		{"all", repositories.Filter{}, []string{"Alien", "Blade Runner", "Toy Story"}},
		{"search director", repositories.Filter{Query: "ridley"}, []string{"Alien", "Blade Runner"}},
		{"search genre", repositories.Filter{Query: "ANIMA"}, []string{"Toy Story"}},
		{"title", repositories.Filter{Title: "runner"}, []string{"Blade Runner"}},
		{"director", repositories.Filter{Director: "lasseter"}, []string{"Toy Story"}},
		{"genre", repositories.Filter{Genre: "ficción"}, []string{"Alien", "Blade Runner"}},
		{"rating", repositories.Filter{Rating: "g"}, []string{"Toy Story"}},
		{"cast", repositories.Filter{Cast: "weaver"}, []string{"Alien"}},
		{"year", repositories.Filter{ReleaseYear: &y1982}, []string{"Blade Runner"}},
		{"year range", repositories.Filter{MinYear: &from, MaxYear: &to}, []string{"Blade Runner", "Toy Story"}},
		{"duration range", repositories.Filter{MinDuration: &short, MaxDuration: &long}, []string{"Toy Story"}},
		{"price range", repositories.Filter{MinPrice: &lo, MaxPrice: &hi}, []string{"Alien", "Blade Runner"}},
		{"cheapest first", repositories.Filter{MaxPrice: &ceiling, Order: repositories.OrderByPriceAsc},
			[]string{"Toy Story", "Blade Runner"}},
		{"newest available", repositories.Filter{Available: &yes, Order: repositories.OrderByNewest},
			[]string{"Toy Story", "Alien"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Find(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestDVDRepository_Aggregates(t *testing.T) {
	repo := postgres.NewDVDRepository(dbtest.New(t), nil)
	ctx := context.Background()

	avg, err := repo.AveragePriceAvailable(ctx)
	require.NoError(t, err)
	assert.Nil(t, avg)

	a := newDVD("Alien", "Ridley Scott", 1979, 117, 10, true)
	a.Genre = "Terror"
	a.Rating = "R"
	b := newDVD("Up", "Pete Docter", 2009, 96, 20, true)
	b.Genre = "Animación"
	b.Rating = "PG"
	c := newDVD("Jaws", "Steven Spielberg", 1975, 124, 100, false)
	c.Genre = "Terror"
	for _, d := range []*models.DVD{a, b, c} {
		require.NoError(t, repo.Save(ctx, d))
	}

	avg, err = repo.AveragePriceAvailable(ctx)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 15.0, *avg, 1e-9)

	genres, err := repo.Genres(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Animación", "Terror"}, genres)

	ratings, err := repo.Ratings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"PG", "R"}, ratings)

	tally, err := repo.CountByAvailability(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Tally{Total: 3, Available: 2, Unavailable: 1}, tally)
}
