package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/pkg/database/dbtest"
	bookdomain "github.com/ghuser/biblioteca/services/book/domain"
	"github.com/ghuser/biblioteca/services/book/domain/models"
	"github.com/ghuser/biblioteca/services/book/domain/repositories"
	"github.com/ghuser/biblioteca/services/book/infrastructure/persistence/postgres"
)

var t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newBook(title, author, isbn, genre string, available bool) *models.Book {
	b := &models.Book{
		Item: catalog.Item{
			Title:           title,
			Author:          author,
			PublicationYear: 1965,
			Available:       available,
			Kind:            catalog.KindBook,
		},
		ISBN:  isbn,
		Genre: genre,
	}
	b.MarkCreated(t0)
	return b
}

func newRepo(t *testing.T) *postgres.BookRepository {
	return postgres.NewBookRepository(dbtest.New(t), nil)
}

func TestBookRepository_SaveAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	pages, price := 412, 19.5
	b := newBook("Dune", "Frank Herbert", "0001", "Ciencia ficción", true)
	b.Pages = &pages
	b.Price = &price
	b.Description = "Arrakis"

	require.NoError(t, repo.Save(ctx, b))
	require.NotZero(t, b.ID)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "Arrakis", got.Description)
	assert.Equal(t, catalog.KindBook, got.Kind)
	assert.True(t, got.Available)
	require.NotNil(t, got.Pages)
	assert.Equal(t, 412, *got.Pages)
	require.NotNil(t, got.Price)
	assert.InDelta(t, 19.5, *got.Price, 0.001)
	assert.Nil(t, got.Stock)
	assert.Empty(t, got.Publisher)
	assert.True(t, got.CreatedAt.Equal(t0))
	assert.True(t, got.UpdatedAt.Equal(t0))
}

func TestBookRepository_StoresValuesExactly(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	pages, stock, price := 3000000000, 1<<40, 12.345
	b := newBook("Enciclopedia", "Varios", "0002", "", true)
	b.Pages = &pages
	b.Stock = &stock
	b.Price = &price
	b.Description = "   "
	require.NoError(t, repo.Save(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, &pages, got.Pages)
	assert.Equal(t, &stock, got.Stock)
	assert.Equal(t, &price, got.Price)
	assert.Equal(t, "   ", got.Description)
	assert.Empty(t, got.Genre)
}

func TestBookRepository_SaveDuplicateISBN(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newBook("A", "X", "0001", "", true)))
	err := repo.Save(ctx, newBook("B", "Y", "0001", "", true))
	assert.ErrorIs(t, err, bookdomain.ErrBookAlreadyExists)
}

func TestBookRepository_GetByIDMissing(t *testing.T) {
	_, err := newRepo(t).GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, bookdomain.ErrBookNotFound)
}

func TestBookRepository_UpdateKeepsCreatedAt(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	b := newBook("Dune", "Herbert", "0001", "", true)
	require.NoError(t, repo.Save(ctx, b))

	upd := newBook("Dune Messiah", "Herbert", "0002", "", false)
	upd.ID = b.ID
	upd.CreatedAt = time.Time{}
	upd.MarkUpdated(t0) // same instant as creation: must still advance
	require.NoError(t, repo.Update(ctx, upd))

	assert.True(t, upd.CreatedAt.Equal(t0))
	assert.True(t, upd.UpdatedAt.After(t0))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", got.Title)
	assert.Equal(t, "0002", got.ISBN)
	assert.False(t, got.Available)
	assert.True(t, got.CreatedAt.Equal(t0))
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestBookRepository_UpdateMissing(t *testing.T) {
	b := newBook("Dune", "Herbert", "0001", "", true)
	b.ID = 42
	err := newRepo(t).Update(context.Background(), b)
	assert.ErrorIs(t, err, bookdomain.ErrBookNotFound)
}

func TestBookRepository_UpdateDuplicateISBN(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	a := newBook("A", "X", "0001", "", true)
	b := newBook("B", "Y", "0002", "", true)
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	b.ISBN = "0001"
	assert.ErrorIs(t, repo.Update(ctx, b), bookdomain.ErrBookAlreadyExists)
}

func TestBookRepository_Delete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	b := newBook("Dune", "Herbert", "0001", "", true)
	require.NoError(t, repo.Save(ctx, b))

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err := repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, bookdomain.ErrBookNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), bookdomain.ErrBookNotFound)
}

func TestBookRepository_Find(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	dune := newBook("Dune", "Frank Herbert", "0001", "Ciencia ficción", true)
	dune.Publisher = "Ace"
	quijote := newBook("Don Quijote", "Cervantes", "0002", "Novela", false)
	pct := newBook("100% Real", "Anon", "0003", "", true)
	for _, b := range []*models.Book{dune, quijote, pct} {
		require.NoError(t, repo.Save(ctx, b))
	}
	yes, no := true, false

	tests := []struct {
		name   string
		filter repositories.Filter
		want   []string
	}{
		{"all ordered by id", repositories.Filter{}, []string{"Dune", "Don Quijote", "100% Real"}},
		{"query matches title case-insensitively", repositories.Filter{Query: "DUNE"}, []string{"Dune"}},
		{"query matches author", repositories.Filter{Query: "cervantes"}, []string{"Don Quijote"}},
		{"query matches isbn", repositories.Filter{Query: "0003"}, []string{"100% Real"}},
		{"query matches publisher", repositories.Filter{Query: "ace"}, []string{"Dune"}},
		{"percent is literal", repositories.Filter{Query: "%"}, []string{"100% Real"}},
		{"underscore is literal", repositories.Filter{Query: "_"}, nil},
		{"available", repositories.Filter{Available: &yes}, []string{"Dune", "100% Real"}},
		{"unavailable", repositories.Filter{Available: &no}, []string{"Don Quijote"}},
		{"genre substring", repositories.Filter{Genre: "ficc"}, []string{"Dune"}},
		{"author substring", repositories.Filter{Author: "herb"}, []string{"Dune"}},
		{"publisher", repositories.Filter{Publisher: "ACE"}, []string{"Dune"}},
		{"isbn exact", repositories.Filter{ISBN: "0002"}, []string{"Don Quijote"}},
		{"isbn is not a substring match", repositories.Filter{ISBN: "000"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, err := repo.Find(ctx, tt.filter)
			require.NoError(t, err)
			require.NotNil(t, books)
			titles := make([]string, 0, len(books))
			for _, b := range books {
				titles = append(titles, b.Title)
			}
			if tt.want == nil {
				assert.Empty(t, titles)
				return
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestBookRepository_GenresAndCount(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	genres, err := repo.Genres(ctx)
	require.NoError(t, err)
	assert.Empty(t, genres)

	tally, err := repo.CountByAvailability(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Tally{}, tally)

	require.NoError(t, repo.Save(ctx, newBook("A", "X", "1", "Novela", true)))
	require.NoError(t, repo.Save(ctx, newBook("B", "X", "2", "Ensayo", false)))
	require.NoError(t, repo.Save(ctx, newBook("C", "X", "3", "Novela", true)))
	require.NoError(t, repo.Save(ctx, newBook("D", "X", "4", "", true)))

	genres, err = repo.Genres(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ensayo", "Novela"}, genres)

	tally, err = repo.CountByAvailability(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Tally{Total: 4, Available: 3, Unavailable: 1}, tally)
}
