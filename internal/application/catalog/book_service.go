package catalog

import (
	"context"
	"net/http"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

const (
	authorsPath    = "authors"
	publishersPath = "publishers"
	seriesPath     = "book-series"
)

// BookService covers authors, publishers and book series
type BookService struct {
	r Requester
}

// NewBookService creates a new BookService
func NewBookService(r Requester) *BookService {
	return &BookService{r: r}
}

// ListAuthors returns a page of authors
func (s *BookService) ListAuthors(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.Author], error) {
	return list[catalog.Author](ctx, s.r, authorsPath, opts)
}

// AuthorStats returns aggregate author statistics
func (s *BookService) AuthorStats(ctx context.Context) (catalog.Stats, error) {
	return get[catalog.Stats](ctx, s.r, path(authorsPath, "stats"), nil)
}

// ActiveAuthors returns all active authors
func (s *BookService) ActiveAuthors(ctx context.Context) ([]catalog.Author, error) {
	return get[[]catalog.Author](ctx, s.r, path(authorsPath, "active"), nil)
}

// TopAuthors returns the authors with the most books
func (s *BookService) TopAuthors(ctx context.Context, limit int) ([]catalog.Author, error) {
	return get[[]catalog.Author](ctx, s.r, path(authorsPath, "top"), topQuery(limit))
}

// SearchAuthors finds authors matching term
func (s *BookService) SearchAuthors(ctx context.Context, term string) ([]catalog.Author, error) {
	return search[catalog.Author](ctx, s.r, authorsPath, term)
}

// AuthorsByGenre returns authors writing in genre
func (s *BookService) AuthorsByGenre(ctx context.Context, genre string) ([]catalog.Author, error) {
	return get[[]catalog.Author](ctx, s.r, path(authorsPath, "genre", genre), nil)
}

// AuthorBySlug fetches one author by slug
func (s *BookService) AuthorBySlug(ctx context.Context, slug string) (*catalog.Author, error) {
	return get[*catalog.Author](ctx, s.r, path(authorsPath, "slug", slug), nil)
}

// CreateAuthor creates a new author
func (s *BookService) CreateAuthor(ctx context.Context, a catalog.Author) (*catalog.Author, error) {
	return send[*catalog.Author](ctx, s.r, http.MethodPost, path(authorsPath), a)
}

// UpdateAuthor replaces an author's editable fields
func (s *BookService) UpdateAuthor(ctx context.Context, id string, a catalog.Author) (*catalog.Author, error) {
	return send[*catalog.Author](ctx, s.r, http.MethodPut, path(authorsPath, id), a)
}

// DeleteAuthor deletes an author
func (s *BookService) DeleteAuthor(ctx context.Context, id string) error {
	return remove(ctx, s.r, authorsPath, id)
}

// ListPublishers returns a page of publishers
func (s *BookService) ListPublishers(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.Publisher], error) {
	return list[catalog.Publisher](ctx, s.r, publishersPath, opts)
}

// PublisherStats returns aggregate publisher statistics
func (s *BookService) PublisherStats(ctx context.Context) (catalog.Stats, error) {
	return get[catalog.Stats](ctx, s.r, path(publishersPath, "stats"), nil)
}

// ActivePublishers returns all active publishers
func (s *BookService) ActivePublishers(ctx context.Context) ([]catalog.Publisher, error) {
	return get[[]catalog.Publisher](ctx, s.r, path(publishersPath, "active"), nil)
}

// TopPublishers returns the publishers with the most books
func (s *BookService) TopPublishers(ctx context.Context, limit int) ([]catalog.Publisher, error) {
	return get[[]catalog.Publisher](ctx, s.r, path(publishersPath, "top"), topQuery(limit))
}

// SearchPublishers finds publishers matching term
func (s *BookService) SearchPublishers(ctx context.Context, term string) ([]catalog.Publisher, error) {
	return search[catalog.Publisher](ctx, s.r, publishersPath, term)
}

// PublishersBySpecialty returns publishers with the given specialty
func (s *BookService) PublishersBySpecialty(ctx context.Context, specialty string) ([]catalog.Publisher, error) {
	return get[[]catalog.Publisher](ctx, s.r, path(publishersPath, "specialty", specialty), nil)
}

// PublisherBySlug fetches one publisher by slug
func (s *BookService) PublisherBySlug(ctx context.Context, slug string) (*catalog.Publisher, error) {
	return get[*catalog.Publisher](ctx, s.r, path(publishersPath, "slug", slug), nil)
}

// CreatePublisher creates a new publisher
func (s *BookService) CreatePublisher(ctx context.Context, p catalog.Publisher) (*catalog.Publisher, error) {
	return send[*catalog.Publisher](ctx, s.r, http.MethodPost, path(publishersPath), p)
}

// UpdatePublisher replaces a publisher's editable fields
func (s *BookService) UpdatePublisher(ctx context.Context, id string, p catalog.Publisher) (*catalog.Publisher, error) {
	return send[*catalog.Publisher](ctx, s.r, http.MethodPut, path(publishersPath, id), p)
}

// DeletePublisher deletes a publisher
func (s *BookService) DeletePublisher(ctx context.Context, id string) error {
	return remove(ctx, s.r, publishersPath, id)
}

// ListSeries returns a page of book series
func (s *BookService) ListSeries(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.BookSeries], error) {
	return list[catalog.BookSeries](ctx, s.r, seriesPath, opts)
}

// SeriesStats returns aggregate series statistics
func (s *BookService) SeriesStats(ctx context.Context) (catalog.Stats, error) {
	return get[catalog.Stats](ctx, s.r, path(seriesPath, "stats"), nil)
}

// ActiveSeries returns all active series
func (s *BookService) ActiveSeries(ctx context.Context) ([]catalog.BookSeries, error) {
	return get[[]catalog.BookSeries](ctx, s.r, path(seriesPath, "active"), nil)
}

// OngoingSeries returns series still being published
func (s *BookService) OngoingSeries(ctx context.Context) ([]catalog.BookSeries, error) {
	return get[[]catalog.BookSeries](ctx, s.r, path(seriesPath, "ongoing"), nil)
}

// TopSeries returns the largest series
func (s *BookService) TopSeries(ctx context.Context, limit int) ([]catalog.BookSeries, error) {
	return get[[]catalog.BookSeries](ctx, s.r, path(seriesPath, "top"), topQuery(limit))
}

// SearchSeries finds series matching term
func (s *BookService) SearchSeries(ctx context.Context, term string) ([]catalog.BookSeries, error) {
	return search[catalog.BookSeries](ctx, s.r, seriesPath, term)
}

// SeriesByAuthor returns series written by an author
func (s *BookService) SeriesByAuthor(ctx context.Context, authorID string) ([]catalog.BookSeries, error) {
	return get[[]catalog.BookSeries](ctx, s.r, path(seriesPath, "author", authorID), nil)
}

// SeriesByPublisher returns series from a publisher
func (s *BookService) SeriesByPublisher(ctx context.Context, publisherID string) ([]catalog.BookSeries, error) {
	return get[[]catalog.BookSeries](ctx, s.r, path(seriesPath, "publisher", publisherID), nil)
}

// SeriesByGenre returns series in a genre
func (s *BookService) SeriesByGenre(ctx context.Context, genre string) ([]catalog.BookSeries, error) {
	return get[[]catalog.BookSeries](ctx, s.r, path(seriesPath, "genre", genre), nil)
}

// SeriesByAgeGroup returns series for an age group
func (s *BookService) SeriesByAgeGroup(ctx context.Context, ageGroup string) ([]catalog.BookSeries, error) {
	return get[[]catalog.BookSeries](ctx, s.r, path(seriesPath, "age-group", ageGroup), nil)
}

// SeriesBySlug fetches one series by slug
func (s *BookService) SeriesBySlug(ctx context.Context, slug string) (*catalog.BookSeries, error) {
	return get[*catalog.BookSeries](ctx, s.r, path(seriesPath, "slug", slug), nil)
}

// CreateSeries creates a new book series
func (s *BookService) CreateSeries(ctx context.Context, bs catalog.BookSeries) (*catalog.BookSeries, error) {
	return send[*catalog.BookSeries](ctx, s.r, http.MethodPost, path(seriesPath), bs)
}

// UpdateSeries replaces a series' editable fields
func (s *BookService) UpdateSeries(ctx context.Context, id string, bs catalog.BookSeries) (*catalog.BookSeries, error) {
	return send[*catalog.BookSeries](ctx, s.r, http.MethodPut, path(seriesPath, id), bs)
}

// AddBookToSeries places a book at a position in the series
func (s *BookService) AddBookToSeries(ctx context.Context, id string, book catalog.SeriesBook) (*catalog.BookSeries, error) {
	return send[*catalog.BookSeries](ctx, s.r, http.MethodPut, path(seriesPath, id, "add-book"), book)
}

// RemoveBookFromSeries takes a book out of the series
func (s *BookService) RemoveBookFromSeries(ctx context.Context, id, bookID string) (*catalog.BookSeries, error) {
	body := map[string]string{"bookId": bookID}
	return send[*catalog.BookSeries](ctx, s.r, http.MethodPut, path(seriesPath, id, "remove-book"), body)
}

// DeleteSeries deletes a book series
func (s *BookService) DeleteSeries(ctx context.Context, id string) error {
	return remove(ctx, s.r, seriesPath, id)
}
