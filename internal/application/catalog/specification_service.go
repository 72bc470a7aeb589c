package catalog

import (
	"context"
	"net/http"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

const specificationsPath = "book-specifications"

// BookSpecificationService covers book specifications
type BookSpecificationService struct {
	r Requester
}

// NewBookSpecificationService creates a new BookSpecificationService
func NewBookSpecificationService(r Requester) *BookSpecificationService {
	return &BookSpecificationService{r: r}
}

// List returns a page of specifications
func (s *BookSpecificationService) List(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.BookSpecification], error) {
	return list[catalog.BookSpecification](ctx, s.r, specificationsPath, opts)
}

// Get fetches a specification by id
func (s *BookSpecificationService) Get(ctx context.Context, id string) (*catalog.BookSpecification, error) {
	return get[*catalog.BookSpecification](ctx, s.r, path(specificationsPath, id), nil)
}

// ByProduct fetches the specification attached to a product
func (s *BookSpecificationService) ByProduct(ctx context.Context, productID string) (*catalog.BookSpecification, error) {
	return get[*catalog.BookSpecification](ctx, s.r, path(specificationsPath, "product", productID), nil)
}

// ByISBN fetches a specification by ISBN
func (s *BookSpecificationService) ByISBN(ctx context.Context, isbn string) (*catalog.BookSpecification, error) {
	return get[*catalog.BookSpecification](ctx, s.r, path(specificationsPath, "isbn", isbn), nil)
}

// Search returns a page of specifications matching query
func (s *BookSpecificationService) Search(ctx context.Context, query string, opts ListOptions) (*catalog.Page[catalog.BookSpecification], error) {
	return searchPage[catalog.BookSpecification](ctx, s.r, specificationsPath, query, opts)
}

// BySubject returns specifications for a subject
func (s *BookSpecificationService) BySubject(ctx context.Context, subject string) ([]catalog.BookSpecification, error) {
	return get[[]catalog.BookSpecification](ctx, s.r, path(specificationsPath, "subject", subject), nil)
}

// ByGrade returns specifications for a grade level
func (s *BookSpecificationService) ByGrade(ctx context.Context, gradeLevel string) ([]catalog.BookSpecification, error) {
	return get[[]catalog.BookSpecification](ctx, s.r, path(specificationsPath, "grade", gradeLevel), nil)
}

// ByBoard returns specifications for an education board
func (s *BookSpecificationService) ByBoard(ctx context.Context, board string) ([]catalog.BookSpecification, error) {
	return get[[]catalog.BookSpecification](ctx, s.r, path(specificationsPath, "board", board), nil)
}

// Create creates a new specification
func (s *BookSpecificationService) Create(ctx context.Context, spec catalog.BookSpecification) (*catalog.BookSpecification, error) {
	return send[*catalog.BookSpecification](ctx, s.r, http.MethodPost, path(specificationsPath), spec)
}

// Update replaces a specification's editable fields
func (s *BookSpecificationService) Update(ctx context.Context, id string, spec catalog.BookSpecification) (*catalog.BookSpecification, error) {
	return send[*catalog.BookSpecification](ctx, s.r, http.MethodPut, path(specificationsPath, id), spec)
}

// Delete deletes a specification
func (s *BookSpecificationService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, specificationsPath, id)
}
