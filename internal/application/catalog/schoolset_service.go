package catalog

import (
	"context"
	"net/http"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

const schoolSetsPath = "school-sets"

// SchoolSetService covers school sets
type SchoolSetService struct {
	r Requester
}

// NewSchoolSetService creates a new SchoolSetService
func NewSchoolSetService(r Requester) *SchoolSetService {
	return &SchoolSetService{r: r}
}

// List returns a page of school sets
func (s *SchoolSetService) List(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.SchoolSet], error) {
	return list[catalog.SchoolSet](ctx, s.r, schoolSetsPath, opts)
}

// Get fetches a school set by id
func (s *SchoolSetService) Get(ctx context.Context, id string) (*catalog.SchoolSet, error) {
	return get[*catalog.SchoolSet](ctx, s.r, path(schoolSetsPath, id), nil)
}

// BySlug fetches a school set by slug
func (s *SchoolSetService) BySlug(ctx context.Context, slug string) (*catalog.SchoolSet, error) {
	return get[*catalog.SchoolSet](ctx, s.r, path(schoolSetsPath, "slug", slug), nil)
}

// BySchool returns the sets sold for a school
func (s *SchoolSetService) BySchool(ctx context.Context, schoolName string) ([]catalog.SchoolSet, error) {
	return get[[]catalog.SchoolSet](ctx, s.r, path(schoolSetsPath, "school", schoolName), nil)
}

// ByGrade returns the sets for a grade level
func (s *SchoolSetService) ByGrade(ctx context.Context, gradeLevel string) ([]catalog.SchoolSet, error) {
	return get[[]catalog.SchoolSet](ctx, s.r, path(schoolSetsPath, "grade", gradeLevel), nil)
}

// ByBoard returns the sets for an education board
func (s *SchoolSetService) ByBoard(ctx context.Context, board string) ([]catalog.SchoolSet, error) {
	return get[[]catalog.SchoolSet](ctx, s.r, path(schoolSetsPath, "board", board), nil)
}

// ByType returns the sets of a type
func (s *SchoolSetService) ByType(ctx context.Context, setType catalog.SchoolSetType) ([]catalog.SchoolSet, error) {
	return get[[]catalog.SchoolSet](ctx, s.r, path(schoolSetsPath, "type", string(setType)), nil)
}

// ByStatus returns the sets in a status
func (s *SchoolSetService) ByStatus(ctx context.Context, status string) ([]catalog.SchoolSet, error) {
	return get[[]catalog.SchoolSet](ctx, s.r, path(schoolSetsPath, "status", status), nil)
}

// Featured returns featured sets
func (s *SchoolSetService) Featured(ctx context.Context) ([]catalog.SchoolSet, error) {
	return get[[]catalog.SchoolSet](ctx, s.r, path(schoolSetsPath, "featured"), nil)
}

// Search returns a page of sets matching term
func (s *SchoolSetService) Search(ctx context.Context, term string, opts ListOptions) (*catalog.Page[catalog.SchoolSet], error) {
	return searchPage[catalog.SchoolSet](ctx, s.r, schoolSetsPath, term, opts)
}

// Create creates a new school set
func (s *SchoolSetService) Create(ctx context.Context, set catalog.SchoolSet) (*catalog.SchoolSet, error) {
	return send[*catalog.SchoolSet](ctx, s.r, http.MethodPost, path(schoolSetsPath), set)
}

// Update replaces a school set's editable fields
func (s *SchoolSetService) Update(ctx context.Context, id string, set catalog.SchoolSet) (*catalog.SchoolSet, error) {
	return send[*catalog.SchoolSet](ctx, s.r, http.MethodPut, path(schoolSetsPath, id), set)
}

// Delete deletes a school set
func (s *SchoolSetService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, schoolSetsPath, id)
}
