package catalog

import (
	"context"
	"net/http"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

const uniformsPath = "uniforms"

// UniformService covers school uniforms
type UniformService struct {
	r Requester
}

// NewUniformService creates a new UniformService
func NewUniformService(r Requester) *UniformService {
	return &UniformService{r: r}
}

// List returns a page of uniforms
func (s *UniformService) List(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.Uniform], error) {
	return list[catalog.Uniform](ctx, s.r, uniformsPath, opts)
}

// Get fetches a uniform by id
func (s *UniformService) Get(ctx context.Context, id string) (*catalog.Uniform, error) {
	return get[*catalog.Uniform](ctx, s.r, path(uniformsPath, id), nil)
}

// BySlug fetches a uniform by slug
func (s *UniformService) BySlug(ctx context.Context, slug string) (*catalog.Uniform, error) {
	return get[*catalog.Uniform](ctx, s.r, path(uniformsPath, "slug", slug), nil)
}

// BySchool returns the uniforms of a school
func (s *UniformService) BySchool(ctx context.Context, schoolName string) ([]catalog.Uniform, error) {
	return get[[]catalog.Uniform](ctx, s.r, path(uniformsPath, "school", schoolName), nil)
}

// ByGrade returns the uniforms for a grade level
func (s *UniformService) ByGrade(ctx context.Context, gradeLevel string) ([]catalog.Uniform, error) {
	return get[[]catalog.Uniform](ctx, s.r, path(uniformsPath, "grade", gradeLevel), nil)
}

// ByType returns the uniforms of a type
func (s *UniformService) ByType(ctx context.Context, uniformType string) ([]catalog.Uniform, error) {
	return get[[]catalog.Uniform](ctx, s.r, path(uniformsPath, "type", uniformType), nil)
}

// ByGender returns the uniforms for a gender
func (s *UniformService) ByGender(ctx context.Context, gender string) ([]catalog.Uniform, error) {
	return get[[]catalog.Uniform](ctx, s.r, path(uniformsPath, "gender", gender), nil)
}

// Active returns all active uniforms
func (s *UniformService) Active(ctx context.Context) ([]catalog.Uniform, error) {
	return get[[]catalog.Uniform](ctx, s.r, path(uniformsPath, "active"), nil)
}

// Search returns a page of uniforms matching term
func (s *UniformService) Search(ctx context.Context, term string, opts ListOptions) (*catalog.Page[catalog.Uniform], error) {
	return searchPage[catalog.Uniform](ctx, s.r, uniformsPath, term, opts)
}

// Create creates a new uniform
func (s *UniformService) Create(ctx context.Context, u catalog.Uniform) (*catalog.Uniform, error) {
	return send[*catalog.Uniform](ctx, s.r, http.MethodPost, path(uniformsPath), u)
}

// Update replaces a uniform's editable fields
func (s *UniformService) Update(ctx context.Context, id string, u catalog.Uniform) (*catalog.Uniform, error) {
	return send[*catalog.Uniform](ctx, s.r, http.MethodPut, path(uniformsPath, id), u)
}

// Delete deletes a uniform
func (s *UniformService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, uniformsPath, id)
}
