package catalog

import (
	"context"
	"net/http"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

const (
	productKindsPath = "product-kinds"

	// productKindPageSize is the default page size for product kinds
	productKindPageSize = 50
)

// ProductKindService covers product kinds
type ProductKindService struct {
	r Requester
}

// NewProductKindService creates a new ProductKindService
func NewProductKindService(r Requester) *ProductKindService {
	return &ProductKindService{r: r}
}

type kindEnvelope struct {
	Kind *catalog.ProductKind `json:"kind"`
}

// List returns a page of product kinds. The default limit is 50.
func (s *ProductKindService) List(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.ProductKind], error) {
	return listWithDefault[catalog.ProductKind](ctx, s.r, productKindsPath, opts, productKindPageSize)
}

// Create creates a new product kind
func (s *ProductKindService) Create(ctx context.Context, k catalog.ProductKind) (*catalog.ProductKind, error) {
	out, err := send[kindEnvelope](ctx, s.r, http.MethodPost, path(productKindsPath), k)
	return out.Kind, err
}

// Update replaces a product kind's editable fields
func (s *ProductKindService) Update(ctx context.Context, id string, k catalog.ProductKind) (*catalog.ProductKind, error) {
	out, err := send[kindEnvelope](ctx, s.r, http.MethodPut, path(productKindsPath, id), k)
	return out.Kind, err
}

// Delete deletes a product kind
func (s *ProductKindService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, productKindsPath, id)
}
