package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/httpclient"
)

// MockRequester is a mock implementation of Requester
type MockRequester struct {
	mock.Mock
}

func (m *MockRequester) Do(ctx context.Context, req httpclient.Request, out any) error {
	args := m.Called(ctx, req, out)
	return args.Error(0)
}

// respondWith makes the mock decode raw into the caller's out value
func respondWith(raw string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		if out := args.Get(2); out != nil {
			_ = json.Unmarshal([]byte(raw), out)
		}
	}
}

func expectRequest(m *MockRequester, method, p string, raw string) *mock.Call {
	return m.On("Do", mock.Anything, mock.MatchedBy(func(r httpclient.Request) bool {
		return r.Method == method && r.Path == p
	}), mock.Anything).Run(respondWith(raw)).Return(nil)
}

func TestListOptions_Query(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want url.Values
	}{
		{"defaults", ListOptions{}, url.Values{"page": {"1"}, "limit": {"20"}}},
		{"explicit", ListOptions{Page: 3, Limit: 5}, url.Values{"page": {"3"}, "limit": {"5"}}},
		{
			"filters skip blanks",
			ListOptions{Page: 2, Filters: map[string]string{"status": "active", "type": ""}},
			url.Values{"page": {"2"}, "limit": {"20"}, "status": {"active"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.query(DefaultPageSize))
		})
	}
}

func TestPath_EscapesSegments(t *testing.T) {
	assert.Equal(t, "/gift-cards/recipient/a%2Fb@x.com", path(giftCardsPath, "recipient", "a/b@x.com"))
	assert.Equal(t, "/authors", path(authorsPath))
}

func TestBookService_ListAuthors(t *testing.T) {
	m := new(MockRequester)
	m.On("Do", mock.Anything, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/authors",
		Query:  url.Values{"page": {"2"}, "limit": {"20"}},
	}, mock.Anything).Run(respondWith(`{"data":[{"_id":"a1","name":"Jane"}],"page":2,"totalPages":4,"total":70}`)).Return(nil)

	page, err := NewBookService(m).ListAuthors(context.Background(), ListOptions{Page: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Jane", page.Data[0].Name)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 4, page.TotalPages)
	m.AssertExpectations(t)
}

func TestBookService_SearchAuthors(t *testing.T) {
	m := new(MockRequester)
	m.On("Do", mock.Anything, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/authors/search",
		Query:  url.Values{"q": {"tolkien"}},
	}, mock.Anything).Run(respondWith(`[{"_id":"a1","name":"J. R. R. Tolkien"}]`)).Return(nil)

	got, err := NewBookService(m).SearchAuthors(context.Background(), "tolkien")
	require.NoError(t, err)
	require.Len(t, got, 1)
	m.AssertExpectations(t)
}

func TestBookService_ErrorsPropagate(t *testing.T) {
	m := new(MockRequester)
	apiErr := &httpclient.APIError{StatusCode: http.StatusConflict, Message: "Author already exists"}
	m.On("Do", mock.Anything, mock.Anything, mock.Anything).Return(apiErr).Once()

	created, err := NewBookService(m).CreateAuthor(context.Background(), catalog.Author{Name: "Jane"})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, apiErr)
	m.AssertNumberOfCalls(t, "Do", 1)
}

func TestDeleteSendsNoBody(t *testing.T) {
	m := new(MockRequester)
	m.On("Do", mock.Anything, httpclient.Request{Method: http.MethodDelete, Path: "/warehouses/w1"}, nil).Return(nil).Once()

	require.NoError(t, NewInventoryService(m).DeleteWarehouse(context.Background(), "w1"))
	m.AssertExpectations(t)
}

// TestRoutes checks the method and path every action maps to
func TestRoutes(t *testing.T) {
	ctx := context.Background()
	ten := decimal.NewFromInt(10)

	tests := []struct {
		name   string
		method string
		path   string
		call   func(s *Services) error
	}{
		{"author by slug", http.MethodGet, "/authors/slug/jane-doe", func(s *Services) error {
			_, err := s.Books.AuthorBySlug(ctx, "jane-doe")
			return err
		}},
		{"update publisher", http.MethodPut, "/publishers/p1", func(s *Services) error {
			_, err := s.Books.UpdatePublisher(ctx, "p1", catalog.Publisher{Name: "Penguin"})
			return err
		}},
		{"add book to series", http.MethodPut, "/book-series/s1/add-book", func(s *Services) error {
			_, err := s.Books.AddBookToSeries(ctx, "s1", catalog.SeriesBook{BookID: "b1", Order: 1})
			return err
		}},
		{"remove book from series", http.MethodPut, "/book-series/s1/remove-book", func(s *Services) error {
			_, err := s.Books.RemoveBookFromSeries(ctx, "s1", "b1")
			return err
		}},
		{"approve order", http.MethodPut, "/purchase-orders/o1/approve", func(s *Services) error {
			_, err := s.Suppliers.ApproveOrder(ctx, "o1", "admin")
			return err
		}},
		{"receive order", http.MethodPut, "/purchase-orders/o1/receive", func(s *Services) error {
			_, err := s.Suppliers.ReceiveOrder(ctx, "o1", []catalog.ReceivedItem{{ItemIndex: 0, Quantity: 2}})
			return err
		}},
		{"update stock", http.MethodPost, "/inventory/i1/stock", func(s *Services) error {
			_, err := s.Inventory.UpdateStock(ctx, "i1", catalog.StockAdjustment{Quantity: 3, Operation: catalog.StockAdd})
			return err
		}},
		{"spec by isbn", http.MethodGet, "/book-specifications/isbn/978-0", func(s *Services) error {
			_, err := s.Specifications.ByISBN(ctx, "978-0")
			return err
		}},
		{"school sets featured", http.MethodGet, "/school-sets/featured", func(s *Services) error {
			_, err := s.SchoolSets.Featured(ctx)
			return err
		}},
		{"uniforms by gender", http.MethodGet, "/uniforms/gender/unisex", func(s *Services) error {
			_, err := s.Uniforms.ByGender(ctx, "unisex")
			return err
		}},
		{"service price", http.MethodGet, "/gift-services/g1/price", func(s *Services) error {
			_, err := s.Gifts.CalculateServicePrice(ctx, "g1", ten)
			return err
		}},
		{"generate code", http.MethodPost, "/gift-cards/generate-code", func(s *Services) error {
			_, err := s.Gifts.GenerateCode(ctx)
			return err
		}},
		{"use card", http.MethodPut, "/gift-cards/code/GC-1/use", func(s *Services) error {
			_, err := s.Gifts.UseCard(ctx, "GC-1", catalog.GiftCardRedemption{UsedBy: "c1", OrderID: "o1", Amount: ten})
			return err
		}},
		{"refund card", http.MethodPut, "/gift-cards/code/GC-1/refund", func(s *Services) error {
			_, err := s.Gifts.RefundCard(ctx, "GC-1", ten)
			return err
		}},
		{"calculate discount", http.MethodPost, "/pricing-rules/calculate-discount", func(s *Services) error {
			_, err := s.Pricing.CalculateDiscount(ctx, catalog.DiscountRequest{Quantity: 2, OrderAmount: ten})
			return err
		}},
		{"validate rule", http.MethodGet, "/pricing-rules/r1/validate", func(s *Services) error {
			_, err := s.Pricing.Validate(ctx, "r1")
			return err
		}},
		{"delete product kind", http.MethodDelete, "/product-kinds/k1", func(s *Services) error {
			return s.ProductKinds.Delete(ctx, "k1")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockRequester)
			expectRequest(m, tt.method, tt.path, `null`).Once()

			require.NoError(t, tt.call(NewServices(m)))
			m.AssertExpectations(t)
		})
	}
}

func TestGiftService_PriceAndValidation(t *testing.T) {
	m := new(MockRequester)
	m.On("Do", mock.Anything, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/gift-services/g1/price",
		Query:  url.Values{"orderAmount": {"499.5"}},
	}, mock.Anything).Run(respondWith(`25.5`)).Return(nil)
	expectRequest(m, http.MethodGet, "/gift-cards/code/GC-1/validate", `{"valid":true,"balance":120}`)

	svc := NewGiftService(m)
	price, err := svc.CalculateServicePrice(context.Background(), "g1", decimal.RequireFromString("499.5"))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("25.5").Equal(price))

	v, err := svc.ValidateCard(context.Background(), "GC-1")
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.True(t, decimal.NewFromInt(120).Equal(v.Balance))
}

func TestPricingService_Applicable(t *testing.T) {
	m := new(MockRequester)
	m.On("Do", mock.Anything, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/pricing-rules/applicable",
		Query: url.Values{
			"productIds": {"p1,p2"},
			"quantity":   {"3"},
		},
	}, mock.Anything).Run(respondWith(`[{"_id":"r1","name":"Bulk"}]`)).Return(nil)

	rules, err := NewPricingService(m).Applicable(context.Background(), ApplicableQuery{
		ProductIDs: []string{"p1", "p2"},
		Quantity:   3,
	})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "Bulk", rules[0].Name)
}

func TestPricingService_CalculateDiscountNoMatch(t *testing.T) {
	m := new(MockRequester)
	expectRequest(m, http.MethodPost, "/pricing-rules/calculate-discount", `null`)

	got, err := NewPricingService(m).CalculateDiscount(context.Background(), catalog.DiscountRequest{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductKindService(t *testing.T) {
	t.Run("list defaults to 50", func(t *testing.T) {
		m := new(MockRequester)
		m.On("Do", mock.Anything, httpclient.Request{
			Method: http.MethodGet,
			Path:   "/product-kinds",
			Query:  url.Values{"page": {"1"}, "limit": {"50"}},
		}, mock.Anything).Run(respondWith(`[{"_id":"k1","key":"book","name":"Book"}]`)).Return(nil)

		page, err := NewProductKindService(m).List(context.Background(), ListOptions{})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("create unwraps kind", func(t *testing.T) {
		m := new(MockRequester)
		expectRequest(m, http.MethodPost, "/product-kinds", `{"kind":{"_id":"k2","key":"toy","name":"Toy"}}`)

		got, err := NewProductKindService(m).Create(context.Background(), catalog.ProductKind{Key: "toy", Name: "Toy"})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "k2", got.ID)
	})

	t.Run("create failure", func(t *testing.T) {
		m := new(MockRequester)
		m.On("Do", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("boom"))

		got, err := NewProductKindService(m).Create(context.Background(), catalog.ProductKind{})
		assert.Nil(t, got)
		assert.EqualError(t, err, "boom")
	})
}
