package service

import (
	"context"
	"errors"
	"testing"

	"admin-dashboard/internal/listing"
	"admin-dashboard/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductService(products []model.Product, fetcher Fetcher) ProductService {
	return NewProductService(newStore(products, nil), fetcher, listing.DefaultPageSize, zerolog.Nop(),
		WithProductClock(fixedClock),
		WithProductIDs(sequentialIDs("new-")),
	)
}

func validInput() model.ProductInput {
	return model.ProductInput{Name: "Standing Desk", Price: 199, Stock: 3, Category: "Home", Rating: 5}
}

func TestProductService_Load(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *MockFetcher)
		wantItems int
		wantErr   bool
	}{
		{
			name: "Success",
			setupMock: func(f *MockFetcher) {
				f.On("Products", mock.Anything).Return(testProducts(), nil)
			},
			wantItems: 3,
		},
		{
			name: "Fetch failure",
			setupMock: func(f *MockFetcher) {
				f.On("Products", mock.Anything).Return(nil, errors.New("fixture unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := new(MockFetcher)
			tt.setupMock(fetcher)
			svc := newProductService(nil, fetcher)

			err := svc.Load(context.Background())

			list := svc.List(context.Background(), listing.ProductQuery{})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to load products")
				require.NotNil(t, list.Error)
				assert.Equal(t, model.FetchProductsFailed, *list.Error)
			} else {
				require.NoError(t, err)
				assert.Nil(t, list.Error)
				assert.Equal(t, tt.wantItems-1, list.TotalItems, "soft-deleted products are hidden")
			}
			assert.False(t, list.Loading)
			fetcher.AssertExpectations(t)
		})
	}
}

func TestProductService_List(t *testing.T) {
	svc := newProductService(testProducts(), nil)
	ctx := context.Background()

	list := svc.List(ctx, listing.ProductQuery{SortBy: listing.SortByPrice})
	require.Len(t, list.Items, 2)
	assert.Equal(t, "p1", list.Items[0].ID)
	assert.Equal(t, 1, list.Page.Page)
	assert.Equal(t, listing.DefaultPageSize, list.PageSize)

	list = svc.List(ctx, listing.ProductQuery{Status: string(model.ProductInactive)})
	require.Len(t, list.Items, 1)
	assert.Equal(t, "p2", list.Items[0].ID)

	list = svc.List(ctx, listing.ProductQuery{Page: 5})
	assert.Empty(t, list.Items)
	assert.Equal(t, 2, list.TotalItems)
}

func TestProductService_Categories(t *testing.T) {
	svc := newProductService(testProducts(), nil)
	assert.Equal(t, []string{"Home", "Electronics"}, svc.Categories(context.Background()))
}

func TestProductService_GetByID(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		wantDeleted bool
		wantErr     error
	}{
		{name: "Found", id: "p1"},
		{name: "Unknown", id: "nope", wantErr: model.ErrProductNotFound},
		{name: "Soft-deleted", id: "p3", wantDeleted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newProductService(testProducts(), nil)

			p, err := svc.GetByID(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, p.ID)
			assert.Equal(t, tt.wantDeleted, p.IsDeleted)
		})
	}
}

func TestProductService_Create(t *testing.T) {
	tests := []struct {
		name       string
		input      model.ProductInput
		wantErr    error
		wantMsg    string
		wantStatus model.ProductStatus
	}{
		{
			name:       "Defaults to ACTIVE",
			input:      validInput(),
			wantStatus: model.ProductActive,
		},
		{
			name: "Explicit INACTIVE",
			input: func() model.ProductInput {
				in := validInput()
				in.Status = model.ProductInactive
				return in
			}(),
			wantStatus: model.ProductInactive,
		},
		{
			name: "Short name",
			input: func() model.ProductInput {
				in := validInput()
				in.Name = "ab"
				return in
			}(),
			wantErr: model.ErrInvalidProduct,
			wantMsg: "Name must be at least 3 characters",
		},
		{
			name: "Rating out of range",
			input: func() model.ProductInput {
				in := validInput()
				in.Rating = 6
				return in
			}(),
			wantErr: model.ErrInvalidProduct,
			wantMsg: "Rating must be between 1 and 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newProductService(testProducts(), nil)
			ctx := context.Background()

			p, err := svc.Create(ctx, tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantMsg, err.Error())
				assert.Equal(t, 2, svc.List(ctx, listing.ProductQuery{}).TotalItems)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new-1", p.ID)
			assert.Equal(t, tt.wantStatus, p.Status)
			assert.Equal(t, fixedNow, p.UpdatedAt)

			stored, err := svc.GetByID(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, *p, *stored)
		})
	}
}

func TestProductService_CreateDuplicateID(t *testing.T) {
	svc := NewProductService(newStore(testProducts(), nil), nil, listing.DefaultPageSize, zerolog.Nop(),
		WithProductIDs(func() (string, error) { return "p1", nil }),
	)

	p, err := svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, model.ErrDuplicateProduct)
	assert.Nil(t, p)
}

func TestProductService_CreateIDFailure(t *testing.T) {
	svc := NewProductService(newStore(nil, nil), nil, listing.DefaultPageSize, zerolog.Nop(),
		WithProductIDs(func() (string, error) { return "", errors.New("entropy exhausted") }),
	)

	_, err := svc.Create(context.Background(), validInput())
	assert.Error(t, err)
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(testProducts(), nil)

	in := validInput()
	in.Name = "Desk Lamp XL"
	p, err := svc.Update(ctx, "p1", in)
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp XL", p.Name)
	assert.Equal(t, model.ProductActive, p.Status, "status kept when omitted")
	assert.Equal(t, fixedNow, p.UpdatedAt)

	_, err = svc.Update(ctx, "p3", in)
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	in.Price = 0
	_, err = svc.Update(ctx, "p1", in)
	assert.ErrorIs(t, err, model.ErrInvalidProduct)
}

func TestProductService_ToggleAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(testProducts(), nil)

	p, err := svc.ToggleStatus(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, model.ProductInactive, p.Status)

	p, err = svc.ToggleStatus(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, model.ProductActive, p.Status)

	_, err = svc.ToggleStatus(ctx, "p3")
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	require.NoError(t, svc.Delete(ctx, "p1"))
	p, err = svc.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, p.IsDeleted, "deleted products stay retrievable")
	assert.Equal(t, 1, svc.List(ctx, listing.ProductQuery{}).TotalItems, "only p2 is listed")

	require.NoError(t, svc.Delete(ctx, "p1"), "deleting twice is a no-op")
	require.NoError(t, svc.Delete(ctx, "p3"))
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), model.ErrProductNotFound)
}

func TestNewIDs(t *testing.T) {
	pid, err := NewProductID()
	require.NoError(t, err)
	assert.Len(t, pid, 36)

	oid, err := NewOrderID()
	require.NoError(t, err)
	assert.Regexp(t, `^o_[0-9a-f-]{36}$`, oid)
}
