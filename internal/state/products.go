package state

import (
	"admin-dashboard/internal/model"
)

// ProductsLoading marks a fixture load as in flight and clears the error.
func ProductsLoading(s model.ProductsState) model.ProductsState {
	s.Items = copyProducts(s.Items)
	s.Loading = true
	s.Error = nil
	return s
}

// ProductsLoaded replaces the collection wholesale with the fetched items.
func ProductsLoaded(s model.ProductsState, items []model.Product) model.ProductsState {
	s.Items = copyProducts(items)
	s.Loading = false
	return s
}

// ProductsLoadFailed records the fixed fetch failure message; items are left untouched.
func ProductsLoadFailed(s model.ProductsState) model.ProductsState {
	msg := model.FetchProductsFailed
	s.Items = copyProducts(s.Items)
	s.Loading = false
	s.Error = &msg
	return s
}

// AddProduct appends p. A product whose id is already present is rejected.
func AddProduct(s model.ProductsState, p model.Product) (model.ProductsState, error) {
	if _, ok := FindProduct(s.Items, p.ID); ok {
		return s, model.ErrDuplicateProduct
	}
	items := make([]model.Product, len(s.Items), len(s.Items)+1)
	copy(items, s.Items)
	s.Items = append(items, p)
	return s, nil
}

// UpdateProduct replaces the product with p.ID in place. Unknown ids are a no-op.
func UpdateProduct(s model.ProductsState, p model.Product) model.ProductsState {
	i := indexProduct(s.Items, p.ID)
	if i < 0 {
		return s
	}
	s.Items = copyProducts(s.Items)
	s.Items[i] = p
	return s
}

// ToggleProductStatus flips ACTIVE and INACTIVE. Unknown or soft-deleted ids are a no-op.
func ToggleProductStatus(s model.ProductsState, id string) model.ProductsState {
	i := indexProduct(s.Items, id)
	if i < 0 || s.Items[i].IsDeleted {
		return s
	}
	s.Items = copyProducts(s.Items)
	s.Items[i].Status = s.Items[i].Status.Toggle()
	return s
}

// SoftDeleteProduct flags the product as deleted without removing it.
func SoftDeleteProduct(s model.ProductsState, id string) model.ProductsState {
	i := indexProduct(s.Items, id)
	if i < 0 || s.Items[i].IsDeleted {
		return s
	}
	s.Items = copyProducts(s.Items)
	s.Items[i].IsDeleted = true
	return s
}

// FindProduct returns the product with id, including soft-deleted ones.
func FindProduct(items []model.Product, id string) (model.Product, bool) {
	i := indexProduct(items, id)
	if i < 0 {
		return model.Product{}, false
	}
	return items[i], true
}

func indexProduct(items []model.Product, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func copyProducts(items []model.Product) []model.Product {
	out := make([]model.Product, len(items))
	copy(out, items)
	return out
}
