package dto

import (
	"testing"

	helper "storeadmin_backend/internals/helpers"

	"storeadmin_backend/internals/features/catalog/products/model"
)

func TestToProductDTOGalleryNeverNil(t *testing.T) {
	dto := ToProductDTO(model.ProductModel{ProductName: "X", ProductSlug: "x"})
	if dto.ProductGallery == nil {
		t.Error("gallery should be an empty slice, not nil")
	}
}

func TestCreateProductValidation(t *testing.T) {
	req := CreateProductRequest{ProductName: "Widget", ProductSlug: "widget", ProductPrice: 9.99}
	if err := helper.ValidateStruct(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.ProductPrice = 0
	if err := helper.ValidateStruct(req); err == nil {
		t.Error("zero price should fail")
	}

	req.ProductPrice = 10
	req.ProductStock = -1
	if err := helper.ValidateStruct(req); err == nil {
		t.Error("negative stock should fail")
	}

	bad := "not-a-uuid"
	req.ProductStock = 0
	req.ProductCategoryID = &bad
	if err := helper.ValidateStruct(req); err == nil {
		t.Error("malformed category id should fail")
	}
}

func TestUpdateProductApplyTo(t *testing.T) {
	m := model.ProductModel{
		ProductName:  "Widget",
		ProductSlug:  "widget",
		ProductPrice: 10,
		ProductStock: 3,
	}

	price := 12.5
	req := UpdateProductRequest{ProductPrice: &price}
	req.ApplyTo(&m)

	if m.ProductPrice != 12.5 {
		t.Errorf("price = %v", m.ProductPrice)
	}
	if m.ProductName != "Widget" || m.ProductStock != 3 {
		t.Error("untouched fields changed")
	}
}
