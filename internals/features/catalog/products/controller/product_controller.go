package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/catalog/products/dto"
	"storeadmin_backend/internals/features/catalog/products/model"
	helper "storeadmin_backend/internals/helpers"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

var productLifecycle = helper.Lifecycle{
	Table:           "products",
	IDColumn:        "product_id",
	StatusColumn:    "product_status",
	DeletedAtColumn: "product_deleted_at",
}

func productSlugCheck(excludeID string) helper.UniqueCheck {
	return helper.UniqueCheck{
		Table:            "products",
		Column:           "product_slug",
		SoftDeleteColumn: "product_deleted_at",
		IDColumn:         "product_id",
		ExcludeID:        excludeID,
	}
}

// POST /api/a/products
// Accepts multipart form: one main image plus up to several gallery images.
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.ProductName = strings.TrimSpace(req.ProductName)
	if req.ProductSlug == "" {
		req.ProductSlug = helper.GenerateSlug(req.ProductName)
	} else {
		req.ProductSlug = helper.GenerateSlug(req.ProductSlug)
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !helper.ValidSlug(req.ProductSlug) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug must contain only lowercase letters, numbers and hyphens")
	}

	taken, err := helper.IsTaken(ctrl.DB, productSlugCheck(""), req.ProductSlug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Product slug already exists")
	}

	m := req.ToModel()

	if file, err := c.FormFile("product_image"); err == nil && file != nil {
		path, err := helper.SaveUploadedImage("products", file)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		m.ProductImageURL = &path
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["product_gallery"] {
			path, err := helper.SaveUploadedImage("products", fh)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
			}
			m.ProductGallery = append(m.ProductGallery, path)
		}
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Product slug already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create product")
	}

	return helper.JsonCreated(c, "Product created", dto.ToProductDTO(m))
}

// GET /api/a/products?page&limit&status&q
func (ctrl *ProductController) GetProducts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	filter := helper.ResolveStatusFilter(c)

	q := ctrl.DB.Model(&model.ProductModel{})
	if filter != "total" {
		q = q.Where("product_status = ?", filter)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("product_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count products")
	}

	var rows []model.ProductModel
	if err := q.Session(&gorm.Session{}).
		Order("product_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve products")
	}

	return helper.JsonList(c, dto.ToProductDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/products/:id
func (ctrl *ProductController) GetProductByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.ProductModel
	if err := ctrl.DB.First(&m, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve product")
	}
	return helper.JsonOK(c, "", dto.ToProductDTO(m))
}

// PUT /api/a/products/:id
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.ProductModel
	if err := ctrl.DB.First(&m, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve product")
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.ProductName != nil {
		trimmed := strings.TrimSpace(*req.ProductName)
		req.ProductName = &trimmed
	}
	if req.ProductSlug != nil {
		s := helper.GenerateSlug(*req.ProductSlug)
		req.ProductSlug = &s
	} else if req.ProductName != nil {
		s := helper.GenerateSlug(*req.ProductName)
		req.ProductSlug = &s
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.ProductSlug != nil {
		if !helper.ValidSlug(*req.ProductSlug) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Slug must contain only lowercase letters, numbers and hyphens")
		}
		taken, err := helper.IsTaken(ctrl.DB, productSlugCheck(id), *req.ProductSlug)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Product slug already exists")
		}
	}

	req.ApplyTo(&m)

	// Old files are only removed once the row is saved, so a failed save
	// never leaves it pointing at missing files.
	var oldImage *string
	var oldGallery []string
	if file, err := c.FormFile("product_image"); err == nil && file != nil {
		path, err := helper.SaveUploadedImage("products", file)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		oldImage = m.ProductImageURL
		m.ProductImageURL = &path
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		if files := form.File["product_gallery"]; len(files) > 0 {
			oldGallery = m.ProductGallery
			m.ProductGallery = nil
			for _, fh := range files {
				path, err := helper.SaveUploadedImage("products", fh)
				if err != nil {
					return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
				}
				m.ProductGallery = append(m.ProductGallery, path)
			}
		}
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update product")
	}

	if oldImage != nil {
		helper.DeleteUploadedImage(*oldImage)
	}
	for _, old := range oldGallery {
		helper.DeleteUploadedImage(old)
	}

	return helper.JsonUpdated(c, "Product updated", dto.ToProductDTO(m))
}

// PATCH /api/a/products/:id/togglestatus
func (ctrl *ProductController) ToggleProductStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := productLifecycle.Toggle(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.ProductModel
	if err := ctrl.DB.First(&m, "product_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve product")
	}
	return helper.JsonUpdated(c, "Product status updated", dto.ToProductDTO(m))
}

// DELETE /api/a/products/:id/soft
func (ctrl *ProductController) SoftDeleteProduct(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := productLifecycle.SoftDelete(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Product moved to trash", fiber.Map{"product_id": id})
}

// PATCH /api/a/products/:id/restore
func (ctrl *ProductController) RestoreProduct(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := productLifecycle.Restore(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.ProductModel
	if err := ctrl.DB.First(&m, "product_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve product")
	}
	return helper.JsonUpdated(c, "Product restored", dto.ToProductDTO(m))
}

// DELETE /api/a/products/:id/permanent
func (ctrl *ProductController) PermanentDeleteProduct(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.ProductModel
	if err := ctrl.DB.Unscoped().First(&m, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve product")
	}

	if err := productLifecycle.HardDelete(ctrl.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete product")
	}
	if m.ProductImageURL != nil {
		helper.DeleteUploadedImage(*m.ProductImageURL)
	}
	for _, g := range m.ProductGallery {
		helper.DeleteUploadedImage(g)
	}
	return helper.JsonDeleted(c, "Product permanently deleted", fiber.Map{"product_id": id})
}

// GET /api/a/products/trash?page&limit
func (ctrl *ProductController) GetTrashedProducts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Unscoped().Model(&model.ProductModel{}).
		Where("product_deleted_at IS NOT NULL")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trashed products")
	}

	var rows []model.ProductModel
	if err := q.Session(&gorm.Session{}).
		Order("product_deleted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve trashed products")
	}

	return helper.JsonList(c, dto.ToProductDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/products/stats
func (ctrl *ProductController) GetProductStats(c *fiber.Ctx) error {
	stats, err := productLifecycle.Counts(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count products")
	}
	return helper.JsonOK(c, "", stats)
}
