package repository

import (
	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// ---------------- Products ----------------

func (r *CatalogRepository) GetProduct(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.Preload("Variants").Preload("Options").Preload("Options.Values").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) GetProductBasics(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Select("id, name, available, category_id").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) ListProducts(categoryID *uint, onlyAvailable bool) ([]entity.Product, error) {
	q := r.DB.Preload("Variants")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if onlyAvailable {
		q = q.Where("available = ?", true)
	}
	var out []entity.Product
	err := q.Order("id ASC").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetVariant(id uint) (*entity.ProductVariant, error) {
	var v entity.ProductVariant
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *CatalogRepository) DefaultVariant(productID uint) (*entity.ProductVariant, error) {
	var v entity.ProductVariant
	// "default" is a reserved word; let the dialect quote it.
	err := r.DB.Where("product_id = ?", productID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "default"}, Desc: true}).
		Order("id ASC").First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ---------------- Options ----------------

func (r *CatalogRepository) RequiredOptionsForProduct(productID uint) ([]entity.Option, error) {
	var opts []entity.Option
	err := r.DB.Joins("JOIN product_options po ON po.option_id = options.id").
		Where("po.product_id = ? AND options.required = ?", productID, true).
		Find(&opts).Error
	return opts, err
}

func (r *CatalogRepository) CountOptionValuesBelongToProduct(productID uint, valueIDs []uint) (int64, error) {
	if len(valueIDs) == 0 {
		return 0, nil
	}
	var cnt int64
	err := r.DB.Model(&entity.OptionValue{}).
		Joins("JOIN product_options po ON po.option_id = option_values.option_id").
		Where("po.product_id = ? AND option_values.id IN ?", productID, valueIDs).
		Count(&cnt).Error
	return cnt, err
}

func (r *CatalogRepository) GetOptionsByIDs(ids []uint) ([]entity.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var opts []entity.Option
	err := r.DB.Where("id IN ?", ids).Find(&opts).Error
	return opts, err
}

func (r *CatalogRepository) GetOptionValuesByIDs(ids []uint) ([]entity.OptionValue, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var vals []entity.OptionValue
	err := r.DB.Where("id IN ?", ids).Find(&vals).Error
	return vals, err
}

// ---------------- Combos ----------------

func (r *CatalogRepository) GetCombo(id uint) (*entity.Combo, error) {
	var cb entity.Combo
	err := r.DB.Preload("Slots").Preload("Slots.Items").First(&cb, id).Error
	if err != nil {
		return nil, err
	}
	return &cb, nil
}

func (r *CatalogRepository) ListCombos(onlyAvailable bool) ([]entity.Combo, error) {
	q := r.DB.Preload("Slots").Preload("Slots.Items")
	if onlyAvailable {
		q = q.Where("available = ?", true)
	}
	var out []entity.Combo
	err := q.Order("id ASC").Find(&out).Error
	return out, err
}

// ---------------- Categories ----------------

func (r *CatalogRepository) ListCategories(onlyActive bool) ([]entity.Category, error) {
	q := r.DB.Order("sort_order ASC, id ASC")
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	var out []entity.Category
	err := q.Find(&out).Error
	return out, err
}
