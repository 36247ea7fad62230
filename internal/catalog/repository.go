package catalog

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListQuery struct {
	Search    string
	Category  string
	SortBy    string // name | price | rating
	SortOrder string // asc | desc
}

type ProductRepository interface {
	Seed(ctx context.Context) error
	List(ctx context.Context, query ListQuery) ([]Product, error)
	FindByID(ctx context.Context, productID string) (*Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := demoProducts()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&products).Error
}

var sortColumns = map[string]string{
	"name":   "name",
	"price":  "price",
	"rating": "rating",
}

func (r *productRepoImpl) List(ctx context.Context, query ListQuery) ([]Product, error) {
	tx := r.db.WithContext(ctx).Model(&Product{})

	if query.Search != "" {
		term := "%" + strings.ToLower(query.Search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
	if query.Category != "" && query.Category != "All" {
		tx = tx.Where("category = ?", query.Category)
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if query.SortOrder == "desc" {
		direction = "DESC"
	}
	tx = tx.Order(fmt.Sprintf("%s %s", column, direction))

	var products []Product
	if err := tx.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).
		Error

	if err != nil {
		return nil, err
	}

	return categories, nil
}
