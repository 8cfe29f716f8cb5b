// Package catalog is the read-only view over server-owned products and
// categories. Reads go through the query cache; filtering is client side.
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"sitara.io/store/gateway"
	"sitara.io/store/models"
	"sitara.io/store/query"
)

var _ Repository = (*repository)(nil)

// ListParams narrows a product listing. Category is passed to the backend;
// Search filters the fetched list client side.
type ListParams struct {
	Category string
	Search   string
}

type Repository interface {
	Products(ctx context.Context, params ListParams) ([]*models.Product, error)
	Product(ctx context.Context, id int) (*models.Product, error)
	Categories(ctx context.Context) ([]*models.Category, error)
	CategoryTree(ctx context.Context) ([]*models.CategoryTree, error)
	Home(ctx context.Context) ([]*models.HomeSection, error)
}

type repository struct {
	gw     *gateway.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewRepository(gw *gateway.Client, cache *query.Cache, logger *zap.Logger) Repository {
	return &repository{gw: gw, cache: cache, logger: logger}
}

func (r *repository) Products(ctx context.Context, params ListParams) ([]*models.Product, error) {
	cacheKey := "products"
	if params.Category != "" {
		cacheKey = "products?category=" + params.Category
	}

	var products []*models.Product
	if !r.cache.Get(ctx, cacheKey, &products) {
		q := url.Values{}
		if params.Category != "" {
			q.Set("category", params.Category)
		}
		if err := r.gw.Get(ctx, "/products", q, &products); err != nil {
			r.logger.Error("failed to list products", zap.Error(err))
			return nil, err
		}
		r.cache.Set(ctx, cacheKey, products, query.ListTTL)
	}

	return filterProducts(products, params.Search), nil
}

func (r *repository) Product(ctx context.Context, id int) (*models.Product, error) {
	cacheKey := fmt.Sprintf("product:%d", id)

	var product models.Product
	if r.cache.Get(ctx, cacheKey, &product) {
		return &product, nil
	}

	if err := r.gw.Get(ctx, "/products/"+strconv.Itoa(id), nil, &product); err != nil {
		r.logger.Error("failed to get product", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, product, query.ListTTL)
	return &product, nil
}

func (r *repository) Categories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	if r.cache.Get(ctx, "categories", &categories) {
		return categories, nil
	}

	if err := r.gw.Get(ctx, "/categories", nil, &categories); err != nil {
		r.logger.Error("failed to list categories", zap.Error(err))
		return nil, err
	}

	r.cache.Set(ctx, "categories", categories, query.ListTTL)
	return categories, nil
}

func (r *repository) CategoryTree(ctx context.Context) ([]*models.CategoryTree, error) {
	categories, err := r.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return buildCategoryTree(categories), nil
}

func (r *repository) Home(ctx context.Context) ([]*models.HomeSection, error) {
	var sections []*models.HomeSection
	if r.cache.Get(ctx, "home", &sections) {
		return sections, nil
	}

	if err := r.gw.Get(ctx, "/home", nil, &sections); err != nil {
		r.logger.Error("failed to load home feed", zap.Error(err))
		return nil, err
	}

	r.cache.Set(ctx, "home", sections, query.ListTTL)
	return sections, nil
}

// filterProducts applies the case-insensitive client-side text filter over
// name and description.
func filterProducts(products []*models.Product, search string) []*models.Product {
	search = strings.TrimSpace(search)
	if search == "" {
		return products
	}
	needle := strings.ToLower(search)
	out := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

func buildCategoryTree(categories []*models.Category) []*models.CategoryTree {
	nodes := make(map[int]*models.CategoryTree)
	var roots []*models.CategoryTree

	for _, cat := range categories {
		node := &models.CategoryTree{Category: cat}
		nodes[cat.ID] = node
		if cat.ParentID == nil {
			roots = append(roots, node)
		}
	}

	for _, cat := range categories {
		if cat.ParentID != nil {
			if parent, ok := nodes[*cat.ParentID]; ok {
				parent.Nodes = append(parent.Nodes, nodes[cat.ID])
			}
		}
	}

	return roots
}
