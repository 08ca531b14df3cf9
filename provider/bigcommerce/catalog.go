package bigcommerce

import (
	"context"
	"strings"

	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/httpclient"
)

// graphqlPath is the storefront GraphQL endpoint for catalog reads.
const graphqlPath = "/graphql"

const productFields = `
  id
  path
  name
  plainTextDescription
  prices { price { value currencyCode } }
  images { edges { node { url } } }
  variants {
    edges {
      node {
        id
        sku
        options { edges { node { displayName value } } }
        prices { price { value currencyCode } }
      }
    }
  }`

var searchQuery = `
query Search($search: String, $categoryId: String, $brandId: String, $sort: String) {
  site {
    search {
      searchProducts(filters: {searchTerm: $search, categoryId: $categoryId, brandId: $brandId}, sort: $sort) {
        products { edges { node {` + productFields + ` } } }
      }
    }
  }
}`

var routeQuery = `
query Route($path: String!) {
  site {
    route(path: $path) {
      node { ... on Product {` + productFields + ` } }
    }
  }
}`

var listingQueries = map[string]string{
	"new_arrivals": listingQuery("newestProducts"),
	"trending":     listingQuery("bestSellingProducts"),
	"featured":     listingQuery("featuredProducts"),
}

func listingQuery(connection string) string {
	return `
query Listing($count: Int!) {
  site {
    ` + connection + `(first: $count) {
      edges { node {` + productFields + ` } }
    }
  }
}`
}

// sortValues maps caller sort names onto the backend's sort enum.
var sortValues = map[string]string{
	"latest":     "NEWEST",
	"trending":   "BEST_SELLING",
	"price-asc":  "LOWEST_PRICE",
	"price-desc": "HIGHEST_PRICE",
}

// GraphQL wire types. Connections always arrive as edges of nodes.

type gqlEdges[T any] struct {
	Edges []struct {
		Node T `json:"node"`
	} `json:"edges"`
}

func (e gqlEdges[T]) nodes() []T {
	out := make([]T, 0, len(e.Edges))
	for _, edge := range e.Edges {
		out = append(out, edge.Node)
	}
	return out
}

type gqlPrice struct {
	Price struct {
		Value        float64 `json:"value"`
		CurrencyCode string  `json:"currencyCode"`
	} `json:"price"`
}

type gqlOption struct {
	DisplayName string `json:"displayName"`
	Value       string `json:"value"`
}

type gqlVariant struct {
	ID      string              `json:"id"`
	SKU     string              `json:"sku"`
	Options gqlEdges[gqlOption] `json:"options"`
	Prices  gqlPrice            `json:"prices"`
}

type gqlImage struct {
	URL string `json:"url"`
}

type gqlProduct struct {
	ID          string               `json:"id"`
	Path        string               `json:"path"`
	Name        string               `json:"name"`
	Description string               `json:"plainTextDescription"`
	Prices      gqlPrice             `json:"prices"`
	Images      gqlEdges[gqlImage]   `json:"images"`
	Variants    gqlEdges[gqlVariant] `json:"variants"`
}

func (p *Provider) toProduct(g gqlProduct) commerce.Product {
	product := commerce.Product{
		ID:          g.ID,
		Slug:        strings.Trim(g.Path, "/"),
		Name:        g.Name,
		Description: g.Description,
		Price:       p.money(g.Prices.Price.Value, g.Prices.Price.CurrencyCode),
	}
	for _, img := range g.Images.nodes() {
		product.Images = append(product.Images, img.URL)
	}
	for _, v := range g.Variants.nodes() {
		variant := commerce.ProductVariant{
			ID:    v.ID,
			SKU:   v.SKU,
			Price: p.money(v.Prices.Price.Value, v.Prices.Price.CurrencyCode),
		}
		for _, opt := range v.Options.nodes() {
			if variant.Options == nil {
				variant.Options = make(map[string]string)
			}
			variant.Options[opt.DisplayName] = opt.Value
		}
		product.Variants = append(product.Variants, variant)
	}
	return product
}

func (p *Provider) toProductList(nodes []gqlProduct) commerce.ProductList {
	list := commerce.ProductList{Products: make([]commerce.Product, 0, len(nodes))}
	for _, node := range nodes {
		list.Products = append(list.Products, p.toProduct(node))
	}
	list.Found = len(list.Products) > 0
	return list
}

// SearchProducts runs a storefront search and normalizes the connection into
// a flat product list.
func (p *Provider) SearchProducts(ctx context.Context, params commerce.SearchProductsParams) (commerce.ProductList, error) {
	variables := map[string]any{"search": params.Search}
	if params.CategoryID != "" {
		variables["categoryId"] = params.CategoryID
	}
	if params.BrandID != "" {
		variables["brandId"] = params.BrandID
	}
	if sort, ok := sortValues[params.Sort]; ok {
		variables["sort"] = sort
	}

	type result struct {
		Site struct {
			Search struct {
				SearchProducts struct {
					Products gqlEdges[gqlProduct] `json:"products"`
				} `json:"searchProducts"`
			} `json:"search"`
		} `json:"site"`
	}
	out, err := httpclient.Query[result](ctx, p.http, graphqlPath, searchQuery, variables)
	if err != nil {
		return commerce.ProductList{}, err
	}
	return p.toProductList(out.Site.Search.SearchProducts.Products.nodes()), nil
}

// GetProduct resolves a product by slug through the backend's route lookup.
// An unknown slug yields a nil product with no error.
func (p *Provider) GetProduct(ctx context.Context, params commerce.GetProductParams) (*commerce.Product, error) {
	type result struct {
		Site struct {
			Route struct {
				Node *gqlProduct `json:"node"`
			} `json:"route"`
		} `json:"site"`
	}
	variables := map[string]any{"path": "/" + strings.Trim(params.Slug, "/") + "/"}
	out, err := httpclient.Query[result](ctx, p.http, graphqlPath, routeQuery, variables)
	if err != nil {
		return nil, err
	}
	if out.Site.Route.Node == nil {
		return nil, nil
	}
	product := p.toProduct(*out.Site.Route.Node)
	return &product, nil
}

// GetAllProducts reads one of the backend's listing connections. The facet
// defaults to new arrivals.
func (p *Provider) GetAllProducts(ctx context.Context, params commerce.GetAllProductsParams) (commerce.ProductList, error) {
	field := params.Field
	if field == "" {
		field = "new_arrivals"
	}
	query := listingQueries[field]

	type result struct {
		Site map[string]gqlEdges[gqlProduct] `json:"site"`
	}
	out, err := httpclient.Query[result](ctx, p.http, graphqlPath, query, map[string]any{"count": params.Count})
	if err != nil {
		return commerce.ProductList{}, err
	}
	for _, connection := range out.Site {
		return p.toProductList(connection.nodes()), nil
	}
	return commerce.ProductList{Products: []commerce.Product{}}, nil
}
