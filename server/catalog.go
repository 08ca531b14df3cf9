package server

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/version"
)

// defaultFeedCount bounds the slug feed to the backend's page ceiling.
const defaultFeedCount = 250

const defaultListCount = 50

// CatalogClient is the read surface the catalog API needs. *client.Client
// satisfies it.
type CatalogClient interface {
	SearchProducts(ctx context.Context, params commerce.SearchProductsParams) (commerce.ProductList, error)
	GetProduct(ctx context.Context, params commerce.GetProductParams) (*commerce.Product, error)
	GetAllProducts(ctx context.Context, params commerce.GetAllProductsParams) (commerce.ProductList, error)
}

// FeedEntry is one product reference in the static-generation feed.
type FeedEntry struct {
	Slug string `json:"slug"`
	Path string `json:"path"`
	Name string `json:"name"`
}

// RegisterCatalog mounts the catalog API routes on the engine.
func RegisterCatalog(engine *gin.Engine, client CatalogClient) {
	api := engine.Group("/api/catalog")
	api.GET("/products", listProducts(client))
	api.GET("/products/:slug", getProduct(client))
	api.GET("/feed", productFeed(client))
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	engine.GET("/info", func(c *gin.Context) {
		c.JSON(200, version.Get())
	})
}

// listProducts serves a search when a search term is present, a listing facet
// otherwise.
func listProducts(client CatalogClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if search := c.Query("search"); search != "" {
			list, err := client.SearchProducts(c.Request.Context(), commerce.SearchProductsParams{
				Search:     search,
				CategoryID: c.Query("category"),
				BrandID:    c.Query("brand"),
				Sort:       c.Query("sort"),
			})
			if err != nil {
				RespondWithError(c, err)
				return
			}
			RespondOK(c, list)
			return
		}

		count := defaultListCount
		if raw := c.Query("count"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				RespondBadRequest(c, "invalid count")
				return
			}
			count = parsed
		}
		list, err := client.GetAllProducts(c.Request.Context(), commerce.GetAllProductsParams{
			Field: c.Query("field"),
			Count: count,
		})
		if err != nil {
			RespondWithError(c, err)
			return
		}
		RespondOK(c, list)
	}
}

func getProduct(client CatalogClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := client.GetProduct(c.Request.Context(), commerce.GetProductParams{
			Slug: c.Param("slug"),
		})
		if err != nil {
			RespondWithError(c, err)
			return
		}
		if product == nil {
			RespondNotFound(c, "product not found")
			return
		}
		RespondOK(c, product)
	}
}

// productFeed lists every product slug the static generator should render.
func productFeed(client CatalogClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := client.GetAllProducts(c.Request.Context(), commerce.GetAllProductsParams{
			Field: "new_arrivals",
			Count: defaultFeedCount,
		})
		if err != nil {
			RespondWithError(c, err)
			return
		}
		feed := make([]FeedEntry, 0, len(list.Products))
		for _, p := range list.Products {
			feed = append(feed, FeedEntry{
				Slug: p.Slug,
				Path: "/" + p.Slug + "/",
				Name: p.Name,
			})
		}
		RespondOK(c, feed)
	}
}
