package httpserver

import (
	"context"
	"log"
	"time"

	"nautiq-backend/internal/domain"
	"nautiq-backend/internal/notice"
	cartsvc "nautiq-backend/internal/service/cart"
	checkoutsvc "nautiq-backend/internal/service/checkout"
	"nautiq-backend/internal/service/enquiry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductCatalog is the read surface of the catering catalog the handlers
// consume.
type ProductCatalog interface {
	ListActive(ctx context.Context, category, search string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type BoatCatalog interface {
	List(ctx context.Context) ([]domain.Boat, error)
	GetByID(ctx context.Context, id string) (*domain.Boat, error)
}

type AvailabilityService interface {
	ForMonth(ctx context.Context, feedURL string, year int, month time.Month) ([]domain.AvailabilityDay, error)
}

type EnquiryService interface {
	Submit(ctx context.Context, e enquiry.Enquiry) error
}

// Deps bundles the services the router wires into handlers.
type Deps struct {
	Products     ProductCatalog
	Boats        BoatCatalog
	Cart         *cartsvc.Service
	Checkout     *checkoutsvc.Service
	Availability AvailabilityService
	Enquiries    EnquiryService
	Notices      *notice.Registry
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.POST("/availability", availabilityHandler(deps.Availability, logger))
	api.POST("/contact", contactHandler(deps.Enquiries, logger))
	api.GET("/boats", listBoatsHandler(deps.Boats))
	api.GET("/boats/:id", getBoatHandler(deps.Boats))
	api.GET("/catering/products", listProductsHandler(deps.Products))
	api.GET("/catering/checkout-options", checkoutOptionsHandler())

	session := api.Group("", sessionMiddleware())
	session.GET("/cart", getCartHandler(deps))
	session.POST("/cart/items", addCartItemHandler(deps))
	session.PATCH("/cart/items/:key", updateCartItemHandler(deps))
	session.DELETE("/cart/items/:key", removeCartItemHandler(deps))
	session.POST("/checkout/open", openCheckoutHandler(deps))
	session.POST("/checkout", submitOrderHandler(deps))

	return router
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "X-Session-ID")
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowedOrigins
	// Cookies only cross the origin boundary with credentials enabled, which
	// in turn requires an explicit origin list.
	cfg.AllowCredentials = true
	return cfg
}
