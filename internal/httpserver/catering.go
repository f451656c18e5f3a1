package httpserver

import (
	"errors"
	"net/http"

	"nautiq-backend/internal/domain"
	"nautiq-backend/internal/notice"
	cartsvc "nautiq-backend/internal/service/cart"
	checkoutsvc "nautiq-backend/internal/service/checkout"

	"github.com/gin-gonic/gin"
)

type cartResponse struct {
	Items   []domain.CartItem `json:"items"`
	Totals  domain.CartTotals `json:"totals"`
	Page    checkoutsvc.Page  `json:"page"`
	Notices []notice.Notice   `json:"notices"`
}

func buildCartResponse(deps Deps, sid string, items []domain.CartItem) cartResponse {
	if items == nil {
		items = []domain.CartItem{}
	}
	notices := deps.Notices.For(sid).Flush()
	if notices == nil {
		notices = []notice.Notice{}
	}
	return cartResponse{
		Items:   items,
		Totals:  deps.Cart.Totals(items),
		Page:    deps.Checkout.Page(sid),
		Notices: notices,
	}
}

func listProductsHandler(catalog ProductCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListActive(c.Request.Context(), c.Query("category"), c.Query("q"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// checkoutOptionsHandler exposes the marina and delivery-window allow-lists
// the checkout form renders and the validator enforces.
func checkoutOptionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"marinas":       domain.Marinas,
			"deliveryTimes": domain.DeliveryWindows,
		})
	}
}

func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		items, err := deps.Cart.Items(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, buildCartResponse(deps, sid, items))
	}
}

type addItemRequest struct {
	ProductID           string `json:"productId"`
	Quantity            int    `json:"quantity"`
	VariantLabel        string `json:"variantLabel"`
	SpecialInstructions string `json:"specialInstructions"`
}

func addCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		sid := sessionID(c)

		product, err := deps.Products.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}
		if !product.IsActive {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		items, err := deps.Cart.Add(c.Request.Context(), sid, *product, cartsvc.AddInput{
			Quantity:            req.Quantity,
			VariantLabel:        req.VariantLabel,
			SpecialInstructions: req.SpecialInstructions,
		})
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				c.JSON(http.StatusConflict, buildCartResponse(deps, sid, items))
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, buildCartResponse(deps, sid, items))
	}
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}
		sid := sessionID(c)
		items, err := deps.Cart.UpdateQuantity(c.Request.Context(), sid, c.Param("key"), req.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, buildCartResponse(deps, sid, items))
	}
}

func removeCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		items, err := deps.Cart.Remove(c.Request.Context(), sid, c.Param("key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, buildCartResponse(deps, sid, items))
	}
}

func openCheckoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		page, err := deps.Checkout.OpenCheckout(c.Request.Context(), sid)
		status := http.StatusOK
		if err != nil {
			if !errors.Is(err, domain.ErrBelowMinimum) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open checkout"})
				return
			}
			status = http.StatusConflict
		}
		notices := deps.Notices.For(sid).Flush()
		if notices == nil {
			notices = []notice.Notice{}
		}
		c.JSON(status, gin.H{"page": page, "notices": notices})
	}
}

type submitOrderRequest struct {
	checkoutsvc.Form
	CollaboratorRef string `json:"collaboratorRef"`
}

func submitOrderHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if fieldErrs := checkoutsvc.ValidateForm(req.Form); len(fieldErrs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
			return
		}

		sid := sessionID(c)
		ref := req.CollaboratorRef
		if ref == "" {
			ref = c.Query("ref")
		}

		order, err := deps.Checkout.Submit(c.Request.Context(), sid, req.Form, ref)
		if err != nil {
			notices := deps.Notices.For(sid).Flush()
			if notices == nil {
				notices = []notice.Notice{}
			}
			switch {
			case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrBelowMinimum), errors.Is(err, checkoutsvc.ErrSubmitInFlight):
				c.JSON(http.StatusConflict, gin.H{"page": deps.Checkout.Page(sid), "notices": notices})
			default:
				c.JSON(http.StatusBadGateway, gin.H{"error": "failed to place order", "notices": notices})
			}
			return
		}

		notices := deps.Notices.For(sid).Flush()
		if notices == nil {
			notices = []notice.Notice{}
		}
		c.JSON(http.StatusOK, gin.H{
			"order":   order,
			"page":    deps.Checkout.Page(sid),
			"notices": notices,
		})
	}
}
