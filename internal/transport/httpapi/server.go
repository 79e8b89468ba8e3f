package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/auth"
	"github.com/vladislavdragonenkov/shopcart/internal/service/cart"
	"github.com/vladislavdragonenkov/shopcart/internal/service/catalog"
	"github.com/vladislavdragonenkov/shopcart/internal/service/checkout"
	"github.com/vladislavdragonenkov/shopcart/internal/service/customer"
)

const customerIDKey = "customerID"

// Server — REST-слой магазина поверх gin.
type Server struct {
	engine    *gin.Engine
	catalog   *catalog.Service
	cart      *cart.Service
	checkout  *checkout.Service
	customers *customer.Service
	tokens    *auth.TokenManager
	logger    *log.Entry
}

// NewServer собирает HTTP-сервер с роутингом и middleware.
func NewServer(
	catalogSvc *catalog.Service,
	cartSvc *cart.Service,
	checkoutSvc *checkout.Service,
	customerSvc *customer.Service,
	tokens *auth.TokenManager,
	logger *log.Entry,
) *Server {
	if logger == nil {
		logger = log.WithField("component", "http-server")
	}

	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		engine:    r,
		catalog:   catalogSvc,
		cart:      cartSvc,
		checkout:  checkoutSvc,
		customers: customerSvc,
		tokens:    tokens,
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

// Engine возвращает gin.Engine для http.Server и тестов.
func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.POST("/customers", s.registerCustomer)
		api.POST("/customers/login", s.login)

		products := api.Group("/products")
		products.POST("", s.createProduct)
		products.GET("", s.listProducts)
		products.GET(":id", s.getProduct)
		products.DELETE(":id", s.deleteProduct)

		// Корзина и заказы доступны только с bearer-токеном.
		me := api.Group("/customers", s.authRequired)
		me.GET("/cart", s.listCart)
		me.POST("/cart", s.addCartItem)
		me.DELETE("/cart/:id", s.removeCartItem)

		me.POST("/orders", s.placeOrder)
		me.GET("/orders", s.listOrders)
		me.GET("/orders/:id", s.getOrder)
	}
}

// authRequired извлекает покупателя из заголовка Authorization.
// Отсутствующий или непригодный токен — 401, просроченный — 403.
func (s *Server) authRequired(c *gin.Context) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	customerID, err := s.tokens.Resolve(token)
	if err != nil {
		c.AbortWithStatusJSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Set(customerIDKey, customerID)
	c.Next()
}

func currentCustomer(c *gin.Context) string {
	return c.GetString(customerIDKey)
}

// Customer handlers

type registerCustomerReq struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (s *Server) registerCustomer(c *gin.Context) {
	var req registerCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	created, err := s.customers.Register(req.Email, req.Name, req.Password)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    created.ID,
		"email": created.Email,
		"name":  created.Name,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	token, err := s.customers.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Product handlers

type createProductReq struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Stock       int64  `json:"stock"`
}

func (s *Server) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	product, err := s.catalog.AddProduct(req.Name, req.Price, req.ImageURL, req.Description, req.Stock)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.catalog.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.catalog.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.catalog.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Cart handlers

type addCartItemReq struct {
	ProductID string `json:"product_id"`
	Qty       int64  `json:"qty"`
}

func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	entry, err := s.cart.AddItem(currentCustomer(c), req.ProductID, req.Qty)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", "/api/customers/cart/"+entry.ID)
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) listCart(c *gin.Context) {
	items, err := s.cart.ListItems(currentCustomer(c))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) removeCartItem(c *gin.Context) {
	if err := s.cart.RemoveItem(currentCustomer(c), c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Order handlers

func (s *Server) placeOrder(c *gin.Context) {
	order, err := s.checkout.PlaceOrder(currentCustomer(c))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", "/api/customers/orders/"+order.ID)
	c.JSON(http.StatusCreated, order)
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.checkout.ListOrders(currentCustomer(c))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.checkout.GetOrder(currentCustomer(c), c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}
