package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dealer-api/internal/config"
	"github.com/kingrain94/dealer-api/internal/middleware"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

// requestOverhead is the room left for multipart framing and form fields above the largest file
const requestOverhead = 1 << 20

type Server struct {
	auth       *AuthHandler
	tenant     *TenantHandler
	car        *CarHandler
	client     *ClientHandler
	document   *DocumentHandler
	stream     *InventoryStreamHandler
	jwt        *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	config     *config.Config
}

type Services struct {
	Auth     AuthService
	Tenant   TenantService
	Car      CarService
	Client   ClientService
	Document DocumentService
}

func NewServer(
	services Services,
	broker EventBroker,
	jwt *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	config *config.Config,
	logger *logger.Logger,
) *Server {
	base := NewBaseHandler(logger)
	return &Server{
		auth:       NewAuthHandler(base, services.Auth),
		tenant:     NewTenantHandler(base, services.Tenant),
		car:        NewCarHandler(base, services.Car),
		client:     NewClientHandler(base, services.Client),
		document:   NewDocumentHandler(base, services.Document),
		stream:     NewInventoryStreamHandler(base, broker),
		jwt:        jwt,
		rateLimit:  rateLimit,
		validation: validation,
		config:     config,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(s.config.MaxUploadSize + requestOverhead))
	api.Use(s.validation.ValidateContentType("application/json", "multipart/form-data"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(s.config.GlobalRateLimit))

	authenticated := []gin.HandlerFunc{s.jwt.JWTAuth(), s.rateLimit.TenantRateLimit()}

	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.auth.Register)
			auth.POST("/login", s.auth.Login)
			auth.GET("/me", append(authenticated, s.auth.Me)...)
		}

		tenant := api.Group("/tenant", authenticated...)
		{
			tenant.GET("", s.tenant.GetTenant)
			tenant.PUT("", s.jwt.RequireAdmin(), s.tenant.UpdateTenant)
		}

		cars := api.Group("/cars", authenticated...)
		{
			cars.GET("", s.car.ListCars)
			cars.POST("", s.car.CreateCar)
			cars.GET("/stream", s.stream.HandleStream)
			cars.GET("/:id", s.car.GetCar)
			cars.PUT("/:id", s.car.UpdateCar)
			cars.DELETE("/:id", s.car.DeleteCar)
		}

		clients := api.Group("/clients", authenticated...)
		{
			clients.GET("", s.client.ListClients)
			clients.POST("", s.client.CreateClient)
			clients.GET("/:id", s.client.GetClient)
			clients.PUT("/:id", s.client.UpdateClient)
			clients.DELETE("/:id", s.client.DeleteClient)
		}

		docs := api.Group("/docs", authenticated...)
		{
			docs.GET("", s.document.ListDocuments)
			docs.POST("", s.document.CreateDocument)
			docs.POST("/upload/:id", s.document.UploadFile)
			docs.POST("/create-with-file/:car_id", s.document.CreateWithFile)
			docs.GET("/:id", s.document.GetDocument)
			docs.GET("/:id/file", s.document.DownloadFile)
			docs.PUT("/:id", s.document.UpdateDocument)
			docs.DELETE("/:id", s.document.DeleteDocument)
		}
	}
}

// StartInventoryStream starts the WebSocket hub for car events
func (s *Server) StartInventoryStream() {
	go s.stream.Start()
}

func (s *Server) StopInventoryStream() {
	s.stream.Stop()
}

// InventoryStream is handed to the car service as its broadcaster
func (s *Server) InventoryStream() *InventoryStreamHandler {
	return s.stream
}
