package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/larifa/raffles-api/docs"
	v1 "github.com/larifa/raffles-api/internal/api/handler/v1"
	"github.com/larifa/raffles-api/internal/api/middleware"
	"github.com/larifa/raffles-api/internal/config"
	"github.com/larifa/raffles-api/internal/repository"
	"github.com/larifa/raffles-api/internal/repository/dao"
	"github.com/larifa/raffles-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	dolibarrHandler := s.initDolibarrHandler(db)
	ticketHandler := s.initTicketHandler(db)
	s.MountHandlers(dolibarrHandler, ticketHandler)

	return s
}

func (s *Server) initDolibarrHandler(db *gorm.DB) *v1.DolibarrHandler {
	dolibarrDAO := dao.NewDolibarrDAO(db)
	repo := repository.NewDolibarrRepository(dolibarrDAO)
	svc := service.NewDolibarrService(repo)
	handler := v1.NewDolibarrHandler(svc)

	return handler
}

func (s *Server) initTicketHandler(db *gorm.DB) *v1.TicketHandler {
	ticketDAO := dao.NewTicketDAO(db)
	repo := repository.NewTicketRepository(ticketDAO)
	svc := service.NewTicketService(repo)
	handler := v1.NewTicketHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(dolibarrHandler *v1.DolibarrHandler, ticketHandler *v1.TicketHandler) {
	const basePath = "/api"

	api := s.Router.Group(basePath)
	{
		api.POST("/dolibarr/webhook/", dolibarrHandler.HandleWebhook)
		api.GET("/tickets/verify/:qrCode", ticketHandler.HandleVerifyTicket)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Raffles API"
	docs.SwaggerInfo.Description = "Dolibarr-driven raffle ticket issuance."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
