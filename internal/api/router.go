package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/adotanatal/adopet/internal/api/handler"
	"github.com/adotanatal/adopet/internal/api/middleware"
	"github.com/adotanatal/adopet/internal/core/domain"
	"github.com/adotanatal/adopet/internal/core/service"
	"github.com/adotanatal/adopet/internal/infrastructure/db/mysql"
	"github.com/adotanatal/adopet/internal/infrastructure/storage"
	"github.com/adotanatal/adopet/internal/pkg/config"
	"github.com/adotanatal/adopet/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, cfg *config.Config) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer(cfg.Web.ViewsGlob)
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echoprometheus.NewMiddleware("adopet"))
	// Public assets and uploaded photos are served from the root path, the
	// latter being where the photo store writes.
	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{Root: cfg.Web.PublicDir}))
	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{Root: cfg.Web.UploadDir}))
	e.Use(middleware.Session(cfg.SessionSecret))

	// --- Dependencies ---
	usuarioRepo := mysql.NewUsuarioRepository(db)
	ongRepo := mysql.NewONGRepository(db)
	petRepo := mysql.NewPetRepository(db)
	photoStore := storage.NewDiskPhotoStore(cfg.Web.UploadDir)

	authService := service.NewAuthService(usuarioRepo, ongRepo, cfg.SessionSecret, domain.SessionTTL)
	petService := service.NewPetService(petRepo, photoStore)

	authHandler := handler.NewAuthHandler(authService)
	petHandler := handler.NewPetHandler(petService)

	// --- Public routes ---
	e.GET("/", petHandler.Home)
	e.GET("/pets", petHandler.ListPublic)
	e.GET("/quem_somos", handler.QuemSomos)
	e.GET("/cadastro", authHandler.CadastroPage)
	e.POST("/cadastro", authHandler.Cadastro)
	e.GET("/cadastro_ong", authHandler.CadastroONGPage)
	e.POST("/cadastro_ong", authHandler.CadastroONG)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Owner-only routes ---
	ong := e.Group("", middleware.RequireONG())
	ong.GET("/cadastro_pet", petHandler.CadastroPetPage)
	ong.POST("/cadastro_pet", petHandler.CadastroPet)
	ong.GET("/meus_pets", petHandler.MeusPets)
	ong.GET("/pets/:petId/editar", petHandler.EditarPetPage)
	ong.POST("/pets/:petId/editar", petHandler.EditarPet)
	ong.GET("/pets/:petId/deletar", petHandler.DeletarPet)

	// --- Health probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
