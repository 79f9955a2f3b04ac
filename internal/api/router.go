package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/ujsag/newspress/docs"
	"github.com/ujsag/newspress/internal/api/handler"
	"github.com/ujsag/newspress/internal/api/middleware"
	"github.com/ujsag/newspress/internal/core/domain"
	"github.com/ujsag/newspress/internal/core/ports"
)

// Deps carries the wired services and infrastructure handles the router needs.
type Deps struct {
	Articles  ports.ArticleService
	Authors   ports.AuthorService
	Auth      ports.AuthService
	Activity  ports.AuditService
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Reads are public; Create/Update/Delete sit behind Auth + RBAC(Admin).
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("newspress"))

	authed := middleware.Auth(d.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Handlers ---
	articleHandler := handler.NewArticleHandler(d.Articles)
	authorHandler := handler.NewAuthorHandler(d.Authors)
	accountHandler := handler.NewAccountHandler(d.Auth)
	activityHandler := handler.NewActivityHandler(d.Activity)

	// --- Account (identity) routes ---
	account := e.Group("/Account")
	account.POST("/register", accountHandler.Register)
	account.POST("/login", accountHandler.Login)
	account.POST("/refresh", accountHandler.Refresh)
	account.POST("/logout", accountHandler.Logout, authed)
	e.GET("/manage/info", accountHandler.Info, authed)

	// --- Article routes ---
	articles := e.Group("/api/articles")
	articles.GET("", articleHandler.List)
	articles.GET("/:id", articleHandler.Get)
	articles.POST("", articleHandler.Create, authed, adminOnly)
	articles.PUT("/:id", articleHandler.Update, authed, adminOnly)
	articles.DELETE("/:id", articleHandler.Delete, authed, adminOnly)

	// --- Author routes ---
	authors := e.Group("/api/authors")
	authors.GET("/listauthors", authorHandler.List)
	authors.GET("/:id", authorHandler.Get)
	authors.POST("", authorHandler.Create, authed, adminOnly)

	// --- Admin activity feed ---
	e.GET("/api/admin/activity", activityHandler.Recent, authed, adminOnly)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
