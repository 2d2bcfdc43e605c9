package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/middleware"
	projectshttp "github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/site"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	App            *App
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.App.Logger.Named("http")))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.App.Storage.Primary)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(dep.App.Metrics.Handler()))

	pages, err := site.NewPages(dep.App.Store)
	if err != nil {
		return nil, err
	}
	pages.Register(r)

	api := r.Group("/api/v1")

	burst := dep.RateLimitBurst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(dep.RateLimitRPS), burst)

	projectsHandler := projectshttp.New(dep.App.Store, dep.App.Logger)
	projectsHandler.Register(api.Group("/projects"), middleware.RateLimit(limiter))

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID, "Content-Disposition"},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
