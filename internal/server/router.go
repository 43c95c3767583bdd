package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentguide/internal/guide"
	"rentguide/internal/listing"
	"rentguide/internal/middleware"
	"rentguide/internal/qa"
	"rentguide/internal/review"
)

// New assembles the full API router: middleware, status route, all domain
// handlers and the SPA fallback.
func New(db *gorm.DB, describer *guide.Describer, frontendDist string) *gin.Engine {
	guideHandler := guide.NewHandler(guide.NewService(describer))
	reviewHandler := review.NewHandler(review.NewService(review.NewRepository(db)))
	qaHandler := qa.NewHandler(qa.NewService(qa.NewRepository(db)))
	listingHandler := listing.NewHandler(listing.NewService(listing.NewRepository(db)))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.CORS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Rental Guide Platform API is running",
		})
	})

	api := r.Group("/")
	guideHandler.RegisterRoutes(api)
	reviewHandler.RegisterRoutes(api)
	qaHandler.RegisterRoutes(api)
	listingHandler.RegisterRoutes(api)

	registerFrontend(r, frontendDist)

	return r
}

// registerFrontend mounts the built SPA when present. Unknown GET paths fall
// back to index.html so client-side routing works; without a build, the
// catch-all explains what is missing.
func registerFrontend(r *gin.Engine, dist string) {
	index := filepath.Join(dist, "index.html")

	if _, err := os.Stat(filepath.Join(dist, "assets")); err == nil {
		r.Static("/assets", filepath.Join(dist, "assets"))
	}

	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
			return
		}
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"error": "Frontend not built. Run 'npm run build' in frontend directory.",
		})
	})
}
