package api

import (
	"embed"
	"html/template"
	"log"
	stdhttp "net/http"
	"time"

	"rentacar/internal/config"
	h "rentacar/internal/http/handlers"
	"rentacar/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// NewRouter wires the storefront pages, the voucher download and the
// system endpoints. Templates are embedded so the binary is self
// contained and the router is testable from any package.
func NewRouter(env config.Env) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:       24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	tpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
	r.SetHTMLTemplate(tpl)

	r.NoRoute(func(c *gin.Context) {
		h.RenderErrorPage(c, stdhttp.StatusNotFound, "Page Not Found",
			[]string{"The page you requested does not exist."})
	})

	// Storefront
	r.GET("/", h.Home)
	r.GET("/cars", h.Listing)
	r.GET("/booking", h.BookingForm)
	r.POST("/booking", h.BookingSubmit)
	r.GET("/booking/:id/voucher", h.BookingVoucher)

	// System
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", h.Health)
		apiGroup.GET("/db-check", h.DBCheck)
	}

	return r
}
