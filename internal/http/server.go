// README: API gateway; registers HTTP routes and delegates to the session manager.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lazytrip/internal/http/handlers"
	"lazytrip/internal/http/middleware"
	"lazytrip/internal/session"
)

type ServerDeps struct {
	Session *session.Manager
}

type Server struct {
	session *session.Manager
}

func NewServer(deps ServerDeps) *Server {
	return &Server{session: deps.Session}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	h := handlers.NewSessionHandler(s.session)
	api := r.Group("/api/session")
	api.GET("", h.State)
	api.GET("/options", h.Options)
	api.POST("/navigate", h.Navigate)
	api.POST("/dna/tags/toggle", h.ToggleTag)
	api.POST("/dna/frequency", h.SetFrequency)
	api.POST("/dna/transport", h.SetTransport)
	api.PUT("/plan", h.UpdatePlan)
	api.POST("/generate", h.Generate)
	api.POST("/swap", h.Swap)
	api.POST("/weather", h.SetWeather)
	api.POST("/view", h.SetView)

	return r
}
