package controllers

import (
	"net/http"

	"agridash/config"
	"agridash/middlewares"
	"agridash/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires all endpoints. Ingestion is public (device credential,
// not user session); everything under the auth group requires a JWT.
func NewRouter(cfg config.Config, st *store.Store) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"Error": "Method Not Allowed"})
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	secret := []byte(cfg.JWTSecret)
	auth := NewAuth(st, secret)
	readings := NewReadings(st)
	areas := NewFarmAreas(st)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/auth/register", auth.Register)
	r.POST("/api/auth/login", auth.Login)
	r.POST("/api/readings", readings.Ingest)

	protected := r.Group("/api", middlewares.AuthMiddleware(secret))
	protected.GET("/farm-areas", areas.List)
	protected.POST("/farm-areas", areas.Create)
	protected.GET("/farm-areas/:id", areas.Get)
	protected.GET("/farm-areas/:id/readings", areas.Readings)

	return r
}
