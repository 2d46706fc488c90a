package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/serenetouch/booking-api/internal/config"
	"github.com/serenetouch/booking-api/internal/db"
	"github.com/serenetouch/booking-api/internal/routes"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	database := db.NewDB(cfg)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "x-paystack-signature"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg)

	logrus.WithField("addr", cfg.Addr()).Info("starting booking api")
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
