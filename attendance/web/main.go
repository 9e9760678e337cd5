package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rachitshetty07/Attendance-RCN/attendance/bootstrap"
	"github.com/rachitshetty07/Attendance-RCN/attendance/web/handlers"
	"github.com/rachitshetty07/Attendance-RCN/config"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	bootstrap.SetupLogging(cfg)

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to start")
	}
	defer app.Close()

	deps := handlers.Deps{
		Roster:    app.Roster,
		Records:   app.Records,
		Sessions:  app.Sessions,
		Clock:     app.Clock,
		Approvals: app.Approvals,
		Shares:    app.Shares,
		Reports:   app.Reports,
		Location:  cfg.Location,
	}
	// keep the interfaces nil rather than holding typed nil pointers
	if app.Assistant != nil {
		deps.Assistant = app.Assistant
	}
	if app.Mailer != nil {
		deps.Mailer = app.Mailer
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	handlers.Register(r.Group("/api/v1"), deps)

	r.StaticFile("/", "./public/index.html")
	r.Static("/assets", "./public/assets")

	r.NoRoute(func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	logrus.WithField("addr", cfg.Addr).WithField("store", cfg.StoreBackend).Info("listening")
	if err := r.Run(cfg.Addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
