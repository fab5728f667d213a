package main

import (
	"fmt"
	"log"

	"github.com/dineshnaiduavula/moviesample/configs"
	"github.com/dineshnaiduavula/moviesample/middlewares"
	"github.com/dineshnaiduavula/moviesample/routes"
	"github.com/dineshnaiduavula/moviesample/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedStaff(cfg); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// Live feed for staff consoles and patron menu sync
	feed := ws.NewFeed()
	go feed.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, feed)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
