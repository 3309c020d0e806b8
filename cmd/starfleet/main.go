package main

// go run cmd/starfleet/main.go

import (
	"starfleet/internal/app/config"
	"starfleet/internal/app/handler"
	"starfleet/internal/app/pkg"
	"starfleet/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "starfleet/docs" // Swagger docs
)

// @title        Starfleet ship registry API
// @version      1.0
// @description  Create, list, count, update and delete starships.
// @BasePath     /
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	store, checks, err := pkg.OpenStore(conf)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	hand := handler.NewHandler(service.NewShipService(store), checks)

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
