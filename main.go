package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"aquavalle-backend/config"
	"aquavalle-backend/controllers"
	"aquavalle-backend/routes"
	"aquavalle-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	log.Println("database connection established and migrations applied")

	availabilityService := services.NewAvailabilityService(db)
	reservationService := services.NewReservationService(db, availabilityService)
	roomService := services.NewRoomService(db)
	blockService := services.NewBlockService(db)
	statsService := services.NewStatsService(db)
	adminService := services.NewAdminService(db)

	reservationController := controllers.NewReservationController(reservationService, availabilityService)
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	roomController := controllers.NewRoomController(roomService)
	adminController := controllers.NewAdminController(adminService, reservationService, blockService, statsService)

	router := routes.SetupRouter(reservationController, availabilityController, roomController, adminController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
