package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sumplot/sumplot/internal/config"
	"github.com/sumplot/sumplot/internal/database"
	"github.com/sumplot/sumplot/internal/handler"
	"github.com/sumplot/sumplot/internal/repository"
	"github.com/sumplot/sumplot/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables from OS")
	}

	logger := log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	calcService := service.NewCalcService()

	// History needs a database; without one the service runs purely stateless.
	var db *sql.DB
	var authService service.IAuthService
	var historyService service.IHistoryService
	if cfg.DB != nil {
		db, err = database.ConnectDB(cfg.DB)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		logger.Println("Successfully connected to database")

		repo := repository.NewRepository(db)
		authService = service.NewAuthService(repo.User(), cfg.JWT)
		historyService = service.NewHistoryService(calcService, repo.Calculation())
	} else {
		logger.Println("No database configured, calculation history is disabled")
	}

	router := handler.SetupRouter(calcService, authService, historyService, db, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Printf("Calculation service starting on port %s", cfg.Server.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Cannot run server on port %s: %v", cfg.Server.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Println("Shut down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatalf("Server shutdown failed: %v", err)
	}
	logger.Println("Server successfully shut down")
}
