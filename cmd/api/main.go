package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/bodyharmony/salon-scheduler/internal/cache"
	"github.com/bodyharmony/salon-scheduler/internal/config"
	dbpkg "github.com/bodyharmony/salon-scheduler/internal/db"
	infraRepo "github.com/bodyharmony/salon-scheduler/internal/infra/repository"
	"github.com/bodyharmony/salon-scheduler/internal/jobs"
	"github.com/bodyharmony/salon-scheduler/internal/middleware"
	"github.com/bodyharmony/salon-scheduler/internal/routes"
	ucSchedule "github.com/bodyharmony/salon-scheduler/internal/usecase/schedule"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	slotCache := cache.New(cfg)

	// Past active appointments are completed by a periodic sweep, not
	// on read.
	sweepUC := ucSchedule.NewCompleteSweep(infraRepo.NewScheduleGormRepository(db))

	sweeper := cron.New()
	if _, err := sweeper.AddFunc("*/5 * * * *", func() {
		jobs.CompletePastAppointments(sweepUC)
	}); err != nil {
		log.Fatalf("failed to schedule completion sweep: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, slotCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
