package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/clockwise-hq/attendance-backend-go/internal/config"
	appHTTP "github.com/clockwise-hq/attendance-backend-go/internal/handler/http"
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/database"
	"github.com/clockwise-hq/attendance-backend-go/internal/repository/postgresql"
	rosterClient "github.com/clockwise-hq/attendance-backend-go/internal/roster"
	attendanceService "github.com/clockwise-hq/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/clockwise-hq/attendance-backend-go/internal/service/dashboard"
	geofenceService "github.com/clockwise-hq/attendance-backend-go/internal/service/geofence"
	summaryService "github.com/clockwise-hq/attendance-backend-go/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if cfg.App.AutoMigrate {
		if err := postgresql.Migrate(context.Background(), db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	geofenceConfigRepo := postgresql.NewGeofenceConfigRepository(db)
	rejectionLogRepo := postgresql.NewRejectionLogRepository(db)

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer cache.Close()
	}
	roster := rosterClient.NewClient(cfg.Roster.BaseURL, cache, cfg.Roster.CacheTTL)

	geofenceSvc := geofenceService.NewGeofenceService(geofenceConfigRepo, rejectionLogRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, rejectionLogRepo, geofenceSvc)
	summarySvc := summaryService.NewSummaryService(attendanceRepo, roster)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, roster, summarySvc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, summarySvc, geofenceSvc)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	configHandler := appHTTP.NewConfigHandler(geofenceSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		attendanceHandler,
		summaryHandler,
		dashboardHandler,
		configHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
