package main

import (
	"fmt"
	"net/http"

	"github.com/shiftwise/roster-backend-go/internal/config"
	appHTTP "github.com/shiftwise/roster-backend-go/internal/handler/http"
	"github.com/shiftwise/roster-backend-go/internal/pkg/cron"
	"github.com/shiftwise/roster-backend-go/internal/pkg/database"
	"github.com/shiftwise/roster-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/roster-backend-go/internal/pkg/sse"
	"github.com/shiftwise/roster-backend-go/internal/repository/postgresql"
	assignmentService "github.com/shiftwise/roster-backend-go/internal/service/assignment"
	eligibilityService "github.com/shiftwise/roster-backend-go/internal/service/eligibility"
	fairnessService "github.com/shiftwise/roster-backend-go/internal/service/fairness"
	notificationService "github.com/shiftwise/roster-backend-go/internal/service/notification"
	preferenceService "github.com/shiftwise/roster-backend-go/internal/service/preference"
	swapService "github.com/shiftwise/roster-backend-go/internal/service/swap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	preferenceRepo := postgresql.NewPreferenceRepository(db)
	swapRequestRepo := postgresql.NewSwapRequestRepository(db)
	swapOfferRepo := postgresql.NewSwapOfferRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	evaluator := eligibilityService.NewEvaluator(shiftRepo)
	notifSvc := notificationService.NewNotificationService(notificationRepo, hub)
	fairnessSvc := fairnessService.NewFairnessService(workerRepo, preferenceRepo, assignmentRepo)
	preferenceSvc := preferenceService.NewPreferenceService(txRunner, preferenceRepo, workerRepo)
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepo, workerRepo, shiftRepo)
	swapSvc := swapService.NewSwapService(
		txRunner,
		swapRequestRepo,
		swapOfferRepo,
		assignmentRepo,
		workerRepo,
		evaluator,
		notifSvc,
	)

	fairnessHandler := appHTTP.NewFairnessHandler(fairnessSvc)
	preferenceHandler := appHTTP.NewPreferenceHandler(preferenceSvc)
	assignmentHandler := appHTTP.NewAssignmentHandler(assignmentSvc)
	swapHandler := appHTTP.NewSwapHandler(swapSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notifSvc, jwtService)

	scheduler := cron.NewScheduler()
	swapJobs := cron.NewSwapJobs(swapSvc, cfg.Swap.RequestMaxAge, cfg.Swap.ExpiryInterval)
	swapJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		fairnessHandler,
		preferenceHandler,
		assignmentHandler,
		swapHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
