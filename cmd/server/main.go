package main

import (
	"fmt"
	"log"

	"wayfare/internal/ai"
	"wayfare/internal/ai/claude"
	"wayfare/internal/ai/gemini"
	"wayfare/internal/ai/groq"
	"wayfare/internal/cache"
	"wayfare/internal/config"
	"wayfare/internal/email/noop"
	"wayfare/internal/email/ses"
	"wayfare/internal/handler"
	"wayfare/internal/port"
	"wayfare/internal/repository/postgres"
	"wayfare/internal/router"
	"wayfare/internal/service"
	s3storage "wayfare/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	rdb := cache.NewRedis(&cfg.Redis)
	defer rdb.Close()
	locker := cache.NewRedisLocker(rdb)

	// Register AI providers
	ai.Register("gemini", gemini.Factory)
	ai.Register("groq", groq.Factory)
	ai.Register("claude", claude.Factory)

	// Initialize repositories
	tripRepo := postgres.NewTripRepo(db)
	memberRepo := postgres.NewMemberRepo(db)
	dayRepo := postgres.NewDayRepo(db)
	flightRepo := postgres.NewFlightRepo(db)
	hotelRepo := postgres.NewHotelRepo(db)
	drivingRepo := postgres.NewDrivingRepo(db)
	highlightRepo := postgres.NewHighlightRepo(db)
	restaurantRepo := postgres.NewRestaurantRepo(db)
	packingRepo := postgres.NewPackingRepo(db)
	stampRepo := postgres.NewStampRepo(db)
	photoRepo := postgres.NewPhotoRepo(db)
	rentalRepo := postgres.NewRentalCarRepo(db)
	quizRepo := postgres.NewQuizRepo(db)
	diaryRepo := postgres.NewDiaryRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	tripSvc := service.NewTripService(tripRepo, memberRepo, emailSender, &cfg.Invite, &cfg.Email)
	memberSvc := service.NewMemberService(memberRepo)
	itinerarySvc := service.NewItineraryService(dayRepo, flightRepo, hotelRepo, drivingRepo, rentalRepo)
	discoverySvc := service.NewDiscoveryService(highlightRepo, restaurantRepo, packingRepo, stampRepo)
	stampSvc := service.NewStampService(stampRepo)
	photoSvc := service.NewPhotoService(photoRepo, s3Client, &cfg.S3)
	quizSvc := service.NewQuizService(quizRepo)
	diarySvc := service.NewDiaryService(diaryRepo)
	exportSvc := service.NewExportService(dayRepo, flightRepo, hotelRepo, drivingRepo)
	aiSvc := service.NewAIService(
		&cfg.AI,
		tripRepo, memberRepo, dayRepo, flightRepo, hotelRepo, drivingRepo,
		highlightRepo, restaurantRepo, stampRepo,
		locker,
	)

	// Initialize handlers
	tripH := handler.NewTripHandler(tripSvc, memberSvc)
	itineraryH := handler.NewItineraryHandler(itinerarySvc)
	discoveryH := handler.NewDiscoveryHandler(discoverySvc)
	stampH := handler.NewStampHandler(stampSvc)
	photoH := handler.NewPhotoHandler(photoSvc)
	quizH := handler.NewQuizHandler(quizSvc)
	diaryH := handler.NewDiaryHandler(diarySvc)
	aiH := handler.NewAIHandler(aiSvc, tripSvc)
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler(db, rdb)

	// Setup router
	r := router.Setup(cfg, tripRepo, tripH, itineraryH, discoveryH, stampH, photoH, quizH, diaryH, aiH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
