package router

import (
	"github.com/gin-gonic/gin"

	"wayfare/internal/config"
	"wayfare/internal/handler"
	"wayfare/internal/middleware"
	"wayfare/internal/port"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	tripRepo port.TripRepository,
	tripH *handler.TripHandler,
	itineraryH *handler.ItineraryHandler,
	discoveryH *handler.DiscoveryHandler,
	stampH *handler.StampHandler,
	photoH *handler.PhotoHandler,
	quizH *handler.QuizHandler,
	diaryH *handler.DiaryHandler,
	aiH *handler.AIHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public routes: create a trip, join one
	v1.POST("/trips", tripH.Create)
	v1.POST("/trips/join", tripH.Join)

	// Trip-scoped routes - require a valid X-Trip-Code header
	trip := v1.Group("/trip")
	trip.Use(middleware.TripResolver(tripRepo))

	trip.GET("", tripH.Get)
	trip.PUT("", tripH.Update)
	trip.POST("/invites", tripH.Invite)

	// Family members
	members := trip.Group("/members")
	members.GET("", tripH.ListMembers)
	members.POST("", tripH.CreateMember)
	members.PUT("/:id", tripH.UpdateMember)
	members.DELETE("/:id", tripH.DeleteMember)
	members.GET("/:id/passport", stampH.Passport)

	// Itinerary
	trip.GET("/itinerary", itineraryH.View)
	trip.PUT("/days", itineraryH.UpsertDay)
	trip.DELETE("/days/:id", itineraryH.DeleteDay)
	trip.PUT("/flights", itineraryH.UpsertFlight)
	trip.DELETE("/flights/:id", itineraryH.DeleteFlight)
	trip.PUT("/hotels", itineraryH.UpsertHotel)
	trip.DELETE("/hotels/:id", itineraryH.DeleteHotel)
	trip.PUT("/driving", itineraryH.UpsertDriving)
	trip.DELETE("/driving/:id", itineraryH.DeleteDriving)
	trip.PUT("/cars", itineraryH.UpsertRentalCar)
	trip.DELETE("/cars/:id", itineraryH.DeleteRentalCar)

	// Highlights
	highlights := trip.Group("/highlights")
	highlights.GET("", discoveryH.ListHighlights)
	highlights.PUT("", discoveryH.UpsertHighlight)
	highlights.POST("/:id/complete", discoveryH.CompleteHighlight)
	highlights.DELETE("/:id", discoveryH.DeleteHighlight)

	// Restaurants
	restaurants := trip.Group("/restaurants")
	restaurants.GET("", discoveryH.ListRestaurants)
	restaurants.PUT("", discoveryH.UpsertRestaurant)
	restaurants.POST("/:id/rate", discoveryH.RateRestaurant)
	restaurants.DELETE("/:id", discoveryH.DeleteRestaurant)

	// Packing list
	packing := trip.Group("/packing")
	packing.GET("", discoveryH.ListPackingItems)
	packing.PUT("", discoveryH.UpsertPackingItem)
	packing.DELETE("/:id", discoveryH.DeletePackingItem)

	// Passport stamps
	stamps := trip.Group("/stamps")
	stamps.GET("", stampH.List)
	stamps.PUT("", stampH.Upsert)
	stamps.GET("/earned", stampH.ListEarned)
	stamps.POST("/:id/earn", stampH.Earn)
	stamps.DELETE("/:id", stampH.Delete)

	// Photo feed
	photos := trip.Group("/photos")
	photos.GET("", photoH.List)
	photos.POST("", photoH.Upload)
	photos.DELETE("/:id", photoH.Delete)

	// Trip quiz
	quiz := trip.Group("/quiz")
	quiz.GET("", quizH.ListQuestions)
	quiz.PUT("", quizH.UpsertQuestion)
	quiz.DELETE("/:id", quizH.DeleteQuestion)
	quiz.POST("/:id/answer", quizH.SubmitAnswer)
	quiz.GET("/results", quizH.Results)
	quiz.GET("/answers/:memberId", quizH.MemberAnswers)

	// Travel log
	diary := trip.Group("/diary")
	diary.GET("", diaryH.List)
	diary.PUT("", diaryH.Upsert)
	diary.DELETE("/:id", diaryH.Delete)

	// AI import and suggestions
	aiGroup := trip.Group("/ai")
	aiGroup.POST("/analyze", aiH.Analyze)
	aiGroup.POST("/imports", aiH.SaveImports)
	aiGroup.POST("/suggest", aiH.Suggest)
	aiGroup.POST("/suggestions", aiH.SaveSuggestions)
	aiGroup.GET("/config", aiH.GetAIConfig)
	aiGroup.PUT("/config", aiH.SetAIConfig)

	// Export
	trip.GET("/export/itinerary.xlsx", exportH.ItineraryXLSX)

	return r
}
