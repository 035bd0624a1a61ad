package routes

import (
	"log"

	"fittrack/controllers"
	"fittrack/middlewares"
	"fittrack/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	gam := services.NewGamificationService(db)

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(db)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
	}
	gam.SetNotifiers(hub, push)

	rek := services.NewRekognitionService()

	authSvc := services.NewAuthService(db, gam)
	userSvc := services.NewUserService(db, gam)
	hydrationSvc := services.NewHydrationService(db, gam)
	nutritionSvc := services.NewNutritionService(db, gam, rek)
	workoutSvc := services.NewWorkoutService(db, gam)
	fitnessSvc := services.NewFitnessService(db, services.NewSimulatedFitProvider())
	assistantSvc := services.NewAssistantService(db)

	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	gamCtrl := controllers.NewGamificationController(gam)
	hydrationCtrl := controllers.NewHydrationController(hydrationSvc)
	nutritionCtrl := controllers.NewNutritionController(nutritionSvc)
	workoutCtrl := controllers.NewWorkoutController(workoutSvc)
	fitnessCtrl := controllers.NewFitnessController(fitnessSvc)
	assistantCtrl := controllers.NewAssistantController(assistantSvc)
	realtimeCtrl := controllers.NewRealtimeController(hub)
	deviceCtrl := controllers.NewDeviceController(push)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/verify-mfa", authCtrl.VerifyMFA)
		auth.POST("/forgot-password", authCtrl.ForgotPassword)
		auth.POST("/reset-password", authCtrl.ResetPassword)
	}

	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtrl.GetProfile)
		user.PUT("/profile", userCtrl.UpdateProfile)
		user.POST("/onboarding", userCtrl.CompleteOnboarding)
		user.GET("/recommended-goals", userCtrl.RecommendedGoals)
		user.DELETE("", userCtrl.DeleteAccount)
	}

	game := r.Group("/gamification")
	game.Use(middlewares.AuthMiddleware())
	{
		game.GET("/profile", gamCtrl.GetProfile)
		game.GET("/badges", gamCtrl.GetBadges)
		game.GET("/badges/recent", gamCtrl.GetRecentBadges)
		game.GET("/badges/catalog", gamCtrl.GetBadgeCatalog)
		game.POST("/badges/seen", gamCtrl.MarkBadgesSeen)
		game.GET("/badges/next", gamCtrl.GetNextBadge)
		game.GET("/streaks", gamCtrl.GetStreaks)
		game.GET("/activity", gamCtrl.GetActivityLog)
		game.GET("/leaderboard", gamCtrl.GetLeaderboard)
	}

	hydration := r.Group("/hydration")
	hydration.Use(middlewares.AuthMiddleware())
	{
		hydration.POST("", hydrationCtrl.AddWater)
		hydration.GET("", hydrationCtrl.GetDay)
		hydration.GET("/history", hydrationCtrl.History)
	}

	nutrition := r.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware())
	{
		nutrition.GET("/goals", nutritionCtrl.GetGoal)
		nutrition.PUT("/goals", nutritionCtrl.SetGoal)
		nutrition.POST("/entries", nutritionCtrl.AddEntry)
		nutrition.GET("/entries", nutritionCtrl.GetDailyTotals)
		nutrition.DELETE("/entries/:id", nutritionCtrl.DeleteEntry)
		nutrition.GET("/foods", nutritionCtrl.SearchFoods)
		nutrition.POST("/meal-plans", nutritionCtrl.GenerateMealPlan)
		nutrition.GET("/meal-plans", nutritionCtrl.GetMealPlans)
		nutrition.POST("/recognize", nutritionCtrl.RecognizeFood)
	}

	workouts := r.Group("/workouts")
	workouts.Use(middlewares.AuthMiddleware())
	{
		workouts.GET("/exercises", workoutCtrl.GetExerciseCatalog)
		workouts.POST("/plans", workoutCtrl.GeneratePlan)
		workouts.GET("/plans", workoutCtrl.GetPlans)
		workouts.GET("/sessions", workoutCtrl.GetSessions)
		workouts.GET("/today", workoutCtrl.GetTodaysWorkout)
		workouts.POST("/complete-exercise", workoutCtrl.CompleteExercise)
		workouts.POST("/uncomplete-exercise", workoutCtrl.UncompleteExercise)
		workouts.GET("/progress", workoutCtrl.GetProgress)
		workouts.GET("/weekly-summary", workoutCtrl.GetWeeklySummary)
	}

	fitness := r.Group("/fitness")
	fitness.Use(middlewares.AuthMiddleware())
	{
		fitness.POST("/sync", fitnessCtrl.Sync)
		fitness.GET("/metrics", fitnessCtrl.GetMetrics)
		fitness.GET("/metrics/range", fitnessCtrl.GetMetricsRange)
		fitness.GET("/goals", fitnessCtrl.GetGoals)
		fitness.PUT("/goals", fitnessCtrl.UpdateGoals)
		fitness.GET("/weekly", fitnessCtrl.GetWeeklyProgress)
		fitness.GET("/trends", fitnessCtrl.GetTrends)
	}

	assistant := r.Group("/assistant")
	assistant.Use(middlewares.AuthMiddleware())
	{
		assistant.POST("/chat", assistantCtrl.Chat)
		assistant.GET("/history", assistantCtrl.History)
		assistant.POST("/hydration-reminder", assistantCtrl.HydrationReminder)
		assistant.POST("/motivation", assistantCtrl.Motivation)
		assistant.POST("/suggestion", assistantCtrl.Suggestion)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", realtimeCtrl.EventsWS)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("", deviceCtrl.RegisterDevice)
	}

	return r
}
