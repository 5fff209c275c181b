package main

import (
  "fmt"
  "os"
  "time"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/utils"
  "github.com/vyaparai/vyaparai-backend/internal/db"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/services"
  "github.com/vyaparai/vyaparai-backend/internal/handlers"
  "github.com/vyaparai/vyaparai-backend/internal/middleware"
  "github.com/vyaparai/vyaparai-backend/internal/server"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey, err := utils.MustGetEnv("JWT_SECRET_KEY", log)
  if err != nil {
    log.Fatal("JWT_SECRET_KEY must be set", "error", err)
  }
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 86400, log)
  port := utils.GetEnv("PORT", "8080", log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Fatal("Postgres init failed", "error", err)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Fatal("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  contactRepo := repos.NewContactRepo(thePG, log)
  planRepo := repos.NewPlanRepo(thePG, log)
  if err = postgresService.SeedPlans(planRepo); err != nil {
    log.Fatal("Plan seeding failed", "error", err)
  }
  toolRepo := repos.NewAiToolRepo(thePG, log)
  leadRepo := repos.NewLeadRepo(thePG, log)
  appointmentRepo := repos.NewAppointmentRepo(thePG, log)
  chatLogRepo := repos.NewChatLogRepo(thePG, log)
  preferencesRepo := repos.NewPreferencesRepo(thePG, log)
  activityRepo := repos.NewActivityRepo(thePG, log)
  recommendationRepo := repos.NewRecommendationRepo(thePG, log)
  aiCallLogRepo := repos.NewAICallLogRepo(thePG, log)
  subscriptionRepo := repos.NewSubscriptionRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  authService := services.NewAuthService(thePG, log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
  userService := services.NewUserService(thePG, log, userRepo)
  contactService := services.NewContactService(thePG, log, contactRepo)
  planService := services.NewPlanService(thePG, log, planRepo)
  toolService := services.NewToolService(thePG, log, toolRepo, chatLogRepo)
  leadService := services.NewLeadService(thePG, log, leadRepo)
  appointmentService := services.NewAppointmentService(thePG, log, appointmentRepo)
  chatLogService := services.NewChatLogService(thePG, log, chatLogRepo, toolRepo)
  preferencesService := services.NewPreferencesService(thePG, log, preferencesRepo)
  activityService := services.NewActivityService(thePG, log, activityRepo)
  subscriptionService := services.NewSubscriptionService(thePG, log, subscriptionRepo, planRepo)
  aiClient, err := services.NewOpenAIClient(log)
  if err != nil {
    log.Fatal("OpenAI client init failed", "error", err)
  }
  recommendationService := services.NewRecommendationService(
    thePG,
    log,
    preferencesRepo,
    toolRepo,
    activityRepo,
    recommendationRepo,
    aiCallLogRepo,
    aiClient,
  )

  // Handlers
  log.Info("Setting up Handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  userHandler := handlers.NewUserHandler(userService)
  contactHandler := handlers.NewContactHandler(contactService)
  planHandler := handlers.NewPlanHandler(planService)
  toolHandler := handlers.NewToolHandler(toolService)
  leadHandler := handlers.NewLeadHandler(leadService)
  appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
  chatLogHandler := handlers.NewChatLogHandler(chatLogService)
  preferencesHandler := handlers.NewPreferencesHandler(preferencesService)
  activityHandler := handlers.NewActivityHandler(activityService)
  recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
  subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  router := server.NewRouter(server.RouterConfig{
    AuthMiddleware:        authMiddleware,
    AuthHandler:           authHandler,
    UserHandler:           userHandler,
    ContactHandler:        contactHandler,
    PlanHandler:           planHandler,
    ToolHandler:           toolHandler,
    LeadHandler:           leadHandler,
    AppointmentHandler:    appointmentHandler,
    ChatLogHandler:        chatLogHandler,
    PreferencesHandler:    preferencesHandler,
    ActivityHandler:       activityHandler,
    RecommendationHandler: recommendationHandler,
    SubscriptionHandler:   subscriptionHandler,
  })

  log.Info("Starting server from main...", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Fatal("Server exited", "error", err)
  }
}
