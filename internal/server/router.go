package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/vyaparai/vyaparai-backend/internal/handlers"
  "github.com/vyaparai/vyaparai-backend/internal/middleware"
)

type RouterConfig struct {
  AuthMiddleware        *middleware.AuthMiddleware
  AuthHandler           *handlers.AuthHandler
  UserHandler           *handlers.UserHandler
  ContactHandler        *handlers.ContactHandler
  PlanHandler           *handlers.PlanHandler
  ToolHandler           *handlers.ToolHandler
  LeadHandler           *handlers.LeadHandler
  AppointmentHandler    *handlers.AppointmentHandler
  ChatLogHandler        *handlers.ChatLogHandler
  PreferencesHandler    *handlers.PreferencesHandler
  ActivityHandler       *handlers.ActivityHandler
  RecommendationHandler *handlers.RecommendationHandler
  SubscriptionHandler   *handlers.SubscriptionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  api := router.Group("/api")

// ===============
// || Public    ||
// ===============
  api.GET("/health", handlers.HealthCheck)
  api.POST("/contact", cfg.ContactHandler.Submit)
  api.GET("/plans", cfg.PlanHandler.List)
  api.POST("/auth/register", cfg.AuthHandler.Register)
  api.POST("/auth/login", cfg.AuthHandler.Login)

// ===============
// || Protected ||
// ===============
  protected := api.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // User
  protected.GET("/user/profile", cfg.UserHandler.GetProfile)
  protected.PATCH("/user/profile", cfg.UserHandler.UpdateProfile)
  protected.GET("/user/preferences", cfg.PreferencesHandler.Get)
  protected.POST("/user/preferences", cfg.PreferencesHandler.Save)
  protected.POST("/user/activity", cfg.ActivityHandler.Record)
  // Tools
  protected.POST("/tools", cfg.ToolHandler.Create)
  protected.GET("/tools", cfg.ToolHandler.List)
  protected.GET("/tools/:id", cfg.ToolHandler.Get)
  protected.PATCH("/tools/:id", cfg.ToolHandler.Update)
  protected.DELETE("/tools/:id", cfg.ToolHandler.Delete)
  protected.GET("/tools/:id/chatlogs", cfg.ToolHandler.ListChatLogs)
  // Leads
  protected.POST("/leads", cfg.LeadHandler.Create)
  protected.GET("/leads", cfg.LeadHandler.List)
  protected.PATCH("/leads/:id", cfg.LeadHandler.Update)
  // Appointments
  protected.POST("/appointments", cfg.AppointmentHandler.Create)
  protected.GET("/appointments", cfg.AppointmentHandler.List)
  protected.PATCH("/appointments/:id", cfg.AppointmentHandler.Update)
  // Chat logs
  protected.POST("/chatlogs", cfg.ChatLogHandler.Append)
  protected.GET("/chatlogs", cfg.ChatLogHandler.List)
  // Contact submissions
  protected.GET("/contact/submissions", cfg.ContactHandler.List)
  protected.GET("/contact/submissions/:id", cfg.ContactHandler.Get)
  // Recommendations
  protected.GET("/recommendations", cfg.RecommendationHandler.List)
  protected.POST("/recommendations/generate", cfg.RecommendationHandler.Generate)
  protected.POST("/recommendations/:id/click", cfg.RecommendationHandler.MarkClicked)
  protected.POST("/recommendations/:id/implement", cfg.RecommendationHandler.MarkImplemented)
  // Subscriptions
  protected.POST("/subscriptions", cfg.SubscriptionHandler.Create)
  protected.GET("/subscriptions", cfg.SubscriptionHandler.List)
  protected.POST("/subscriptions/:id/cancel", cfg.SubscriptionHandler.Cancel)

  return router
}
