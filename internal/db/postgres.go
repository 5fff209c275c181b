package db

import (
  "context"
  "encoding/json"
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/types"
  "github.com/vyaparai/vyaparai-backend/internal/utils"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "vyaparai", log)

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  serviceLog.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    serviceLog.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
    serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
    return nil, fmt.Errorf("Failed to enable uuid-ossp extension: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.User{},
    &types.ContactSubmission{},
    &types.AiTool{},
    &types.Plan{},
    &types.Subscription{},
    &types.ChatLog{},
    &types.Lead{},
    &types.Appointment{},
    &types.UserPreferences{},
    &types.UserActivity{},
    &types.AiRecommendation{},
    &types.AICallLog{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }

  s.log.Info("Configuring foreign key relationships for postgres tables...")
  ownedTables := []string{
    "ai_tool",
    "subscription",
    "chat_log",
    "lead",
    "appointment",
    "user_preferences",
    "user_activity",
    "ai_recommendation",
  }
  for _, table := range ownedTables {
    stmt := fmt.Sprintf(`
      DO $$ BEGIN
        ALTER TABLE "%s"
        ADD CONSTRAINT "fk_%s_user_id"
        FOREIGN KEY ("user_id")
        REFERENCES "user"("id")
        ON DELETE CASCADE;
      EXCEPTION WHEN duplicate_object THEN NULL;
      END $$;
    `, table, table)
    if err := s.db.Exec(stmt).Error; err != nil {
      return fmt.Errorf("Failed to add fk_%s_user_id: %w", table, err)
    }
  }
  return nil
}

// SeedPlans inserts the three public pricing plans when none exist yet.
func (s *PostgresService) SeedPlans(planRepo repos.PlanRepo) error {
  ctx := context.Background()
  existing, err := planRepo.List(ctx, nil)
  if err != nil {
    return fmt.Errorf("Failed to list plans: %w", err)
  }
  if len(existing) > 0 {
    s.log.Debug("Plans already seeded, skipping", "count", len(existing))
    return nil
  }

  type planFeature struct {
    Text      string  `json:"text"`
    Included  bool    `json:"included"`
  }
  mustJSON := func(features []planFeature) []byte {
    raw, err := json.Marshal(features)
    if err != nil {
      return []byte("[]")
    }
    return raw
  }

  plans := []*types.Plan{
    {
      Name:          "Starter",
      Description:   "Perfect for small businesses just getting started",
      MonthlyPrice:  999,
      YearlyPrice:   9590,
      Features: mustJSON([]planFeature{
        {Text: "3 AI tools of your choice", Included: true},
        {Text: "500 AI interactions per month", Included: true},
        {Text: "Hindi language support", Included: true},
        {Text: "Email support", Included: true},
        {Text: "Custom branding", Included: false},
        {Text: "Advanced analytics", Included: false},
      }),
    },
    {
      Name:          "Growth",
      Description:   "For businesses ready to accelerate growth",
      MonthlyPrice:  2499,
      YearlyPrice:   23990,
      Popular:       true,
      Features: mustJSON([]planFeature{
        {Text: "All AI tools included", Included: true},
        {Text: "2,000 AI interactions per month", Included: true},
        {Text: "5 Indian language support", Included: true},
        {Text: "Priority email & chat support", Included: true},
        {Text: "Custom branding", Included: true},
        {Text: "Advanced analytics", Included: false},
      }),
    },
    {
      Name:          "Enterprise",
      Description:   "Custom solutions for larger businesses",
      MonthlyPrice:  4999,
      YearlyPrice:   47990,
      Features: mustJSON([]planFeature{
        {Text: "All AI tools + custom development", Included: true},
        {Text: "Unlimited AI interactions", Included: true},
        {Text: "All Indian languages supported", Included: true},
        {Text: "24/7 priority support", Included: true},
        {Text: "Custom branding & white label", Included: true},
        {Text: "Advanced analytics & reporting", Included: true},
      }),
    },
  }
  for _, plan := range plans {
    if _, err := planRepo.Create(ctx, s.db, plan); err != nil {
      return fmt.Errorf("Failed to seed plan %s: %w", plan.Name, err)
    }
  }
  s.log.Info("Seeded pricing plans", "count", len(plans))
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
