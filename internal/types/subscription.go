package types

import (
  "time"
  "github.com/google/uuid"
)

type Subscription struct {
  ID              uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID          uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
  User            *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  PlanID          uuid.UUID   `gorm:"type:uuid;not null;index" json:"plan_id"`
  Plan            *Plan       `gorm:"foreignKey:PlanID;references:ID" json:"plan,omitempty"`
  Status          string      `gorm:"not null;default:'active';column:status" json:"status"`
  BillingPeriod   string      `gorm:"not null;default:'monthly';column:billing_period" json:"billing_period"`
  StartedAt       time.Time   `gorm:"not null;default:now();column:started_at" json:"started_at"`
  ExpiresAt       *time.Time  `gorm:"column:expires_at" json:"expires_at,omitempty"`
  CreatedAt       time.Time   `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt       time.Time   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Subscription) TableName() string {
  return "subscription"
}

const (
  SubscriptionStatusActive    = "active"
  SubscriptionStatusCancelled = "cancelled"
  SubscriptionStatusExpired   = "expired"
)
