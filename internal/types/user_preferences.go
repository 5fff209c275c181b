package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// UserPreferences holds at most one row per user (upsert on save).
type UserPreferences struct {
  ID              uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
  User            *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Industry        string          `gorm:"column:industry" json:"industry,omitempty"`
  BusinessSize    string          `gorm:"column:business_size" json:"business_size,omitempty"`
  Interests       datatypes.JSON  `gorm:"type:jsonb;column:interests" json:"interests,omitempty"`
  Languages       datatypes.JSON  `gorm:"type:jsonb;column:languages" json:"languages,omitempty"`
  CreatedAt       time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt       time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (UserPreferences) TableName() string {
  return "user_preferences"
}
