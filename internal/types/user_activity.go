package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// UserActivity is an append-only log row; rows are never updated.
type UserActivity struct {
  ID              uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
  User            *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  ActivityType    string          `gorm:"not null;column:activity_type;index" json:"activity_type"`
  EntityType      string          `gorm:"not null;column:entity_type" json:"entity_type"`
  EntityID        *uuid.UUID      `gorm:"type:uuid;column:entity_id" json:"entity_id,omitempty"`
  Metadata        datatypes.JSON  `gorm:"type:jsonb;column:metadata" json:"metadata,omitempty"`
  CreatedAt       time.Time       `gorm:"not null;default:now();index" json:"created_at"`
}

func (UserActivity) TableName() string {
  return "user_activity"
}
