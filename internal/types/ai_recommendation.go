package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// AiRecommendation is produced only by the recommendation pipeline. Metadata
// keeps the unparsed model object for audit. Clicked/Implemented are latches:
// once true they stay true.
type AiRecommendation struct {
  ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
  User          *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  ToolType      ToolType        `gorm:"not null;column:tool_type" json:"tool_type"`
  ToolName      string          `gorm:"not null;column:tool_name" json:"tool_name"`
  Score         int             `gorm:"not null;column:score" json:"score"`
  Reason        string          `gorm:"column:reason" json:"reason"`
  Metadata      datatypes.JSON  `gorm:"type:jsonb;column:metadata" json:"metadata,omitempty"`
  Clicked       bool            `gorm:"not null;default:false;column:clicked" json:"clicked"`
  Implemented   bool            `gorm:"not null;default:false;column:implemented" json:"implemented"`
  CreatedAt     time.Time       `gorm:"not null;default:now();index" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (AiRecommendation) TableName() string {
  return "ai_recommendation"
}
