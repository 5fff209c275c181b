package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// AiTool is a configured integration instance owned by exactly one user.
type AiTool struct {
  ID              uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
  User            *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Name            string          `gorm:"not null;column:name" json:"name"`
  ToolType        ToolType        `gorm:"not null;column:tool_type;index" json:"tool_type"`
  Configuration   datatypes.JSON  `gorm:"type:jsonb;column:configuration" json:"configuration"`
  Active          bool            `gorm:"not null;default:true;column:active" json:"active"`
  CreatedAt       time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt       time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (AiTool) TableName() string {
  return "ai_tool"
}
