package types

import (
  "time"
  "github.com/google/uuid"
)

// ChatLog is one turn of a conversation held by a deployed tool.
type ChatLog struct {
  ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
  User        *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  ToolID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"tool_id"`
  Tool        *AiTool     `gorm:"constraint:OnDelete:CASCADE;foreignKey:ToolID;references:ID" json:"tool,omitempty"`
  SessionID   string      `gorm:"column:session_id;index" json:"session_id"`
  Role        string      `gorm:"not null;column:role" json:"role"`
  Message     string      `gorm:"not null;column:message" json:"message"`
  CreatedAt   time.Time   `gorm:"not null;default:now()" json:"created_at"`
}

func (ChatLog) TableName() string {
  return "chat_log"
}
