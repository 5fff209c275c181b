package types

import (
  "time"
  "github.com/google/uuid"
)

type Lead struct {
  ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
  User        *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  ToolID      *uuid.UUID  `gorm:"type:uuid;index" json:"tool_id,omitempty"`
  Tool        *AiTool     `gorm:"constraint:OnDelete:SET NULL;foreignKey:ToolID;references:ID" json:"tool,omitempty"`
  Name        string      `gorm:"not null;column:name" json:"name"`
  Phone       string      `gorm:"not null;column:phone" json:"phone"`
  Email       string      `gorm:"column:email" json:"email,omitempty"`
  Source      string      `gorm:"column:source" json:"source,omitempty"`
  Status      string      `gorm:"not null;default:'new';column:status" json:"status"`
  Notes       string      `gorm:"column:notes" json:"notes,omitempty"`
  CreatedAt   time.Time   `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt   time.Time   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Lead) TableName() string {
  return "lead"
}

const (
  LeadStatusNew       = "new"
  LeadStatusContacted = "contacted"
  LeadStatusQualified = "qualified"
  LeadStatusConverted = "converted"
)
