package types

import (
  "time"
  "github.com/google/uuid"
)

type Appointment struct {
  ID                uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID            uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
  User              *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  ToolID            *uuid.UUID  `gorm:"type:uuid;index" json:"tool_id,omitempty"`
  Tool              *AiTool     `gorm:"constraint:OnDelete:SET NULL;foreignKey:ToolID;references:ID" json:"tool,omitempty"`
  CustomerName      string      `gorm:"not null;column:customer_name" json:"customer_name"`
  CustomerPhone     string      `gorm:"not null;column:customer_phone" json:"customer_phone"`
  Service           string      `gorm:"column:service" json:"service,omitempty"`
  AppointmentDate   time.Time   `gorm:"not null;column:appointment_date;index" json:"appointment_date"`
  Status            string      `gorm:"not null;default:'scheduled';column:status" json:"status"`
  Notes             string      `gorm:"column:notes" json:"notes,omitempty"`
  CreatedAt         time.Time   `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt         time.Time   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Appointment) TableName() string {
  return "appointment"
}

const (
  AppointmentStatusScheduled = "scheduled"
  AppointmentStatusCompleted = "completed"
  AppointmentStatusCancelled = "cancelled"
)
