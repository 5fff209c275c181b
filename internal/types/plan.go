package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

type Plan struct {
  ID              uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Name            string          `gorm:"uniqueIndex;not null;column:name" json:"name"`
  Description     string          `gorm:"column:description" json:"description"`
  MonthlyPrice    int             `gorm:"not null;column:monthly_price" json:"monthly_price"`
  YearlyPrice     int             `gorm:"not null;column:yearly_price" json:"yearly_price"`
  Features        datatypes.JSON  `gorm:"type:jsonb;column:features" json:"features"`
  Popular         bool            `gorm:"not null;default:false;column:popular" json:"popular"`
  CreatedAt       time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt       time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (Plan) TableName() string {
  return "plan"
}
