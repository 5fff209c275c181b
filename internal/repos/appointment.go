package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type AppointmentRepo interface {
  Create(ctx context.Context, tx *gorm.DB, appointment *types.Appointment) (*types.Appointment, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Appointment, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Appointment, error)
  Update(ctx context.Context, tx *gorm.DB, appointment *types.Appointment) (*types.Appointment, error)
}

type appointmentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAppointmentRepo(db *gorm.DB, baseLog *logger.Logger) AppointmentRepo {
  repoLog := baseLog.With("repo", "AppointmentRepo")
  return &appointmentRepo{db: db, log: repoLog}
}

func (ar *appointmentRepo) Create(ctx context.Context, tx *gorm.DB, appointment *types.Appointment) (*types.Appointment, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  if err := transaction.WithContext(ctx).Create(appointment).Error; err != nil {
    return nil, err
  }
  return appointment, nil
}

func (ar *appointmentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Appointment, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  var result types.Appointment
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    Limit(1).
    Find(&result).Error; err != nil {
    return nil, err
  }
  if result.ID == uuid.Nil {
    return nil, nil
  }
  return &result, nil
}

func (ar *appointmentRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Appointment, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  var results []*types.Appointment
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("appointment_date DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ar *appointmentRepo) Update(ctx context.Context, tx *gorm.DB, appointment *types.Appointment) (*types.Appointment, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  if appointment == nil || appointment.ID == uuid.Nil {
    return nil, nil
  }
  if err := transaction.WithContext(ctx).Save(appointment).Error; err != nil {
    return nil, err
  }
  return appointment, nil
}
