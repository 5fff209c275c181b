package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type UserRepo interface {
  Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error)
  GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.User, error)
  GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
  EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
  Update(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
}

type userRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
  repoLog := baseLog.With("repo", "UserRepo")
  return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }
  if len(users) == 0 {
    return []*types.User{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&users).Error; err != nil {
    return nil, err
  }
  return users, nil
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }
  if userID == uuid.Nil {
    return nil, nil
  }
  var result types.User
  if err := transaction.WithContext(ctx).
    Where("id = ?", userID).
    Limit(1).
    Find(&result).Error; err != nil {
    return nil, err
  }
  if result.ID == uuid.Nil {
    return nil, nil
  }
  return &result, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }
  if email == "" {
    return nil, nil
  }
  var result types.User
  if err := transaction.WithContext(ctx).
    Where("email = ?", email).
    Limit(1).
    Find(&result).Error; err != nil {
    return nil, err
  }
  if result.ID == uuid.Nil {
    return nil, nil
  }
  return &result, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }
  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("email = ?", email).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (ur *userRepo) Update(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }
  if user == nil || user.ID == uuid.Nil {
    return nil, nil
  }
  if err := transaction.WithContext(ctx).Save(user).Error; err != nil {
    return nil, err
  }
  return user, nil
}
