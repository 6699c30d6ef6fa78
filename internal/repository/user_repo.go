package repository

import (
	"context"
	"time"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/pkg/metrics"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdateColumns(ctx context.Context, id int64, columns map[string]interface{}) error
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type userRepo struct {
	table[model.User]
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{table[model.User]{db: db, name: model.TableUser, pk: "user_id"}}
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	defer metrics.TrackDBOperation(r.name, "find")(time.Now())
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	defer metrics.TrackDBOperation(r.name, "update")(time.Now())
	return r.db.WithContext(ctx).Model(&model.User{}).Where(r.byID(id)).Update("password", hashedPassword).Error
}
