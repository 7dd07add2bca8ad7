package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/cppla/miniblog/models"
)

// UserChanges carries the optional fields of a partial user update.
// A nil field leaves the stored value untouched.
type UserChanges struct {
	Username *string
}

// CreateUser inserts a new user; the generated id is populated on return.
// A duplicate username fails on the storage unique index.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

// GetUser looks a user up by primary key. Absence surfaces as
// gorm.ErrRecordNotFound.
func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the non-nil fields of changes to the stored user and
// returns the updated record. An empty change set is a no-op that still
// returns the current record.
func (s *Store) UpdateUser(ctx context.Context, id uint, changes UserChanges) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		cols := map[string]interface{}{}
		if changes.Username != nil {
			cols["username"] = *changes.Username
		}
		if len(cols) == 0 {
			return nil
		}
		return tx.Model(&user).Updates(cols).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user by primary key. Absence surfaces as
// gorm.ErrRecordNotFound before anything is deleted.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
