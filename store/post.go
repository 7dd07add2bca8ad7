package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/cppla/miniblog/models"
)

// PostChanges carries the optional fields of a partial post update.
// A nil field leaves the stored value untouched.
type PostChanges struct {
	Title   *string
	Content *string
	UserID  *uint
}

// CreatePost inserts a new post; the generated id is populated on return.
// The author is never validated here, a dangling user_id fails on the
// storage foreign key.
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
}

// GetPost looks a post up by primary key. Absence surfaces as
// gorm.ErrRecordNotFound.
func (s *Store) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost applies the non-nil fields of changes to the stored post and
// returns the updated record. An empty change set is a no-op that still
// returns the current record.
func (s *Store) UpdatePost(ctx context.Context, id uint, changes PostChanges) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		cols := map[string]interface{}{}
		if changes.Title != nil {
			cols["title"] = *changes.Title
		}
		if changes.Content != nil {
			cols["content"] = *changes.Content
		}
		if changes.UserID != nil {
			cols["user_id"] = *changes.UserID
		}
		if len(cols) == 0 {
			return nil
		}
		return tx.Model(&post).Updates(cols).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post by primary key. Absence surfaces as
// gorm.ErrRecordNotFound before anything is deleted.
func (s *Store) DeletePost(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}
