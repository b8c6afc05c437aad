package repositories

import (
	"github.com/anonto42/socialwall/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for seed comment operations
type CommentRepository interface {
	GetComments() ([]models.Comment, error)
	GetCommentsByPostID(postID string) ([]models.Comment, error)
	ReplaceComments(comments []models.Comment) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// GetComments retrieves all comments, oldest first
func (r *PostgresCommentRepository) GetComments() ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetCommentsByPostID retrieves all comments for a specific post from PostgreSQL
func (r *PostgresCommentRepository) GetCommentsByPostID(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postID).Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ReplaceComments swaps the stored comments for the given set in one transaction
func (r *PostgresCommentRepository) ReplaceComments(comments []models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if len(comments) == 0 {
			return nil
		}
		return tx.Create(&comments).Error
	})
}
