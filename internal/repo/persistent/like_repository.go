package persistent

import (
	"mini-blog/internal/entity"
	"mini-blog/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	GetByUserAndPost(userID, postID uint) (*entity.Like, error)
	Create(like *entity.Like) error
	Update(like *entity.Like) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) GetByUserAndPost(userID, postID uint) (*entity.Like, error) {
	var likeModel model.LikeModel
	if err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&likeModel).Error; err != nil {
		return nil, err
	}
	return ToLikeEntity(&likeModel), nil
}

func (r *likeRepository) Create(like *entity.Like) error {
	likeModel := ToLikeModel(like)
	if err := r.db.Create(likeModel).Error; err != nil {
		return err
	}
	*like = *ToLikeEntity(likeModel)
	return nil
}

func (r *likeRepository) Update(like *entity.Like) error {
	likeModel := ToLikeModel(like)
	return r.db.Save(likeModel).Error
}
