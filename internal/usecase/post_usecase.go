package usecase

import (
	"fmt"

	"mini-blog/internal/entity"
	"mini-blog/internal/repo/persistent"
	"mini-blog/pkg/logger"
)

type PostUseCase interface {
	CreatePost(authorID uint, title, content string) (*entity.Post, error)
	ListPosts() ([]*entity.Post, error)
	GetPost(postID uint) (*entity.Post, error)
	UpdatePost(postID, userID uint, title, content string) (*entity.Post, error)
	DeletePost(postID, userID uint) error
	LikePost(postID, userID uint, isLike bool) error
}

type postUseCase struct {
	postRepo persistent.PostRepository
	likeRepo persistent.LikeRepository
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, likeRepo persistent.LikeRepository, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		likeRepo: likeRepo,
		logger:   logger,
	}
}

func (uc *postUseCase) CreatePost(authorID uint, title, content string) (*entity.Post, error) {
	post := &entity.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post")
	}

	return post, nil
}

func (uc *postUseCase) ListPosts() ([]*entity.Post, error) {
	return uc.postRepo.List()
}

func (uc *postUseCase) GetPost(postID uint) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("post not found")
	}
	return post, nil
}

func (uc *postUseCase) UpdatePost(postID, userID uint, title, content string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("post not found")
	}

	if post.AuthorID != userID {
		return nil, fmt.Errorf("you are not the author of this post")
	}

	post.Title = title
	post.Content = content

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update post: %v", err)
		return nil, fmt.Errorf("failed to update post")
	}

	return post, nil
}

func (uc *postUseCase) DeletePost(postID, userID uint) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return fmt.Errorf("post not found")
	}

	if post.AuthorID != userID {
		return fmt.Errorf("you are not the author of this post")
	}

	return uc.postRepo.Delete(postID)
}

// LikePost records the like/dislike state for one (user, post) pair.
// An existing row is overwritten in place; re-submitting the same value
// is a no-op that still succeeds. Concurrent writers for the same pair
// are last-writer-wins.
func (uc *postUseCase) LikePost(postID, userID uint, isLike bool) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return fmt.Errorf("post not found")
	}

	if post.AuthorID == userID {
		return fmt.Errorf("you cannot like your own post")
	}

	existing, err := uc.likeRepo.GetByUserAndPost(userID, postID)
	if err == nil {
		existing.IsLike = isLike
		if err := uc.likeRepo.Update(existing); err != nil {
			uc.logger.Error("Failed to update like: %v", err)
			return fmt.Errorf("failed to save like")
		}
		return nil
	}

	like := &entity.Like{
		UserID: userID,
		PostID: postID,
		IsLike: isLike,
	}
	if err := uc.likeRepo.Create(like); err != nil {
		uc.logger.Error("Failed to create like: %v", err)
		return fmt.Errorf("failed to save like")
	}

	return nil
}
