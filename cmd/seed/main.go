package main

import (
	"fmt"

	"mini-blog/internal/model"
	"mini-blog/pkg/config"
	"mini-blog/pkg/database"
	"mini-blog/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		username string
		email    string
		password string
	}{
		{"alice", "alice@test.com", "password123"},
		{"bob", "bob@test.com", "password123"},
		{"charlie", "charlie@test.com", "password123"},
	}

	users := make([]*model.UserModel, 0, len(testUsers))

	for _, userData := range testUsers {
		var existingUser model.UserModel
		result := db.Where("username = ? OR email = ?", userData.username, userData.email).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", userData.username)
			users = append(users, &existingUser)
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &model.UserModel{
			Username: userData.username,
			Email:    userData.email,
			Password: string(hashedPassword),
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		users = append(users, user)
	}

	posts := make([]*model.PostModel, 0, len(users)*2)
	for _, user := range users {
		for i := 1; i <= 2; i++ {
			post := &model.PostModel{
				Title:    fmt.Sprintf("%s's post #%d", user.Username, i),
				Content:  fmt.Sprintf("Demo content written by %s.", user.Username),
				AuthorID: user.ID,
			}
			if err := db.Create(post).Error; err != nil {
				log.Error("Failed to create post for user %s: %v", user.Username, err)
				continue
			}
			posts = append(posts, post)
		}
	}

	// Cross-like every other user's posts, alternating like and dislike.
	// Own posts are skipped: authors cannot like their own posts.
	for i, user := range users {
		for j, post := range posts {
			if post.AuthorID == user.ID {
				continue
			}

			var existingLike model.LikeModel
			result := db.Where("user_id = ? AND post_id = ?", user.ID, post.ID).First(&existingLike)
			if result.Error == nil {
				continue
			}

			like := &model.LikeModel{
				UserID: user.ID,
				PostID: post.ID,
				IsLike: (i+j)%2 == 0,
			}
			if err := db.Create(like).Error; err != nil {
				log.Error("Failed to create like: %v", err)
			}
		}
	}

	return nil
}
