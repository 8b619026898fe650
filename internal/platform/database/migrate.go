package database

import (
	"fmt"

	"gorm.io/gorm"

	"petcare_backend/internal/adoption"
	"petcare_backend/internal/article"
	"petcare_backend/internal/newsletter"
	"petcare_backend/internal/pet"
	"petcare_backend/internal/shelter"
	"petcare_backend/internal/story"
	"petcare_backend/internal/user"
)

// AutoMigrate creates or updates the schema for every model in the
// application. Also used by tests against an in-memory database.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&user.User{},
		&pet.Pet{},
		&adoption.Request{},
		&story.Story{},
		&shelter.Shelter{},
		&article.Article{},
		&newsletter.Subscription{},
	)
	if err != nil {
		return fmt.Errorf("running schema migration: %w", err)
	}
	return nil
}
