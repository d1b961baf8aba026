// Package seed provides helpers to create demo data for the application
// database. Intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password every seeded user gets.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hashed),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post owned by user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:  gofakeit.Sentence(5),
		Body:   gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID: user.ID,
	}
	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Run seeds the database with the given number of users, each with
// postsPerUser posts.
func Run(db *gorm.DB, users, postsPerUser int) error {
	f := NewFactory(db)
	for i := 0; i < users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		for j := 0; j < postsPerUser; j++ {
			if _, err := f.CreatePost(user); err != nil {
				return fmt.Errorf("seed post for user %d: %w", user.ID, err)
			}
		}
		log.Printf("seeded user %q with %d posts", user.Name, postsPerUser)
	}
	return nil
}
