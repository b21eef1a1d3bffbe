// Command seed fills a development database with fake users, posts and
// likes. Never run it against production data.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"chirp/internal/config"
	"chirp/internal/database"
	"chirp/internal/models"
	"chirp/internal/repository"
	"chirp/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
)

const (
	userCount    = 8
	postsPerUser = 3
	seedPassword = "chirp1234"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	authService := service.NewAuthService(userRepo)
	postService := service.NewPostService(postRepo)

	gofakeit.Seed(0)

	var profiles []*models.Profile
	for i := 0; i < userCount; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("%s%d@example.com", gofakeit.Username(), i)

		profile, err := authService.Register(ctx, name, email, seedPassword)
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", email, err)
		}
		profiles = append(profiles, profile)
		log.Printf("seeded user %d <%s> (password %q)", profile.ID, profile.Email, seedPassword)
	}

	var postIDs []uint
	for _, profile := range profiles {
		for i := 0; i < postsPerUser; i++ {
			post, err := postService.CreatePost(ctx, profile.ID, gofakeit.Sentence(6))
			if err != nil {
				log.Fatalf("Failed to seed post for user %d: %v", profile.ID, err)
			}
			postIDs = append(postIDs, post.ID)
		}
	}

	// Random likes; the toggle keeps every (user, post) pair unique.
	likes := 0
	for _, profile := range profiles {
		for _, postID := range postIDs {
			if rand.Intn(3) == 0 {
				liked, err := postService.ToggleLike(ctx, profile.ID, postID)
				if err != nil {
					log.Fatalf("Failed to seed like: %v", err)
				}
				if liked {
					likes++
				}
			}
		}
	}

	log.Printf("seeded %d users, %d posts, %d likes", len(profiles), len(postIDs), likes)
}
