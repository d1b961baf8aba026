// Command seed populates the database with demo users and posts.
package main

import (
	"flag"
	"fmt"
	"log"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/seed"
)

func main() {
	users := flag.Int("users", 5, "number of users to create")
	posts := flag.Int("posts", 3, "posts per user")
	flag.Parse()

	if err := run(*users, *posts); err != nil {
		log.Fatal(err)
	}
}

func run(users, posts int) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := seed.Run(db, users, posts); err != nil {
		return err
	}

	log.Printf("seeded %d users with %d posts each (password %q)", users, posts, seed.DefaultPassword)
	return nil
}
