package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"moviweb-backend/internal/config"
	"moviweb-backend/internal/database"
	"moviweb-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Simple structures that directly match the seed file schema
type MovieData struct {
	Title       string   `yaml:"title"`
	Director    string   `yaml:"director"`
	ReleaseYear *int     `yaml:"release_year,omitempty"`
	Rating      *float64 `yaml:"rating,omitempty"`
}

type UserData struct {
	Name   string   `yaml:"name"`
	Movies []string `yaml:"movies,omitempty"` // titles from the movies list
}

type SeedFile struct {
	Movies []MovieData `yaml:"movies"`
	Users  []UserData  `yaml:"users"`
}

func main() {
	path := flag.String("file", "scripts/seed/data.yaml", "path to the seed YAML file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("read seed file: %v", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("parse seed file: %v", err)
	}

	if err := load(db, &seed); err != nil {
		log.Fatalf("load seed data: %v", err)
	}
	fmt.Printf("seeded %d movies and %d users\n", len(seed.Movies), len(seed.Users))
}

// load inserts all seed rows in one transaction so a partial seed never persists
func load(db *gorm.DB, seed *SeedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		moviesByTitle := make(map[string]*models.Movie, len(seed.Movies))

		for _, m := range seed.Movies {
			title := strings.TrimSpace(m.Title)
			if title == "" {
				return fmt.Errorf("movie with empty title in seed file")
			}
			movie := &models.Movie{
				Title:       title,
				Director:    m.Director,
				ReleaseYear: m.ReleaseYear,
				Rating:      m.Rating,
			}
			if err := tx.Create(movie).Error; err != nil {
				return fmt.Errorf("create movie %q: %w", title, err)
			}
			moviesByTitle[strings.ToLower(title)] = movie
		}

		for _, u := range seed.Users {
			name := strings.TrimSpace(u.Name)
			if name == "" {
				return fmt.Errorf("user with empty name in seed file")
			}
			user := &models.User{Name: name}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("create user %q: %w", name, err)
			}

			for _, title := range u.Movies {
				movie, ok := moviesByTitle[strings.ToLower(strings.TrimSpace(title))]
				if !ok {
					return fmt.Errorf("user %q references unknown movie %q", name, title)
				}
				err := tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&models.UserMovie{UserID: user.ID, MovieID: movie.ID}).Error
				if err != nil {
					return fmt.Errorf("attach %q to %q: %w", title, name, err)
				}
			}
		}

		return nil
	})
}
