package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/quizzly/trivia-backend/internal/config"
	"github.com/quizzly/trivia-backend/internal/database"
	"github.com/quizzly/trivia-backend/internal/logger"
	"github.com/quizzly/trivia-backend/internal/model"
	"github.com/quizzly/trivia-backend/internal/repository"
	"github.com/quizzly/trivia-backend/internal/service"
)

// seedFile mirrors data/trivia.json: categories by display name, questions
// referencing their category by that name.
type seedFile struct {
	Categories []string `json:"categories"`
	Questions  []struct {
		Question   string `json:"question"`
		Answer     string `json:"answer"`
		Category   string `json:"category"`
		Difficulty int    `json:"difficulty"`
	} `json:"questions"`
}

func main() {
	var path string
	flag.StringVar(&path, "file", "data/trivia.json", "Path to seed file")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to read seed file")
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse seed file")
	}

	questionRepo := repository.NewQuestionRepository(pool)
	questionService := service.NewQuestionService(questionRepo)

	fmt.Printf("=== Seeding %d categories, %d questions ===\n", len(seed.Categories), len(seed.Questions))

	// Upsert categories by display name and remember their ids.
	categoryIDs := make(map[string]int, len(seed.Categories))
	for _, catType := range seed.Categories {
		var id int
		err := pool.QueryRow(ctx,
			`INSERT INTO categories (type) VALUES ($1)
			 ON CONFLICT (type) DO UPDATE SET type = EXCLUDED.type
			 RETURNING id`, catType,
		).Scan(&id)
		if err != nil {
			log.Fatal().Err(err).Str("category", catType).Msg("Failed to seed category")
		}
		categoryIDs[catType] = id
	}

	inserted := 0
	for _, entry := range seed.Questions {
		categoryID, ok := categoryIDs[entry.Category]
		if !ok {
			log.Fatal().Str("category", entry.Category).Msg("Question references unknown category")
		}

		// Skip questions already present so reseeding stays idempotent.
		var exists bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM questions WHERE question = $1 AND category = $2)`,
			entry.Question, categoryID,
		).Scan(&exists)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to check existing question")
		}
		if exists {
			continue
		}

		q := &model.Question{
			Question:   entry.Question,
			Answer:     entry.Answer,
			Category:   categoryID,
			Difficulty: entry.Difficulty,
		}
		if err := questionService.Create(ctx, q); err != nil {
			log.Fatal().Err(err).Str("question", entry.Question).Msg("Failed to seed question")
		}
		inserted++
	}

	fmt.Printf("Done. Inserted %d new questions.\n", inserted)
}
