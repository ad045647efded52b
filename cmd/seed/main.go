package main

import (
	"context"
	"flag"
	"log"

	"craftguide-be/internal/config"
	"craftguide-be/internal/repository/unitofwork"
	"craftguide-be/pkg/database"
	"craftguide-be/pkg/knowledge"
)

// Seeds knowledge_articles from a YAML corpus. Existing articles are updated
// in place; their view counts and ratings are left alone.
func main() {
	cfg := config.Load()
	corpusPath := flag.String("corpus", cfg.Knowledge.CorpusPath, "path to the YAML knowledge corpus")
	flag.Parse()

	if !cfg.UsesDatabase() {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	articles, err := knowledge.LoadCorpusFile(*corpusPath)
	if err != nil {
		log.Fatalf("Error: Failed to load corpus: %v", err)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		log.Fatalf("Error: Failed to begin transaction: %v", err)
	}

	repo := uow.KnowledgeRepository()
	for _, article := range articles {
		if err := repo.Upsert(ctx, article); err != nil {
			_ = uow.Rollback()
			log.Fatalf("Error: Failed to seed article %s: %v", article.ID, err)
		}
	}

	if err := uow.Commit(); err != nil {
		log.Fatalf("Error: Failed to commit: %v", err)
	}

	log.Printf("✅ Seeded %d knowledge articles from %s", len(articles), *corpusPath)
}
