package main

import (
	"context"
	"log"

	"github.com/osse101/QuestCraft_Go/internal/bootstrap"
	"github.com/osse101/QuestCraft_Go/internal/config"
	"github.com/osse101/QuestCraft_Go/internal/storage"
)

// reset wipes the persisted game keys of the configured store.
// The store itself (sqlite file, postgres table) is kept.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StorageDriver, err)
	}
	defer store.Close()

	log.Printf("Clearing %s, %s and %s from the %s store...\n",
		storage.KeyGameData, storage.KeyDailyQuests, storage.KeyDailyQuestsDate, cfg.StorageDriver)

	if err := storage.NewGateway(store).Clear(ctx); err != nil {
		log.Fatalf("Failed to clear game state: %v", err)
	}

	log.Println("\n✅ Game state reset complete!")
	log.Println("Next start will roll a fresh set of daily quests.")
}
