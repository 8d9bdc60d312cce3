package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"marketgogo/backend/internal/config"
	"marketgogo/backend/internal/storage"
	"marketgogo/backend/internal/translator"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Maintenance CLI for the translation store and the external provider:
//
//	admin usage                    print provider quota counters
//	admin stats                    print stored translation counts per locale
//	admin purge-orphans <class>    delete translation rows whose owning
//	                               record no longer exists
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <usage|stats|purge-orphans> [args]")
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "usage":
		client := translator.NewClient(cfg.TranslateAPIKey, cfg.TranslateBaseURL)
		usage, err := client.Usage(ctx)
		if err != nil {
			log.Fatalf("Error fetching usage info: %v", err)
		}
		fmt.Printf("Characters used: %d / %d\n", usage.CharacterCount, usage.CharacterLimit)

	case "stats":
		s := openStorage(cfg)
		counts, err := s.CountTranslationsByLocale(ctx)
		if err != nil {
			log.Fatalf("Error counting translations: %v", err)
		}
		for locale, total := range counts {
			fmt.Printf("%s: %d\n", locale, total)
		}

	case "purge-orphans":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin purge-orphans <object_class>")
			os.Exit(1)
		}
		objectClass := os.Args[2]
		table, keyColumn, ok := owningTable(objectClass)
		if !ok {
			log.Fatalf("Unknown object class %q", objectClass)
		}
		s := openStorage(cfg)
		removed, err := s.PurgeOrphanTranslations(ctx, objectClass, table, keyColumn)
		if err != nil {
			log.Fatalf("Error purging orphan translations: %v", err)
		}
		fmt.Printf("Removed %d orphan translation rows for %s.\n", removed, objectClass)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func openStorage(cfg *config.Config) *storage.Service {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return storage.NewStorageService(db, nil) // No redis needed for admin CLI
}

// owningTable maps an object class to the table and key column its
// translation rows reference.
func owningTable(objectClass string) (table, keyColumn string, ok bool) {
	switch objectClass {
	case "models.Product":
		return "products", "public_id", true
	case "models.Company":
		return "companies", "public_id", true
	}
	return "", "", false
}
