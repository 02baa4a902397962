// Command entries inspects and removes stored dictionary entries. Removing an
// entry also drops the lookups cached under its spellings.
//
// Usage:
//
//	entries --show=2654250
//	entries --delete=2654250
//
// Reads DATABASE_URL and, when set, REDIS_URL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"yomu/internal/cache"
	"yomu/internal/config"
	"yomu/internal/db"
	"yomu/internal/dictionary"
	"yomu/internal/models"
)

func main() {
	show := flag.Int("show", 0, "sequence number of the entry to print")
	del := flag.Int("delete", 0, "sequence number of the entry to delete")
	flag.Parse()

	if (*show == 0) == (*del == 0) {
		fmt.Fprintln(os.Stderr, "Usage: entries --show=<sequence> | --delete=<sequence>")
		os.Exit(1)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer database.Close()

	var entryCache dictionary.Cache
	if cfg.RedisURL != "" {
		storage := cache.NewRedisStorage(cfg.RedisURL)
		defer storage.Close()
		entryCache = cache.New(storage, cfg.CacheTTL)
	}

	editor := dictionary.NewEditor(database, entryCache, nil)

	if *show != 0 {
		entry, err := editor.Get(ctx, *show)
		if errors.Is(err, db.ErrEntryNotFound) {
			fmt.Printf("No entry with sequence %d.\n", *show)
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("get entry: %v", err)
		}
		printEntry(os.Stdout, *entry)
		return
	}

	if err := editor.Delete(ctx, *del); err != nil {
		if errors.Is(err, db.ErrEntryNotFound) {
			fmt.Printf("No entry with sequence %d.\n", *del)
			os.Exit(1)
		}
		log.Fatalf("delete entry: %v", err)
	}
	fmt.Printf("Entry %d deleted.\n", *del)
}

func printEntry(w io.Writer, e models.Entry) {
	fmt.Fprintf(w, "%d  %s 【%s】\n", e.Sequence, e.Headword(), strings.Join(e.Readings, "、"))
	for i, m := range e.Meanings {
		tags := append(append([]string{}, m.PartOfSpeech...), m.Misc...)
		fmt.Fprintf(w, "  %d. %s", i+1, m.Gloss)
		if len(tags) > 0 {
			fmt.Fprintf(w, " [%s]", strings.Join(tags, " "))
		}
		fmt.Fprintln(w)
	}
}
