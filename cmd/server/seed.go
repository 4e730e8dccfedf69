package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/rpattn/changelist/internal/domain"
)

func seedBooks() []domain.Record {
	type book struct {
		title     string
		author    string
		published time.Time
	}
	books := []book{
		{"Dune", "Frank Herbert", time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"Emma", "Jane Austen", time.Date(1815, 12, 23, 0, 0, 0, 0, time.UTC)},
		{"Persuasion", "Jane Austen", time.Date(1817, 12, 20, 0, 0, 0, 0, time.UTC)},
		{"Ulysses", "James Joyce", time.Date(1922, 2, 2, 0, 0, 0, 0, time.UTC)},
		{"Solaris", "Stanisław Lem", time.Date(1961, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"The Left Hand of Darkness", "Ursula K. Le Guin", time.Date(1969, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	out := make([]domain.Record, len(books))
	for i, b := range books {
		out[i] = domain.MapRecord{
			"id":           uuid.New().String(),
			"title":        b.title,
			"author":       b.author,
			"published_at": b.published,
		}
	}
	return out
}
