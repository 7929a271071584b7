package models

import "time"

// Category groups nouns; ID is the value the category selector submits.
type Category struct {
	ID        string    `json:"id" db:"category_id"`
	Name      string    `json:"name" db:"category_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Noun is an English/Portuguese pair belonging to one category.
type Noun struct {
	ID         int64     `json:"id" db:"id"`
	English    string    `json:"english" db:"english_noun"`
	Portuguese string    `json:"portuguese" db:"portuguese_noun"`
	CategoryID string    `json:"category_id" db:"noun_category"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Vocabulary is a full import payload.
type Vocabulary struct {
	Categories []Category
	Nouns      []Noun
}
