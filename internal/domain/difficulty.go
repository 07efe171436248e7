package domain

import (
	"fmt"
	"strings"
)

// Difficulty is the optional difficulty rating of a topic
type Difficulty string

const (
	DifficultyNone   Difficulty = ""
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// DifficultyOther is the statistics bucket for topics without a known difficulty
const DifficultyOther Difficulty = "Other"

// Buckets lists the statistics buckets in display order
var Buckets = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyOther}

// Bucket returns the statistics bucket for the difficulty.
// Unset and unrecognised values land in Other.
func (d Difficulty) Bucket() Difficulty {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d
	default:
		return DifficultyOther
	}
}

// ParseDifficulty parses user input case-insensitively. An empty string means unset.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DifficultyNone, nil
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyNone, fmt.Errorf("unknown difficulty: %s (expected Easy, Medium or Hard)", s)
	}
}
