package model

// Difficulty of a generated interview question
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Canonical answer time per difficulty, in seconds
const (
	EasyTimeSec   = 20
	MediumTimeSec = 60
	HardTimeSec   = 120
)

// Question is a generated interview question. It only lives for one interview session.
type Question struct {
	Q          string     `json:"q" yaml:"q"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	Time       int        `json:"time" yaml:"time"` // seconds
}
