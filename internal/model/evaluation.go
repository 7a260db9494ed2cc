package model

// EvaluationResult is the score and feedback for a single answer
type EvaluationResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// DuplicateGroup records what reconciliation did with one identity key
type DuplicateGroup struct {
	Key     string   `json:"key"`
	Kept    string   `json:"kept"`
	Removed []string `json:"removed"`
}

// ReconcileResult is the outcome of collapsing duplicate candidates
type ReconcileResult struct {
	Removed   int              `json:"removed"`
	Groups    []DuplicateGroup `json:"groups"`
	Survivors []string         `json:"survivors"`
}
