package model

import "time"

// CandidateStatus marks how far a candidate has progressed through the interview
type CandidateStatus string

const (
	StatusNotStarted CandidateStatus = "not-started"
	StatusInProgress CandidateStatus = "in-progress"
	StatusCompleted  CandidateStatus = "completed"
)

// Candidate is a person going through the scored interview, identified by email
type Candidate struct {
	ID        string          `json:"id" bson:"_id,omitempty"`
	Name      string          `json:"name" bson:"name"`
	Email     string          `json:"email" bson:"email" validate:"required,email"`
	Phone     string          `json:"phone" bson:"phone"`
	Status    CandidateStatus `json:"status" bson:"status" validate:"omitempty,oneof=not-started in-progress completed"`
	Score     float64         `json:"score" bson:"score" validate:"gte=0"`
	Summary   string          `json:"summary" bson:"summary"`
	Answers   []Answer        `json:"answers" bson:"answers" validate:"dive"`
	CreatedAt time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults fills the fields a freshly submitted candidate may omit
func (c *Candidate) ApplyDefaults() {
	if c.Status == "" {
		c.Status = StatusNotStarted
	}
	if c.Answers == nil {
		c.Answers = []Answer{}
	}
}

// CandidateUpdate is a partial update; nil fields are left untouched
type CandidateUpdate struct {
	Name    *string          `json:"name,omitempty" bson:"name,omitempty"`
	Email   *string          `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone   *string          `json:"phone,omitempty" bson:"phone,omitempty"`
	Status  *CandidateStatus `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=not-started in-progress completed"`
	Score   *float64         `json:"score,omitempty" bson:"score,omitempty" validate:"omitempty,gte=0"`
	Summary *string          `json:"summary,omitempty" bson:"summary,omitempty"`
	Answers *[]Answer        `json:"answers,omitempty" bson:"answers,omitempty" validate:"omitempty,dive"`
}

// IsEmpty reports whether the update sets no field at all
func (u *CandidateUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Status == nil &&
		u.Score == nil && u.Summary == nil && u.Answers == nil
}

// LeaderboardEntry is one ranked candidate score
type LeaderboardEntry struct {
	Email string  `json:"email"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}
