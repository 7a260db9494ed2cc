package model

// Answer is one scored response inside a candidate record.
// Answers are appended during the interview and never edited afterwards.
type Answer struct {
	Question string  `json:"question" bson:"question" validate:"required"`
	Answer   string  `json:"answer" bson:"answer"`
	Score    float64 `json:"score" bson:"score" validate:"gte=0,lte=10"`
	Feedback string  `json:"feedback" bson:"feedback"`
}
