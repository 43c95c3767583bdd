package qa

import "time"

const (
	DefaultQuestionAuthor = "Anonymous"
	DefaultAnswerAuthor   = "Community Member"
)

// Question is a community question about renting in a city.
type Question struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"not null"`
	UserName  string    `json:"user_name" gorm:"not null;default:'Anonymous'"`
	Upvotes   int       `json:"upvotes" gorm:"not null;default:0"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime"`
}

func (Question) TableName() string { return "questions" }

// Answer belongs to exactly one question.
type Answer struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	QuestionID int64     `json:"question_id" gorm:"not null;index"`
	Text       string    `json:"text" gorm:"not null"`
	UserName   string    `json:"user_name" gorm:"not null;default:'Community Member'"`
	IsVerified bool      `json:"is_verified" gorm:"not null;default:false"`
	Timestamp  time.Time `json:"timestamp" gorm:"autoCreateTime"`

	Question *Question `json:"-" gorm:"foreignKey:QuestionID"`
}

func (Answer) TableName() string { return "answers" }
