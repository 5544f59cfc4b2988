package entity

import "math"

// MaxID - наибольший ID в колонках SERIAL/INTEGER (int4)
const MaxID = math.MaxInt32

// Question представляет вопрос викторины.
// Category хранит ID категории (внешний ключ на categories.id), а не саму категорию.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   uint   `gorm:"column:category;not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// QuestionWithCategory - строка результата JOIN questions + categories.
// Числовой ID категории остаётся в Question.Category, название - в CategoryType.
type QuestionWithCategory struct {
	Question
	CategoryType string `gorm:"column:category_type" json:"category_type"`
}
