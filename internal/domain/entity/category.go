package entity

// Category представляет категорию вопросов (Science, Art, ...).
// Создаётся миграцией, через API только читается.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"type:text;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}
