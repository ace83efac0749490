package models

// User represents an application user who keeps a personal list of favorite movies
type User struct {
	ID   uint   `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Name string `json:"user_name" gorm:"column:user_name;size:100;not null" validate:"required,min=1,max=100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
