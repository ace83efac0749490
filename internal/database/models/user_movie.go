package models

// UserMovie links a user to a movie in their favorites list. The composite
// primary key makes duplicate pairs impossible at the storage layer; the row
// carries no attributes of its own.
type UserMovie struct {
	UserID  uint `json:"user_id" gorm:"column:user_id;primaryKey"`
	MovieID uint `json:"movie_id" gorm:"column:movie_id;primaryKey"`

	// Relationships
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Movie Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserMovie
func (UserMovie) TableName() string {
	return "user_movies"
}
