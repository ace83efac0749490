package models

// Movie is a shared catalog entry. It exists independently of any one user's
// list; editing its fields is visible to every user who has it attached.
type Movie struct {
	ID          uint     `json:"movie_id" gorm:"column:movie_id;primaryKey;autoIncrement"`
	Title       string   `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Director    string   `json:"director" gorm:"size:150" validate:"max=150"`
	ReleaseYear *int     `json:"release_year,omitempty"`
	Rating      *float64 `json:"rating,omitempty"` // 0-10 scale from the lookup service
}

// TableName returns the table name for Movie
func (Movie) TableName() string {
	return "movies"
}
