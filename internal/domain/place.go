package domain

import "time"

// Coordinates - географические координаты, полученные геокодированием адреса
type Coordinates struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Place - место, созданное пользователем. Location вычисляется из Address
// при создании и после этого не редактируется.
type Place struct {
	ID          string      `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Address     string      `json:"address" db:"address"`
	Location    Coordinates `json:"location"`
	Image       string      `json:"image" db:"image"`
	Creator     string      `json:"creator" db:"creator"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// User - владелец мест. Places содержит id всех мест пользователя.
type User struct {
	ID     string   `json:"id" db:"id"`
	Name   string   `json:"name" db:"name"`
	Email  string   `json:"email" db:"email"`
	Places []string `json:"places"`
}

// HasPlace проверяет, что placeID есть в списке мест пользователя
func (u *User) HasPlace(placeID string) bool {
	for _, id := range u.Places {
		if id == placeID {
			return true
		}
	}
	return false
}
