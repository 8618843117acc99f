package domain

import "time"

// POI представляет точку интереса пользователя
type POI struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Category    string    `json:"category" db:"category"`
	IsVisited   bool      `json:"is_visited" db:"is_visited"`
	ClientID    *string   `json:"client_id,omitempty" db:"client_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Distance заполняется только при поиске в радиусе, не хранится в БД
	Distance *float64 `json:"distance,omitempty" db:"-"`
}

// DefaultCategory используется, когда клиент не передал категорию
const DefaultCategory = "other"

// POICreate - данные для создания POI
type POICreate struct {
	UserID      int64
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
	Category    string
	IsVisited   bool
	ClientID    *string
}

// POIPatch - частичное обновление POI. Поле применяется только если
// указатель не nil, поэтому "очистить поле" и "не трогать поле"
// не конфликтуют.
type POIPatch struct {
	Name        *string
	Description *string
	Latitude    *float64
	Longitude   *float64
	Category    *string
	IsVisited   *bool
	ClientID    *string
}

// IsEmpty сообщает, что ни одно поле не задано. Пустой patch всё равно
// обновляет updated_at.
func (p POIPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Latitude == nil &&
		p.Longitude == nil && p.Category == nil && p.IsVisited == nil &&
		p.ClientID == nil
}
