package dto

// CreatePOIRequest - запрос на создание POI
type CreatePOIRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	Latitude    *Coordinate `json:"latitude" validate:"required"`
	Longitude   *Coordinate `json:"longitude" validate:"required"`
	Category    string      `json:"category"`
	IsVisited   FlexBool    `json:"is_visited"`
	ClientID    *string     `json:"client_id,omitempty"`
}

// UpdatePOIRequest - частичное обновление POI: применяются только
// присутствующие поля
type UpdatePOIRequest struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	Latitude    *Coordinate `json:"latitude,omitempty"`
	Longitude   *Coordinate `json:"longitude,omitempty"`
	Category    *string     `json:"category,omitempty"`
	IsVisited   *FlexBool   `json:"is_visited,omitempty"`
}

// NearbyRequest - поиск POI в радиусе от точки
type NearbyRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
}

// ListPOIRequest - фильтры списка POI
type ListPOIRequest struct {
	Categories []string `json:"categories,omitempty"`
}
