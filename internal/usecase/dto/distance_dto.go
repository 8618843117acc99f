package dto

// POIDistanceRequest - расстояние между двумя POI пользователя
type POIDistanceRequest struct {
	POIID1 int64 `json:"poi_id_1" validate:"required"`
	POIID2 int64 `json:"poi_id_2" validate:"required"`
}

// CoordinateDistanceRequest - расстояние между двумя парами координат.
// Координаты принимаются числом или строкой.
type CoordinateDistanceRequest struct {
	Lat1 *Coordinate `json:"lat1" validate:"required"`
	Lon1 *Coordinate `json:"lon1" validate:"required"`
	Lat2 *Coordinate `json:"lat2" validate:"required"`
	Lon2 *Coordinate `json:"lon2" validate:"required"`
}

// POISummary - краткое описание POI в ответе о расстоянии
type POISummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PointSummary - пара координат в ответе о расстоянии
type PointSummary struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// POIDistanceResponse - расстояние между двумя POI
type POIDistanceResponse struct {
	POI1     POISummary `json:"poi1"`
	POI2     POISummary `json:"poi2"`
	Distance float64    `json:"distance"`
	Unit     string     `json:"unit"`
}

// CoordinateDistanceResponse - расстояние между двумя точками
type CoordinateDistanceResponse struct {
	Point1   PointSummary `json:"point1"`
	Point2   PointSummary `json:"point2"`
	Distance float64      `json:"distance"`
	Unit     string       `json:"unit"`
}
