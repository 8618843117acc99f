package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Coordinate - широта/долгота на проводе. Клиенты исторически шлют
// координаты и числом, и строкой ("41.3851"), поэтому тип принимает оба
// варианта.
type Coordinate float64

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q", raw)
		}
		*c = Coordinate(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Coordinate(v)
	return nil
}

func (c Coordinate) Float64() float64 {
	return float64(c)
}

// FlexBool - правдивостная (truthy) интерпретация is_visited: false, 0,
// "" и null дают false, любое другое скалярное значение - true. Сохраняет
// поведение клиентов, которые шлют 0/1 или строки вместо bool.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))

	switch s {
	case "null", "false", "0", `""`, `"0"`, `"false"`:
		*b = false
		return nil
	case "true":
		*b = true
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case bool:
		*b = FlexBool(val)
	case float64:
		*b = val != 0
	case string:
		*b = val != ""
	default:
		// объекты и массивы правдивы в исходной семантике
		*b = true
	}
	return nil
}

func (b FlexBool) Bool() bool {
	return bool(b)
}
