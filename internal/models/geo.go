package models

// LatLng - точка в географических координатах (WGS84, градусы)
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Polygon - замкнутый контур; последняя точка не дублирует первую
type Polygon []LatLng

// Clone возвращает независимую копию контура
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Bounds - прямоугольник охвата региона
type Bounds struct {
	MinLat float64 `json:"min_lat" yaml:"min_lat"`
	MinLng float64 `json:"min_lng" yaml:"min_lng"`
	MaxLat float64 `json:"max_lat" yaml:"max_lat"`
	MaxLng float64 `json:"max_lng" yaml:"max_lng"`
}

// Center возвращает середину прямоугольника
func (b Bounds) Center() LatLng {
	return LatLng{Lat: (b.MinLat + b.MaxLat) / 2, Lng: (b.MinLng + b.MaxLng) / 2}
}

func (b Bounds) Empty() bool {
	return b.MaxLat <= b.MinLat || b.MaxLng <= b.MinLng
}
