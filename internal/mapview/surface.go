package mapview

import (
	"math"
	"sync"

	"github.com/samber/lo"

	"github.com/shenikar/wildfire_console/internal/models"
)

const (
	MinZoom  = 0.0
	MaxZoom  = 20.0
	maxLat   = 85.0511
	tileSize = 256.0
)

// HeadlessSurface - поверхность карты без отрисовки. Как и настоящий виджет, она кеширует
// свой пиксельный размер и пересчитывает его только в InvalidateSize, сохраняя левый верхний
// угол на месте, из-за чего центр камеры смещается.
type HeadlessSurface struct {
	mu     sync.Mutex
	center models.LatLng
	zoom   float64
	width  int
	height int
	size   func() (int, int)
}

func NewHeadlessSurface(center models.LatLng, zoom float64, size func() (int, int)) *HeadlessSurface {
	w, h := size()
	return &HeadlessSurface{
		center: clampCenter(center),
		zoom:   lo.Clamp(zoom, MinZoom, MaxZoom),
		width:  w,
		height: h,
		size:   size,
	}
}

func (s *HeadlessSurface) Center() models.LatLng {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.center
}

func (s *HeadlessSurface) Zoom() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

// Size - закешированный размер в пикселях
func (s *HeadlessSurface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *HeadlessSurface) InvalidateSize() {
	w, h := s.size()

	s.mu.Lock()
	defer s.mu.Unlock()

	deg := degreesPerPixel(s.zoom)
	dx := float64(w-s.width) / 2
	dy := float64(h-s.height) / 2
	s.center = clampCenter(models.LatLng{
		Lat: s.center.Lat - dy*deg,
		Lng: s.center.Lng + dx*deg,
	})
	s.width, s.height = w, h
}

func (s *HeadlessSurface) SetView(center models.LatLng, zoom float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.center = clampCenter(center)
	s.zoom = lo.Clamp(zoom, MinZoom, MaxZoom)
}

func degreesPerPixel(zoom float64) float64 {
	return 360 / (tileSize * math.Pow(2, zoom))
}

func clampCenter(c models.LatLng) models.LatLng {
	return models.LatLng{
		Lat: lo.Clamp(c.Lat, -maxLat, maxLat),
		Lng: lo.Clamp(c.Lng, -180, 180),
	}
}
