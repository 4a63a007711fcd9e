package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/mapview"
	"github.com/shenikar/wildfire_console/internal/models"
)

var errNoMapView = errors.New("map view is not configured")

func (s *consoleService) MapSnapshot(ctx context.Context) (mapview.Snapshot, error) {
	if s.view == nil {
		return mapview.Snapshot{}, fmt.Errorf("service: %w", errNoMapView)
	}
	return s.view.Snapshot(), nil
}

func (s *consoleService) SetCamera(ctx context.Context, center models.LatLng, zoom float64) (mapview.Snapshot, error) {
	if s.view == nil {
		return mapview.Snapshot{}, fmt.Errorf("service: %w", errNoMapView)
	}
	s.entry("SetCamera", logrus.Fields{"lat": center.Lat, "lng": center.Lng, "zoom": zoom}).Debug("Moving camera")
	return s.view.SetCamera(center, zoom), nil
}

// SetPanelOpen открывает или закрывает панель деталей рядом с картой
func (s *consoleService) SetPanelOpen(ctx context.Context, open bool) (mapview.Snapshot, error) {
	if s.view == nil {
		return mapview.Snapshot{}, fmt.Errorf("service: %w", errNoMapView)
	}
	s.entry("SetPanelOpen", logrus.Fields{"open": open}).Debug("Toggling details panel")
	return s.view.SetPanelOpen(open), nil
}

func (s *consoleService) ResizeWindow(ctx context.Context, width, height int) (mapview.Snapshot, error) {
	if s.view == nil {
		return mapview.Snapshot{}, fmt.Errorf("service: %w", errNoMapView)
	}
	if width <= 0 || height <= 0 {
		return mapview.Snapshot{}, fmt.Errorf("service: window size %dx%d: %w", width, height, ErrInvalidInput)
	}
	s.entry("ResizeWindow", logrus.Fields{"width": width, "height": height}).Debug("Resizing window")
	return s.view.ResizeWindow(width, height), nil
}

func (s *consoleService) RotateOrientation(ctx context.Context) (mapview.Snapshot, error) {
	if s.view == nil {
		return mapview.Snapshot{}, fmt.Errorf("service: %w", errNoMapView)
	}
	s.entry("RotateOrientation", nil).Debug("Rotating screen")
	return s.view.RotateOrientation(), nil
}
