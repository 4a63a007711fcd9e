// Package viewport синхронизирует пиксельный размер поверхности карты с размером контейнера.
//
// Поверхность кеширует свои размеры и сама не замечает изменения контейнера, поэтому
// координатор принудительно пересчитывает их после открытия панели, изменения размера
// контейнера или окна и поворота экрана. Центр и масштаб камеры при этом сохраняются.
package viewport

import (
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/models"
)

// Surface - поверхность отрисовки карты
type Surface interface {
	Center() models.LatLng
	Zoom() float64
	// InvalidateSize заставляет поверхность заново измерить контейнер
	InvalidateSize()
	// SetView выставляет камеру без анимации
	SetView(center models.LatLng, zoom float64)
}

type Options struct {
	PanelTransition  time.Duration
	TransitionSlack  time.Duration
	ResizeDebounce   time.Duration
	WindowDebounce   time.Duration
	OrientationDelay time.Duration
	Epsilon          float64
	// PanelOpen - начальное состояние боковой панели
	PanelOpen bool
}

func DefaultOptions() Options {
	return Options{
		PanelTransition:  300 * time.Millisecond,
		TransitionSlack:  50 * time.Millisecond,
		ResizeDebounce:   50 * time.Millisecond,
		WindowDebounce:   150 * time.Millisecond,
		OrientationDelay: 300 * time.Millisecond,
		Epsilon:          1e-6,
	}
}

type camera struct {
	center models.LatLng
	zoom   float64
}

// slot хранит не более одного ожидающего таймера; новый таймер заменяет старый
type slot struct {
	timer Timer
	gen   uint64
}

// cancel останавливает таймер слота и делает устаревшим уже запущенный колбэк
func (s *slot) cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

type Coordinator struct {
	mu      sync.Mutex
	surface Surface
	sched   Scheduler
	opts    Options
	logger  *logrus.Logger

	panelOpen bool
	stopped   bool
	relayouts int
	restores  int

	// камера, захваченная до первого из серии пересчетов, которые еще не восстановлены
	captured camera

	panelFrame  slot
	transition  slot
	observer    slot
	window      slot
	orientation slot
	restore     slot
}

// NewCoordinator создает координатор. nil-поверхность превращает все операции в no-op,
// nil-планировщик заменяется на RealScheduler.
func NewCoordinator(surface Surface, sched Scheduler, opts Options, logger *logrus.Logger) *Coordinator {
	if sched == nil {
		sched = RealScheduler{}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Coordinator{
		surface:   surface,
		sched:     sched,
		opts:      opts,
		logger:    logger,
		panelOpen: opts.PanelOpen,
	}
}

// SetPanelOpen реагирует только на смену состояния: пересчет на следующем кадре
// и еще один после окончания анимации панели.
func (c *Coordinator) SetPanelOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.activeLocked() || open == c.panelOpen {
		return
	}
	c.panelOpen = open
	c.logger.WithFields(logrus.Fields{"component": "viewport", "panel_open": open}).Debug("panel state changed")

	c.scheduleLocked(&c.panelFrame, c.sched.NextFrame, c.relayoutLocked)
	settle := c.opts.PanelTransition + c.opts.TransitionSlack
	c.scheduleLocked(&c.transition, afterFunc(c.sched, settle), c.relayoutLocked)
}

func (c *Coordinator) PanelOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panelOpen
}

// ContainerResized вызывается на каждое уведомление наблюдателя размеров; пачка
// уведомлений схлопывается в один пересчет.
func (c *Coordinator) ContainerResized() {
	c.debounce(&c.observer, c.opts.ResizeDebounce)
}

func (c *Coordinator) WindowResized() {
	c.debounce(&c.window, c.opts.WindowDebounce)
}

func (c *Coordinator) OrientationChanged() {
	c.debounce(&c.orientation, c.opts.OrientationDelay)
}

// Relayout немедленно пересчитывает размер поверхности
func (c *Coordinator) Relayout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.activeLocked() {
		return
	}
	c.relayoutLocked()
}

// Stop отменяет все ожидающие таймеры; после него координатор ничего не делает
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	for _, s := range []*slot{&c.panelFrame, &c.transition, &c.observer, &c.window, &c.orientation, &c.restore} {
		s.cancel()
	}
}

// MoveCamera переносит камеру по команде пользователя. Ожидающее восстановление
// отменяется, и следующий пересчет захватывает уже новую камеру.
func (c *Coordinator) MoveCamera(center models.LatLng, zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.surface == nil {
		return
	}
	if c.restore.timer != nil {
		c.logger.WithField("component", "viewport").Debug("pending restore dropped by camera move")
	}
	c.restore.cancel()
	c.surface.SetView(center, zoom)
}

// Relayouts - число выполненных пересчетов
func (c *Coordinator) Relayouts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.relayouts
}

// Restores - сколько раз камера возвращалась на место после пересчета
func (c *Coordinator) Restores() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.restores
}

func (c *Coordinator) debounce(s *slot, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.activeLocked() {
		return
	}
	c.scheduleLocked(s, afterFunc(c.sched, d), c.relayoutLocked)
}

func (c *Coordinator) activeLocked() bool {
	return c.surface != nil && !c.stopped
}

// scheduleLocked ставит fn в слот, отменяя предыдущий таймер. Колбэк устаревшего
// таймера, который не успели отменить, распознается по поколению слота.
func (c *Coordinator) scheduleLocked(s *slot, schedule func(func()) Timer, fn func()) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = schedule(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.stopped || s.gen != gen {
			return
		}
		s.timer = nil
		fn()
	})
}

func (c *Coordinator) relayoutLocked() {
	if c.restore.timer == nil {
		c.captured = camera{center: c.surface.Center(), zoom: c.surface.Zoom()}
	}
	c.surface.InvalidateSize()
	c.relayouts++
	c.scheduleLocked(&c.restore, c.sched.NextFrame, c.restoreLocked)
}

func (c *Coordinator) restoreLocked() {
	center, zoom := c.surface.Center(), c.surface.Zoom()
	if !c.drifted(center, zoom) {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"component": "viewport",
		"lat":       c.captured.center.Lat,
		"lng":       c.captured.center.Lng,
		"zoom":      c.captured.zoom,
	}).Debug("restoring camera after relayout")
	c.surface.SetView(c.captured.center, c.captured.zoom)
	c.restores++
}

func (c *Coordinator) drifted(center models.LatLng, zoom float64) bool {
	eps := c.opts.Epsilon
	return math.Abs(center.Lat-c.captured.center.Lat) > eps ||
		math.Abs(center.Lng-c.captured.center.Lng) > eps ||
		math.Abs(zoom-c.captured.zoom) > eps
}

func afterFunc(s Scheduler, d time.Duration) func(func()) Timer {
	return func(fn func()) Timer {
		return s.AfterFunc(d, fn)
	}
}
