// Package mapview связывает раскладку страницы, поверхность карты и координатор вьюпорта
package mapview

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/models"
	"github.com/shenikar/wildfire_console/internal/viewport"
)

type Snapshot struct {
	Center          models.LatLng `json:"center"`
	Zoom            float64       `json:"zoom"`
	SurfaceWidth    int           `json:"surface_width"`
	SurfaceHeight   int           `json:"surface_height"`
	ContainerWidth  int           `json:"container_width"`
	ContainerHeight int           `json:"container_height"`
	Layout          Layout        `json:"layout"`
	Relayouts       int           `json:"relayouts"`
}

type View struct {
	// ops упорядочивает изменения раскладки вместе с уведомлением координатора.
	// mu охраняет только layout: его берет поверхность из-под блокировки координатора.
	ops     sync.Mutex
	mu      sync.Mutex
	layout  Layout
	surface *HeadlessSurface
	coord   *viewport.Coordinator
}

func NewView(layout Layout, center models.LatLng, zoom float64, sched viewport.Scheduler, opts viewport.Options, logger *logrus.Logger) *View {
	v := &View{layout: layout}
	v.surface = NewHeadlessSurface(center, zoom, v.containerSize)
	opts.PanelOpen = layout.PanelOpen
	v.coord = viewport.NewCoordinator(v.surface, sched, opts, logger)
	return v
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	layout := v.layout
	v.mu.Unlock()

	cw, ch := layout.ContainerSize()
	sw, sh := v.surface.Size()
	return Snapshot{
		Center:          v.surface.Center(),
		Zoom:            v.surface.Zoom(),
		SurfaceWidth:    sw,
		SurfaceHeight:   sh,
		ContainerWidth:  cw,
		ContainerHeight: ch,
		Layout:          layout,
		Relayouts:       v.coord.Relayouts(),
	}
}

// SetCamera перемещает камеру; значения вне допустимых диапазонов ограничиваются
func (v *View) SetCamera(center models.LatLng, zoom float64) Snapshot {
	v.ops.Lock()
	defer v.ops.Unlock()

	v.coord.MoveCamera(center, zoom)
	return v.Snapshot()
}

// SetPanelOpen меняет ширину контейнера, поэтому срабатывает и наблюдатель размеров
func (v *View) SetPanelOpen(open bool) Snapshot {
	v.ops.Lock()
	defer v.ops.Unlock()

	if v.update(func(l *Layout) { l.PanelOpen = open }) {
		v.coord.ContainerResized()
	}
	v.coord.SetPanelOpen(open)
	return v.Snapshot()
}

func (v *View) ResizeWindow(width, height int) Snapshot {
	v.ops.Lock()
	defer v.ops.Unlock()

	if v.update(func(l *Layout) { l.WindowWidth, l.WindowHeight = width, height }) {
		v.coord.WindowResized()
		v.coord.ContainerResized()
	}
	return v.Snapshot()
}

// RotateOrientation меняет местами ширину и высоту окна
func (v *View) RotateOrientation() Snapshot {
	v.ops.Lock()
	defer v.ops.Unlock()

	if v.update(func(l *Layout) { l.WindowWidth, l.WindowHeight = l.WindowHeight, l.WindowWidth }) {
		v.coord.ContainerResized()
	}
	v.coord.OrientationChanged()
	return v.Snapshot()
}

func (v *View) Stop() {
	v.coord.Stop()
}

// update применяет fn к раскладке и сообщает, изменился ли размер контейнера
func (v *View) update(fn func(l *Layout)) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	w, h := v.layout.ContainerSize()
	fn(&v.layout)
	nw, nh := v.layout.ContainerSize()
	return w != nw || h != nh
}

func (v *View) containerSize() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.layout.ContainerSize()
}
