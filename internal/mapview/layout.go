package mapview

// Layout - геометрия страницы консоли: окно и боковая панель деталей справа от карты
type Layout struct {
	WindowWidth  int  `json:"window_width"`
	WindowHeight int  `json:"window_height"`
	PanelWidth   int  `json:"panel_width"`
	PanelOpen    bool `json:"panel_open"`
}

// ContainerSize возвращает размер контейнера карты
func (l Layout) ContainerSize() (int, int) {
	w := l.WindowWidth
	if l.PanelOpen {
		w -= l.PanelWidth
	}
	return max(w, 0), max(l.WindowHeight, 0)
}
