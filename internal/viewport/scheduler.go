package viewport

import "time"

// FrameInterval - длительность одного кадра отрисовки (~60 Гц)
const FrameInterval = 16 * time.Millisecond

// Timer - отложенный вызов, который можно отменить
type Timer interface {
	Stop() bool
}

// Scheduler откладывает вызовы до следующего кадра или на заданное время.
// Колбэки могут выполняться в отдельной горутине.
type Scheduler interface {
	NextFrame(fn func()) Timer
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealScheduler работает поверх time.AfterFunc
type RealScheduler struct{}

func (RealScheduler) NextFrame(fn func()) Timer {
	return time.AfterFunc(FrameInterval, fn)
}

func (RealScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
