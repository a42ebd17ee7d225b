package camera

import (
	"time"

	"warehouse-console/internal/warehouse/layout"
	"warehouse-console/internal/warehouse/models"
)

// ============================================================
// Selection Camera Controller
// ============================================================

// Controller владеет выбором и анимацией камеры одного вида.
// Время передается явно (now - время кадра от начала вида), поэтому
// контроллер не зависит от конкретного цикла рендера.
// Не потокобезопасен: один писатель на вид.
type Controller struct {
	scene     *layout.Scene
	selection Selection
	anim      Animation
	pose      models.CameraPose
	duration  time.Duration
}

type Option func(*Controller)

func WithDuration(d time.Duration) Option {
	return func(c *Controller) {
		c.duration = d
	}
}

// New ставит камеру сразу в общий план - единственный случай без анимации.
func New(scene *layout.Scene, opts ...Option) *Controller {
	c := &Controller{
		scene:     scene,
		selection: None(),
		duration:  DefaultDuration,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.pose = scene.Overview
	c.anim = Animation{Start: c.pose, Target: c.pose}
	return c
}

func (c *Controller) Selection() Selection {
	return c.selection
}

func (c *Controller) Scene() *layout.Scene {
	return c.scene
}

// Pose - поза, записанная последним Tick.
func (c *Controller) Pose() models.CameraPose {
	return c.pose
}

func (c *Controller) Animation() Animation {
	return c.anim
}

// Tick вызывается раз в кадр и возвращает отображаемую позу.
func (c *Controller) Tick(now time.Duration) models.CameraPose {
	c.pose = c.anim.At(now)
	return c.pose
}

func (c *Controller) Animating(now time.Duration) bool {
	return !c.anim.Done(now)
}

// ============================================================
// Selection events
// ============================================================

// SelectAisle переключает выбор прохода. Ряд, которого нет в сцене, тоже
// выбирается: камера уходит в общий план, а ближайший Rebuild сбросит выбор,
// если ряд так и не появился.
func (c *Controller) SelectAisle(row string, now time.Duration) Selection {
	c.apply(c.selection.SelectAisle(row), now)
	return c.selection
}

// SelectShelf переключает выбор стеллажа. Отсутствующий стеллаж выбирается
// так же, как отсутствующий проход в SelectAisle.
func (c *Controller) SelectShelf(row string, column int, now time.Duration) Selection {
	c.apply(c.selection.SelectShelf(row, column), now)
	return c.selection
}

// InspectBin вне выбранного стеллажа - no-op (гонка UI, а не ошибка данных).
// Ячейка должна принадлежать выбранному стеллажу.
func (c *Controller) InspectBin(code string, now time.Duration) Selection {
	key, ok := c.selection.Shelf()
	if !ok {
		return c.selection
	}
	slot, ok := c.scene.Slot(code)
	if !ok || slot.Coordinate.ShelfKey() != key {
		return c.selection
	}
	c.apply(c.selection.InspectBin(code), now)
	return c.selection
}

func (c *Controller) ClearBin(now time.Duration) Selection {
	c.apply(c.selection.ClearBin(), now)
	return c.selection
}

// Clear сбрасывает выбор из любого состояния.
func (c *Controller) Clear(now time.Duration) Selection {
	c.apply(None(), now)
	return c.selection
}

// Rebuild подменяет сцену новой. Если выбранный проход/стеллаж/ячейка
// исчез, выбор сбрасывается и камера уходит в новый общий план.
// Иначе текущая анимация продолжается как есть.
func (c *Controller) Rebuild(scene *layout.Scene, now time.Duration) Selection {
	c.scene = scene
	if !c.resolves(c.selection) {
		c.selection = None()
		c.animateTo(scene.Overview, now)
	}
	return c.selection
}

// ============================================================
// Internals
// ============================================================

// apply меняет выбор и запускает анимацию, если сменился кадрируемый объект.
// Осмотр ячейки камеру не двигает.
func (c *Controller) apply(next Selection, now time.Duration) {
	prev := c.selection
	c.selection = next

	if focusOf(prev) == focusOf(next) {
		return
	}
	c.animateTo(c.targetFor(next), now)
}

// animateTo начинает новый прогон из текущей интерполированной позы,
// а не из старой цели, чтобы смена выбора на лету не давала скачка.
func (c *Controller) animateTo(target models.CameraPose, now time.Duration) {
	c.anim = Animation{
		Start:     c.anim.At(now),
		Target:    target,
		StartedAt: now,
		Duration:  c.duration,
	}
}

func (c *Controller) targetFor(s Selection) models.CameraPose {
	switch s.Kind {
	case KindAisle:
		if aisle, ok := c.scene.Aisle(s.Row); ok {
			return layout.AislePose(aisle)
		}
	case KindShelf, KindBin:
		if shelf, ok := c.scene.Shelf(s.Row, s.Column); ok {
			return layout.FocusPose(shelf)
		}
	}
	return c.scene.Overview
}

func (c *Controller) resolves(s Selection) bool {
	switch s.Kind {
	case KindAisle:
		_, ok := c.scene.Aisle(s.Row)
		return ok
	case KindShelf:
		_, ok := c.scene.Shelf(s.Row, s.Column)
		return ok
	case KindBin:
		_, shelfOK := c.scene.Shelf(s.Row, s.Column)
		_, slotOK := c.scene.Slot(s.SlotCode)
		return shelfOK && slotOK
	}
	return true
}

// focusOf - что кадрирует камера: ячейка кадрируется как ее стеллаж.
func focusOf(s Selection) Selection {
	if s.Kind == KindBin {
		return ShelfSelection(s.Row, s.Column)
	}
	return s
}
