package service

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"warehouse-console/internal/warehouse/camera"
	"warehouse-console/internal/warehouse/models"
)

// ============================================================
// View Sessions
// ============================================================

var ErrViewNotFound = errors.New("view not found")

// View - один экземпляр 3D-вида со своим контроллером.
// Часы вида отсчитываются от момента создания.
type View struct {
	ID        string
	Warehouse string
	Config    models.LayoutConfig

	mu         sync.Mutex
	controller *camera.Controller
	createdAt  time.Time
	lastSeen   time.Time
	now        func() time.Time
}

// Frame - то, что рендер читает раз в кадр.
type Frame struct {
	View      string            `json:"view"`
	Warehouse string            `json:"warehouse"`
	Selection camera.Selection  `json:"selection"`
	Pose      models.CameraPose `json:"pose"`
	Animating bool              `json:"animating"`
	ElapsedMS int64             `json:"elapsed_ms"`
}

func (v *View) elapsed() time.Duration {
	return v.now().Sub(v.createdAt)
}

// Do выполняет событие клиента над контроллером под замком вида и возвращает свежий кадр.
func (v *View) Do(fn func(c *camera.Controller, now time.Duration)) Frame {
	return v.run(fn, true)
}

// run: touch отмечает обращение клиента; серверные пересборки вид не продлевают.
func (v *View) run(fn func(c *camera.Controller, now time.Duration), touch bool) Frame {
	v.mu.Lock()
	defer v.mu.Unlock()

	if touch {
		v.lastSeen = v.now()
	}
	now := v.elapsed()
	if fn != nil {
		fn(v.controller, now)
	}
	return v.frame(now)
}

// Frame продвигает анимацию до текущего момента.
func (v *View) Frame() Frame {
	return v.Do(nil)
}

// Refresh подменяет модель вида новой, сохраняя выбор, если он еще валиден.
func (v *View) Refresh(model *Model) Frame {
	return v.run(func(c *camera.Controller, now time.Duration) {
		c.Rebuild(model.Scene, now)
	}, false)
}

func (v *View) idleSince(t time.Time) time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return t.Sub(v.lastSeen)
}

func (v *View) frame(now time.Duration) Frame {
	pose := v.controller.Tick(now)
	return Frame{
		View:      v.ID,
		Warehouse: v.Warehouse,
		Selection: v.controller.Selection(),
		Pose:      pose,
		Animating: v.controller.Animating(now),
		ElapsedMS: now.Milliseconds(),
	}
}

// DefaultIdleTTL - сколько живет вид без обращений.
const DefaultIdleTTL = 30 * time.Minute

// Sessions - реестр видов. Каждый вид владеет собственным контроллером.
// Виды, к которым не обращались дольше idleTTL, удаляются при создании нового.
type Sessions struct {
	mu       sync.Mutex
	views    map[string]*View
	duration time.Duration
	idleTTL  time.Duration
	now      func() time.Time
}

type SessionOption func(*Sessions)

func WithAnimationDuration(d time.Duration) SessionOption {
	return func(s *Sessions) {
		s.duration = d
	}
}

// WithIdleTTL задает время жизни вида без обращений; 0 отключает вытеснение.
func WithIdleTTL(d time.Duration) SessionOption {
	return func(s *Sessions) {
		s.idleTTL = d
	}
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *Sessions) {
		s.now = now
	}
}

func NewSessions(opts ...SessionOption) *Sessions {
	s := &Sessions{
		views:    make(map[string]*View),
		duration: camera.DefaultDuration,
		idleTTL:  DefaultIdleTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sessions) Create(model *Model) *View {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	s.evictIdle(createdAt)

	view := &View{
		ID:         uuid.NewString(),
		Warehouse:  model.Warehouse,
		Config:     model.Scene.Config,
		controller: camera.New(model.Scene, camera.WithDuration(s.duration)),
		createdAt:  createdAt,
		lastSeen:   createdAt,
		now:        s.now,
	}
	s.views[view.ID] = view
	return view
}

func (s *Sessions) Get(id string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := s.views[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	return view, nil
}

func (s *Sessions) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.views[id]; !ok {
		return ErrViewNotFound
	}
	delete(s.views, id)
	return nil
}

// Len - число открытых видов.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// ForWarehouse возвращает виды, открытые на склад (для обновления после загрузки остатков).
func (s *Sessions) ForWarehouse(warehouseID string) []*View {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*View
	for _, v := range s.views {
		if v.Warehouse == warehouseID {
			out = append(out, v)
		}
	}
	return out
}

// evictIdle вызывается под s.mu.
func (s *Sessions) evictIdle(now time.Time) {
	if s.idleTTL <= 0 {
		return
	}
	for id, v := range s.views {
		if v.idleSince(now) > s.idleTTL {
			delete(s.views, id)
			log.Printf("[VIEW] evicted idle view %s (%s)", id, v.Warehouse)
		}
	}
}
