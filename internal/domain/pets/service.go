package pets

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicateName = errors.New("duplicate pet name")
	ErrNotFound      = errors.New("pet not found")
)

// Service es el dueño del listado: toda mutación pasa por acá.
// Ante cualquier error el listado queda igual.
type Service struct {
	repo Repository
	now  func() time.Time

	// serializa check + write (p.ej. duplicado en Add)
	mu sync.Mutex
	// se toma antes de soltar mu: los observers reciben los cambios en
	// el mismo orden en que se aplicaron
	notifyMu sync.Mutex

	subsMu sync.RWMutex
	subs   map[int]func(Change)
	nextID int
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		subs: make(map[int]func(Change)),
	}
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return Pet{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

// Add agrega la mascota al final salvo que ya exista otra con el mismo
// nombre (case-insensitive). Si no trae ID se genera uno.
func (s *Service) Add(ctx context.Context, p Pet) (Pet, error) {
	if strings.TrimSpace(p.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	s.mu.Lock()

	items, err := s.repo.List(ctx)
	if err != nil {
		s.mu.Unlock()
		return Pet{}, err
	}
	if nameTaken(items, p.Name) {
		s.mu.Unlock()
		return Pet{}, ErrDuplicateName
	}

	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Insert(ctx, p); err != nil {
		s.mu.Unlock()
		return Pet{}, err
	}
	s.publish(Change{Op: OpAdded, Pet: p, Count: len(items) + 1})
	return p, nil
}

// Update reemplaza completa la entrada con el mismo ID, sin moverla.
// No vuelve a chequear unicidad del nombre.
func (s *Service) Update(ctx context.Context, p Pet) (Pet, error) {
	if strings.TrimSpace(p.ID) == "" {
		return Pet{}, ErrNotFound
	}
	if strings.TrimSpace(p.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	s.mu.Lock()

	items, err := s.repo.List(ctx)
	if err != nil {
		s.mu.Unlock()
		return Pet{}, err
	}
	idx := indexOf(items, p.ID)
	if idx < 0 {
		s.mu.Unlock()
		return Pet{}, ErrNotFound
	}

	p.CreatedAt = items[idx].CreatedAt
	p.UpdatedAt = s.now()

	if err := s.repo.Replace(ctx, p); err != nil {
		s.mu.Unlock()
		return Pet{}, err
	}
	s.publish(Change{Op: OpUpdated, Pet: p, Count: len(items)})
	return p, nil
}

// Delete quita la entrada con ese id. Repetirlo no cambia nada (ErrNotFound).
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}

	s.mu.Lock()

	items, err := s.repo.List(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	idx := indexOf(items, id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	removed := items[idx]

	if err := s.repo.Delete(ctx, id); err != nil {
		s.mu.Unlock()
		return err
	}
	s.publish(Change{Op: OpDeleted, Pet: removed, Count: len(items) - 1})
	return nil
}

// Search devuelve las mascotas cuyo nombre contiene keyword.
// Con keyword vacío devuelve ok=false: "no se pidió filtrar", que no es
// lo mismo que un resultado vacío.
func (s *Service) Search(ctx context.Context, keyword string) ([]Pet, bool, error) {
	if keyword == "" {
		return nil, false, nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, false, err
	}

	out := make([]Pet, 0)
	for _, p := range items {
		if containsFold(p.Name, keyword) {
			out = append(out, p)
		}
	}
	return out, true, nil
}

// Filter aplica los tres predicados de la pantalla sobre el listado actual.
func (s *Service) Filter(ctx context.Context, c Criteria) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if c.IsZero() {
		return items, nil
	}
	return Apply(items, c), nil
}

// Subscribe registra fn para cada mutación exitosa. Devuelve la función
// para darse de baja. fn puede leer del servicio pero no mutarlo.
func (s *Service) Subscribe(fn func(Change)) func() {
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

// publish se llama con mu tomado y lo libera. Los observers corren fuera
// de mu pero dentro de notifyMu.
func (s *Service) publish(c Change) {
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	s.notify(c)
}

func (s *Service) notify(c Change) {
	s.subsMu.RLock()
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
}

func nameTaken(items []Pet, name string) bool {
	name = strings.ToLower(name)
	for _, p := range items {
		if strings.ToLower(p.Name) == name {
			return true
		}
	}
	return false
}

func indexOf(items []Pet, id string) int {
	for i, p := range items {
		if p.ID == id {
			return i
		}
	}
	return -1
}
