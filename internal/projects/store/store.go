package store

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

// Operation names a mutating store action
type Operation string

const (
	OpAdd     Operation = "add"
	OpUpdate  Operation = "update"
	OpRemove  Operation = "remove"
	OpClear   Operation = "clear"
	OpAddMany Operation = "add_many"
	OpImport  Operation = "import"
)

// Hook observes the collection after every successful mutation.
// Hooks run synchronously while the store's write lock is held, so they
// must not call back into the store.
type Hook interface {
	AfterMutation(op Operation, snapshot []domain.Project)
}

// HookFunc adapts a function to Hook
type HookFunc func(op Operation, snapshot []domain.Project)

func (f HookFunc) AfterMutation(op Operation, snapshot []domain.Project) {
	f(op, snapshot)
}

type Option func(*Store)

// WithHooks registers mutation hooks, invoked in the given order.
func WithHooks(hooks ...Hook) Option {
	return func(s *Store) {
		s.hooks = append(s.hooks, hooks...)
	}
}

// WithClock replaces time.Now as the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store owns the ordered project collection and its id counter
type Store struct {
	mu       sync.RWMutex
	projects []domain.Project
	nextID   int
	hooks    []Hook
	now      func() time.Time
}

// New creates an empty store whose first id is 1
func New(opts ...Option) *Store {
	s := &Store{
		projects: []domain.Project{},
		nextID:   1,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a project from input and appends it to the collection
func (s *Store) Add(in domain.ProjectInput) *domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.build(in, s.now())
	s.projects = append(s.projects, p)
	s.notify(OpAdd)

	return &p
}

// AddMany adds every input in order. The batch is appended as a whole.
func (s *Store) AddMany(inputs []domain.ProjectInput) []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	batch := make([]domain.Project, 0, len(inputs))
	for _, in := range inputs {
		batch = append(batch, s.build(in, now))
	}
	s.projects = append(s.projects, batch...)
	s.notify(OpAddMany)

	return batch
}

// FindByID returns a copy of the first project with the given id
func (s *Store) FindByID(id int) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrProjectNotFound
	}
	p := s.projects[i]
	return &p, nil
}

// FindByTech returns projects whose tech contains text, ignoring case
func (s *Store) FindByTech(text string) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(text)
	out := []domain.Project{}
	for _, p := range s.projects {
		if strings.Contains(strings.ToLower(p.Tech), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Update merges patch into the project with the given id
func (s *Store) Update(id int, patch domain.ProjectPatch) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrProjectNotFound
	}

	s.projects[i].Apply(patch, s.now())
	p := s.projects[i]
	s.notify(OpUpdate)

	return &p, nil
}

// Remove deletes the project with the given id and returns it
func (s *Store) Remove(id int) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrProjectNotFound
	}

	removed := s.projects[i]
	s.projects = append(s.projects[:i], s.projects[i+1:]...)
	s.notify(OpRemove)

	return &removed, nil
}

// Clear empties the collection. Issued ids are not reused afterwards.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = []domain.Project{}
	s.notify(OpClear)
}

// Export renders the collection as an indented JSON list
func (s *Store) Export() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.projects, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Import replaces the collection with the projects listed in text.
// Every entry gets a fresh id and updatedAt; on error nothing changes.
func (s *Store) Import(text string) error {
	entries, err := decodeImport([]byte(text))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	imported := make([]domain.Project, 0, len(entries))
	for _, p := range entries {
		p.ID = s.nextID
		s.nextID++
		p.UpdatedAt = now
		if p.CreatedAt.IsZero() || p.CreatedAt.After(now) {
			p.CreatedAt = now
		}
		imported = append(imported, p)
	}
	s.projects = imported
	s.notify(OpImport)

	return nil
}

// Restore replaces the collection without notifying hooks and moves the
// id counter past every restored id.
func (s *Store) Restore(projects []domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = append([]domain.Project{}, projects...)
	for _, p := range s.projects {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
}

// List returns the collection in order
func (s *Store) List() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.projects)
}

func (s *Store) HasAny() bool {
	return s.Count() > 0
}

// CompletedCount counts projects whose status is completed
func (s *Store) CompletedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.projects {
		if p.Completed() {
			n++
		}
	}
	return n
}

// GroupedByTech buckets projects by tech in first-seen order.
// Projects without tech land in domain.OtherTech.
func (s *Store) GroupedByTech() []domain.TechGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := []domain.TechGroup{}
	index := make(map[string]int)
	for _, p := range s.projects {
		key := p.TechKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.TechGroup{Tech: key})
		}
		groups[i].Projects = append(groups[i].Projects, p)
	}
	return groups
}

// NextID reports the id the next Add will assign.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nextID
}

func (s *Store) build(in domain.ProjectInput, now time.Time) domain.Project {
	p := domain.NewProject(s.nextID, in, now)
	s.nextID++
	return p
}

func (s *Store) indexOf(id int) int {
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []domain.Project {
	return append([]domain.Project{}, s.projects...)
}

func (s *Store) notify(op Operation) {
	if len(s.hooks) == 0 {
		return
	}
	snap := s.snapshot()
	for _, h := range s.hooks {
		h.AfterMutation(op, snap)
	}
}
