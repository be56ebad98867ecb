package internal

import (
	"log/slog"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// An ordered collection of entities that keeps its edge entities subdivided:
// inserting an edge segment splits it, and everything it crosses, at every
// crossing, and drops a marker on each crossing.
//
// A Store has a single writer. It does no locking, and it must not be
// modified from inside a Subscribe callback.
type Store struct {
	entities    []Entity
	ids         IDSource
	logger      *slog.Logger
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func()
}

type StoreOption func(*Store)

// Draw ids from a shared source instead of a counter owned by the store
func WithIDSource(ids IDSource) StoreOption {
	return func(s *Store) {
		s.ids = ids
	}
}

// Log to l instead of the package logger
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = &Counter{}
	}
	return s
}

type insertConfig struct {
	skipIntersectionCheck bool
	rng                   *rand.Rand
}

type InsertOption func(*insertConfig)

// Insert without checking for crossings. The entity is still checked against
// later insertions.
func SkipIntersectionCheck() InsertOption {
	return func(c *insertConfig) {
		c.skipIntersectionCheck = true
	}
}

// Give every piece produced by a split its own random stroke color, drawn
// from rng.
func WithRandomColor(rng *rand.Rand) InsertOption {
	return func(c *insertConfig) {
		c.rng = rng
	}
}

func newInsertConfig(opts []InsertOption) insertConfig {
	var cfg insertConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type Disposable interface {
	Dispose()
}

type DisposeFunc func()

func (f DisposeFunc) Dispose() { f() }

type Disposables []Disposable

func (ds Disposables) Dispose() {
	for _, d := range ds {
		d.Dispose()
	}
}

func (s *Store) NextID() int {
	return s.ids.NextID()
}

// Construct a segment with an id from this store's id source
func (s *Store) NewSegment(x1, y1, x2, y2 float64, extra *Extra) *Segment {
	return NewSegment(s.ids, x1, y1, x2, y2, extra)
}

// Construct a point marker with an id from this store's id source
func (s *Store) NewPoint(x, y float64, extra *Extra) *Marker {
	return NewPoint(s.ids, x, y, extra)
}

// Add an entity, replacing any entity with the same id. Edge entities are
// then subdivided against every other edge entity in the store, unless
// SkipIntersectionCheck is given.
//
// Insertion is all or nothing: if subdivision fails, the store is left as it
// was before the call. The returned handle removes the entity by id; once the
// entity has been split, its id is gone and disposing does nothing.
func (s *Store) Insert(e Entity, opts ...InsertOption) (handle Disposable, err error) {
	if e == nil {
		return nil, errors.New("cannot insert nil entity")
	}
	cfg := newInsertConfig(opts)
	snapshot := s.Entities()
	defer func() {
		recoveredErr := HandleArrangePanicRecover(recover())
		if recoveredErr != nil {
			s.entities = snapshot
			handle = nil
			err = errors.Wrapf(recoveredErr, "inserting %s", e)
		}
	}()

	s.insert(e, cfg)
	s.notify()

	id := e.Base().ID
	return DisposeFunc(func() { s.RemoveByID(id) }), nil
}

// Insert entities one at a time, so each is subdivided against the ones
// before it. Stops at the first failure; the entities inserted up to that
// point stay in the store, and the returned handle still removes them.
func (s *Store) InsertMany(entities []Entity, opts ...InsertOption) (Disposable, error) {
	handles := make(Disposables, 0, len(entities))
	for i, e := range entities {
		handle, err := s.Insert(e, opts...)
		if err != nil {
			return handles, errors.Wrapf(err, "entity %d of %d", i+1, len(entities))
		}
		handles = append(handles, handle)
	}
	return handles, nil
}

func (s *Store) insert(e Entity, cfg insertConfig) {
	s.upsert(e)
	s.log().Debug("inserted entity", "id", e.Base().ID, "entity", entityValue{e})
	if !cfg.skipIntersectionCheck && IsEdge(e) {
		s.subdivide(e, cfg)
	}
}

func (s *Store) upsert(e Entity) {
	s.remove(e.Base().ID)
	s.entities = append(s.entities, e)
}

// Remove the first entity with the given id. Reports whether there was one.
func (s *Store) RemoveByID(id int) bool {
	if !s.remove(id) {
		return false
	}
	s.log().Debug("removed entity", "id", id)
	s.notify()
	return true
}

func (s *Store) remove(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	last := len(s.entities) - 1
	copy(s.entities[i:], s.entities[i+1:])
	// Clear the vacated slot so the backing array doesn't keep the entity alive
	s.entities[last] = nil
	s.entities = s.entities[:last]
	return true
}

func (s *Store) indexOf(id int) int {
	for i, e := range s.entities {
		if e.Base().ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Get(id int) (Entity, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return s.entities[i], true
}

func (s *Store) Len() int {
	return len(s.entities)
}

// The entities in insertion order. The slice is a copy.
func (s *Store) Entities() []Entity {
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// The entities in draw order: ascending ZIndex, ties in insertion order.
// Computed from the current contents on every call, so fetch it again after
// any change.
func (s *Store) Sorted() []Entity {
	result := s.Entities()
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Base().ZIndex < result[j].Base().ZIndex
	})
	return result
}

// Call fn after every change made through Insert, InsertMany or RemoveByID.
// The returned function unsubscribes.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id, fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	for _, sub := range s.subscribers {
		sub.fn()
	}
}

func (s *Store) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return Logger()
}
