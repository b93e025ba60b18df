package pugl

import (
	"fmt"

	"github.com/openchord/go-pugl/internal/logger"
	"github.com/openchord/go-pugl/internal/native"
)

// WorldID names one world for the life of the process. Ids are
// monotonic and never reused, so a stale id held after destruction
// can never alias a newer world.
type WorldID uint64

// worldRegistry tracks the live worlds keyed by id, each carrying
// the number of views attached to it. It is a plain map with no
// locking: the thread contract documented on the package confines
// every caller to the event-loop thread.
type worldRegistry struct {
	nextID  WorldID
	entries map[WorldID]*World
}

func newWorldRegistry() *worldRegistry {
	return &worldRegistry{nextID: 1, entries: make(map[WorldID]*World)}
}

var worlds = newWorldRegistry()

// acquire returns a world for a view to attach to. A zero id creates
// a fresh world with one reference. A live id is shared, bumping its
// count. An id that is unknown or already destroyed yields a fresh
// world under a new id rather than resurrecting the old one.
func (r *worldRegistry) acquire(id WorldID, kind WorldKind, className string) (*World, error) {
	if w, ok := r.entries[id]; ok {
		w.refs++
		return w, nil
	}
	if id != 0 {
		logger.Debugf("pugl: world %d is gone, creating a fresh one", id)
	}
	d, err := activeDriver()
	if err != nil {
		return nil, err
	}
	h, err := d.NewWorld(native.WorldKind(kind), 0)
	if err != nil {
		return nil, fmt.Errorf("pugl: new world: %w", err)
	}
	if className != "" {
		if st := d.SetClassName(h, className); st != native.StatusSuccess {
			logger.Warnf("pugl: set class name: %s", st)
		}
	}
	w := &World{
		id:     r.nextID,
		handle: h,
		drv:    d,
		kind:   kind,
		refs:   1,
		live:   true,
	}
	r.nextID++
	r.entries[w.id] = w
	logger.Debugf("pugl: world %d created", w.id)
	return w, nil
}

// release drops one reference. When the count reaches zero the
// native world is freed, exactly once, and the id is retired.
// Releasing an unregistered id is an error and changes nothing.
func (r *worldRegistry) release(id WorldID) error {
	w, ok := r.entries[id]
	if !ok {
		err := fmt.Errorf("pugl: release world %d: %w", id, ErrWorldNotRegistered)
		logger.Warnf("%v", err)
		return err
	}
	w.refs--
	if w.refs > 0 {
		return nil
	}
	w.live = false
	delete(r.entries, id)
	w.drv.FreeWorld(w.handle)
	logger.Debugf("pugl: world %d destroyed", id)
	return nil
}

// count reports the number of references held on a world, zero for
// ids that are unknown or destroyed.
func (r *worldRegistry) count(id WorldID) int {
	if w, ok := r.entries[id]; ok {
		return w.refs
	}
	return 0
}

// WorldCount reports how many views currently share the world with
// the given id. It exists for diagnostics and tests; zero means the
// id is unknown or the world is gone.
func WorldCount(id WorldID) int {
	return worlds.count(id)
}
