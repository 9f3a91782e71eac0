// Package markers stores per-entity gameplay tags outside the floor map:
// rare tags with data in sparse maps, zero-data tags as presence entries.
package markers

// EntityID identifies a tagged game entity.
type EntityID int

// Wait locks an entity's movement until the duration has elapsed. Durations
// are counted in ticks of the game loop.
type Wait struct {
	Duration int
	Elapsed  int
}

// Store holds the marker state for all entities. The keyboard and camera
// tags are single-holder: granting one to an entity revokes it from the
// previous holder.
type Store struct {
	waits    map[EntityID]Wait
	keyboard map[EntityID]struct{}
	camera   map[EntityID]struct{}
}

// NewStore creates an empty marker store.
func NewStore() *Store {
	return &Store{
		waits:    make(map[EntityID]Wait),
		keyboard: make(map[EntityID]struct{}),
		camera:   make(map[EntityID]struct{}),
	}
}

// SetWait locks the entity's movement for the given number of ticks.
func (s *Store) SetWait(id EntityID, ticks int) {
	s.waits[id] = Wait{Duration: ticks}
}

// Waiting reports whether the entity is still movement-locked.
func (s *Store) Waiting(id EntityID) bool {
	_, ok := s.waits[id]
	return ok
}

// Tick advances every wait timer by one tick, dropping the ones that have
// elapsed.
func (s *Store) Tick() {
	for id, w := range s.waits {
		w.Elapsed++
		if w.Elapsed >= w.Duration {
			delete(s.waits, id)
		} else {
			s.waits[id] = w
		}
	}
}

// GrantKeyboard makes the entity the keyboard-controlled one, revoking the
// tag from any previous holder.
func (s *Store) GrantKeyboard(id EntityID) {
	clear(s.keyboard)
	s.keyboard[id] = struct{}{}
}

// HasKeyboard reports whether the entity is keyboard controlled.
func (s *Store) HasKeyboard(id EntityID) bool {
	_, ok := s.keyboard[id]
	return ok
}

// FocusCamera centers the camera on the entity, revoking focus from any
// previous holder.
func (s *Store) FocusCamera(id EntityID) {
	clear(s.camera)
	s.camera[id] = struct{}{}
}

// CameraFocus returns the entity the camera follows, if any.
func (s *Store) CameraFocus() (EntityID, bool) {
	for id := range s.camera {
		return id, true
	}
	return 0, false
}

// Clear removes every tag held by the entity.
func (s *Store) Clear(id EntityID) {
	delete(s.waits, id)
	delete(s.keyboard, id)
	delete(s.camera, id)
}
