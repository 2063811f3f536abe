package engine

// Store is the arena owning all live entities. Entities are appended in
// creation order and that order is preserved by compaction, so iterating by
// index always visits entities in ascending creation order, the tie-break
// the collision stage relies on.
//
// Removal is deferred: stages mark entities dead during a tick and Compact
// physically drops them at the tick boundary, so iteration is never
// invalidated mid-pass.
type Store struct {
	entities []Entity
	nextID   uint64
}

func NewStore() *Store {
	return &Store{
		entities: make([]Entity, 0, 256),
		nextID:   1,
	}
}

// Spawn inserts an entity, assigning its creation-order ID.
// Any index previously obtained via At may be invalidated by growth; callers
// re-fetch after spawning
func (s *Store) Spawn(e Entity) uint64 {
	e.ID = s.nextID
	e.Alive = true
	s.nextID++
	s.entities = append(s.entities, e)
	return e.ID
}

// Len returns the entity count including dead-but-not-compacted entries
func (s *Store) Len() int {
	return len(s.entities)
}

// At returns the entity at index i. The pointer is valid until the next
// Spawn or Compact
func (s *Store) At(i int) *Entity {
	return &s.entities[i]
}

// MarkDead flags the entity at index i for removal at the tick boundary
func (s *Store) MarkDead(i int) {
	s.entities[i].Alive = false
}

// Compact removes dead entities, preserving creation order
func (s *Store) Compact() {
	w := 0
	for i := range s.entities {
		if s.entities[i].Alive {
			if w != i {
				s.entities[w] = s.entities[i]
			}
			w++
		}
	}
	// Zero the tail so dropped polygon slices can be collected
	for i := w; i < len(s.entities); i++ {
		s.entities[i] = Entity{}
	}
	s.entities = s.entities[:w]
}

// CountKind returns the number of live entities of a kind
func (s *Store) CountKind(k Kind) int {
	n := 0
	for i := range s.entities {
		if s.entities[i].Alive && s.entities[i].Kind == k {
			n++
		}
	}
	return n
}

// ShipIndex returns the index of the live ship, or -1
func (s *Store) ShipIndex() int {
	for i := range s.entities {
		if s.entities[i].Alive && s.entities[i].Kind == KindShip {
			return i
		}
	}
	return -1
}

// Reset drops everything and restarts identity assignment
func (s *Store) Reset() {
	s.entities = s.entities[:0]
	s.nextID = 1
}
