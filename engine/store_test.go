package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSpawnAssignsCreationOrder(t *testing.T) {
	s := NewStore()

	id1 := s.Spawn(Entity{Kind: KindAsteroid})
	id2 := s.Spawn(Entity{Kind: KindBullet})
	id3 := s.Spawn(Entity{Kind: KindParticle})

	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2)
	assert.Equal(t, uint64(3), id3)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.At(0).Alive)
}

func TestStoreCompactPreservesOrder(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.Spawn(Entity{Kind: KindAsteroid})
	}

	s.MarkDead(1)
	s.MarkDead(3)
	s.Compact()

	require.Equal(t, 3, s.Len())
	assert.Equal(t, uint64(1), s.At(0).ID)
	assert.Equal(t, uint64(3), s.At(1).ID)
	assert.Equal(t, uint64(5), s.At(2).ID)
}

func TestStoreCountKindSkipsDead(t *testing.T) {
	s := NewStore()
	s.Spawn(Entity{Kind: KindAsteroid})
	s.Spawn(Entity{Kind: KindAsteroid})
	s.Spawn(Entity{Kind: KindBullet})
	s.MarkDead(0)

	assert.Equal(t, 1, s.CountKind(KindAsteroid))
	assert.Equal(t, 1, s.CountKind(KindBullet))
	assert.Equal(t, 0, s.CountKind(KindSaucer))
}

func TestStoreShipIndex(t *testing.T) {
	s := NewStore()
	assert.Equal(t, -1, s.ShipIndex())

	s.Spawn(Entity{Kind: KindAsteroid})
	s.Spawn(NewShip(3))
	assert.Equal(t, 1, s.ShipIndex())

	s.MarkDead(1)
	assert.Equal(t, -1, s.ShipIndex())
}

func TestStoreResetRestartsIdentity(t *testing.T) {
	s := NewStore()
	s.Spawn(Entity{Kind: KindAsteroid})
	s.Spawn(Entity{Kind: KindAsteroid})

	s.Reset()
	require.Equal(t, 0, s.Len())

	id := s.Spawn(Entity{Kind: KindAsteroid})
	assert.Equal(t, uint64(1), id)
}
