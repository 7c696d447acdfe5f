package ecs

import "strconv"

// Entity identifies a character, pickup or other arena object. It packs a
// slot id in the low 32 bits and a generation in the high 32, so a handle
// kept after its character was destroyed never aliases the next spawn.
// Components that point at other entities (chase targets, ability requests)
// store the raw uint64; zero means no entity.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e was issued by a world. Slot 0 is never used.
func (e Entity) Valid() bool {
	return e.id() > 0
}
