package types

import (
	"testing"
)

/*
   Sinks — обязательны.
   Нужны, чтобы компилятор не выкинул вычисления.
*/

var (
	sinkID  UnitID
	sinkU8  uint8
	sinkU16 uint16
	sinkU32 uint32
)

/*
   =========================
   noinline helpers
   =========================
*/

//go:noinline
func packUnitIDNoInline(
	shard uint8,
	kind uint8,
	gen uint16,
	index uint32,
) UnitID {
	return PackUnitID(shard, kind, gen, index)
}

//go:noinline
func unitIDShardNoInline(id UnitID) uint8 {
	return id.Shard()
}

//go:noinline
func unitIDKindNoInline(id UnitID) uint8 {
	return id.Kind()
}

//go:noinline
func unitIDGenNoInline(id UnitID) uint16 {
	return id.Generation()
}

//go:noinline
func unitIDIndexNoInline(id UnitID) uint32 {
	return id.Index()
}

/*
   =========================
   Benchmarks: UnitID
   =========================
*/

func BenchmarkPackUnitID(b *testing.B) {
	var id UnitID
	for i := 0; i < b.N; i++ {
		id = packUnitIDNoInline(
			1,
			2,
			uint16(i),
			uint32(i),
		)
	}
	sinkID = id
}

func BenchmarkUnitID_Getters(b *testing.B) {
	id := packUnitIDNoInline(1, 2, 3, 4)

	b.Run("Shard", func(b *testing.B) {
		var v uint8
		for i := 0; i < b.N; i++ {
			v = unitIDShardNoInline(id)
		}
		sinkU8 = v
	})

	b.Run("Kind", func(b *testing.B) {
		var v uint8
		for i := 0; i < b.N; i++ {
			v = unitIDKindNoInline(id)
		}
		sinkU8 = v
	})

	b.Run("Gen", func(b *testing.B) {
		var v uint16
		for i := 0; i < b.N; i++ {
			v = unitIDGenNoInline(id)
		}
		sinkU16 = v
	})

	b.Run("Index", func(b *testing.B) {
		var v uint32
		for i := 0; i < b.N; i++ {
			v = unitIDIndexNoInline(id)
		}
		sinkU32 = v
	})
}
