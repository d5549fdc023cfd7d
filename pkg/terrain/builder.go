package terrain

import (
	"math/rand"

	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
)

// MapBuilder предоставляет fluent API для создания карт
type MapBuilder struct {
	width   int
	height  int
	world   *domain.World
	patches []Patch
	rng     *rand.Rand

	spawns     []domain.TilePos
	forests    []domain.TilePos
	berries    []domain.TilePos
	goldSeams  []domain.TilePos
	stoneSeams []domain.TilePos
}

// NewMap создает новый builder. Мир начинается сплошной травой
// с редкими проплешинами земли.
func NewMap(width, height int, rng *rand.Rand) *MapBuilder {
	b := &MapBuilder{
		width:  width,
		height: height,
		world:  domain.NewWorld(width, height),
		rng:    rng,
	}

	// Проплешины: чистая косметика, проходимость не меняется
	for i := 0; i < (width*height)/64; i++ {
		x, y := rng.Intn(width), rng.Intn(height)
		b.world.SetTerrain(x, y, enums.TerrainDirt)
	}
	return b
}

// WithLakes добавляет озера с кромкой брода. Вода непроходима,
// брод проходим - узкие перешейки остаются пригодными для маневра.
func (b *MapBuilder) WithLakes(count int) *MapBuilder {
	for i := 0; i < count; i++ {
		p, ok := b.placePatch(PatchMinR+1, PatchMaxR)
		if !ok {
			continue
		}
		b.paintPatch(p, enums.TerrainWater)

		// Кромка брода вокруг воды
		rim := Patch{X: p.X, Y: p.Y, R: p.R + 1}
		b.forEachIn(rim, func(x, y int) {
			if t, ok := b.world.TileAt(x, y); ok && t.Terrain != enums.TerrainWater {
				b.world.SetTerrain(x, y, enums.TerrainShallows)
			}
		})
	}
	return b
}

// WithForests добавляет лесные массивы. Каждая клетка леса
// запоминается: движок поставит на нее дерево-залежь.
func (b *MapBuilder) WithForests(count int) *MapBuilder {
	for i := 0; i < count; i++ {
		p, ok := b.placePatch(PatchMinR, PatchMaxR)
		if !ok {
			continue
		}
		b.forEachIn(p, func(x, y int) {
			if b.isOpenLand(x, y) {
				b.world.SetTerrain(x, y, enums.TerrainForest)
				b.forests = append(b.forests, domain.TilePos{X: x, Y: y})
			}
		})
	}
	return b
}

// WithGoldSeams добавляет золотые жилы (кластеры по 2-4 клетки)
func (b *MapBuilder) WithGoldSeams(count int) *MapBuilder {
	b.goldSeams = b.placeSeams(count, enums.TerrainGoldSeam, b.goldSeams)
	return b
}

// WithStoneSeams добавляет каменные жилы
func (b *MapBuilder) WithStoneSeams(count int) *MapBuilder {
	b.stoneSeams = b.placeSeams(count, enums.TerrainStoneSeam, b.stoneSeams)
	return b
}

// WithSpawns размечает стартовые точки игроков по окружности карты
// и кусты еды рядом с каждой. Точка всегда на открытой земле:
// при коллизии с водой или лесом ищется ближайшая свободная клетка.
func (b *MapBuilder) WithSpawns(players int) *MapBuilder {
	if players < 1 {
		return b
	}

	// Классическая рассадка: углы для 2-4 игроков, дальше по кругу
	anchors := [][2]int{
		{SpawnMargin, SpawnMargin},
		{b.width - SpawnMargin - 1, b.height - SpawnMargin - 1},
		{b.width - SpawnMargin - 1, SpawnMargin},
		{SpawnMargin, b.height - SpawnMargin - 1},
		{b.width / 2, SpawnMargin},
		{b.width / 2, b.height - SpawnMargin - 1},
		{SpawnMargin, b.height / 2},
		{b.width - SpawnMargin - 1, b.height / 2},
	}

	for i := 0; i < players && i < len(anchors); i++ {
		spawn := b.nearestOpenLand(anchors[i][0], anchors[i][1])
		b.spawns = append(b.spawns, spawn)

		// Кусты еды: кольцо на расстоянии 3-4 от ратуши
		placed := 0
		for attempt := 0; attempt < 30 && placed < 3; attempt++ {
			dx := b.randRange(-4, 4)
			dy := b.randRange(-4, 4)
			if dx*dx+dy*dy < 9 { // не вплотную к ратуше
				continue
			}
			x, y := spawn.X+dx, spawn.Y+dy
			if b.isOpenLand(x, y) {
				b.berries = append(b.berries, domain.TilePos{X: x, Y: y})
				placed++
			}
		}
	}
	return b
}

// Build возвращает готовую карту
func (b *MapBuilder) Build() *Map {
	return &Map{
		World:      b.world,
		Spawns:     b.spawns,
		Forests:    b.forests,
		Berries:    b.berries,
		GoldSeams:  b.goldSeams,
		StoneSeams: b.stoneSeams,
	}
}

// --- Вспомогательные функции ---

// placePatch ищет место для пятна, не налезающее на уже размещенные.
// false - не нашлось за разумное число попыток.
func (b *MapBuilder) placePatch(minR, maxR int) (Patch, bool) {
	for attempt := 0; attempt < 20; attempt++ {
		r := b.randRange(minR, maxR)
		p := Patch{
			X: b.randRange(r+1, b.width-r-2),
			Y: b.randRange(r+1, b.height-r-2),
			R: r,
		}

		overlaps := false
		for _, other := range b.patches {
			if p.Overlaps(other) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			b.patches = append(b.patches, p)
			return p, true
		}
	}
	return Patch{}, false
}

func (b *MapBuilder) paintPatch(p Patch, t enums.TerrainType) {
	b.forEachIn(p, func(x, y int) {
		b.world.SetTerrain(x, y, t)
	})
}

func (b *MapBuilder) forEachIn(p Patch, fn func(x, y int)) {
	for y := p.Y - p.R; y <= p.Y+p.R; y++ {
		for x := p.X - p.R; x <= p.X+p.R; x++ {
			if p.Contains(x, y) && b.world.InBounds(x, y) {
				fn(x, y)
			}
		}
	}
}

// placeSeams раскидывает кластеры жил по открытой земле
func (b *MapBuilder) placeSeams(count int, t enums.TerrainType, out []domain.TilePos) []domain.TilePos {
	for i := 0; i < count; i++ {
		cx, cy, ok := b.randomOpenLand()
		if !ok {
			continue
		}
		size := b.randRange(2, 4)
		for j := 0; j < size; j++ {
			x := cx + b.randRange(-1, 1)
			y := cy + b.randRange(-1, 1)
			if b.isOpenLand(x, y) {
				b.world.SetTerrain(x, y, t)
				out = append(out, domain.TilePos{X: x, Y: y})
			}
		}
	}
	return out
}

// isOpenLand - трава или земля: свободно и под застройку, и под жилы
func (b *MapBuilder) isOpenLand(x, y int) bool {
	t, ok := b.world.TileAt(x, y)
	if !ok {
		return false
	}
	return t.Terrain == enums.TerrainGrass || t.Terrain == enums.TerrainDirt
}

// randomOpenLand ищет случайную открытую клетку
func (b *MapBuilder) randomOpenLand() (int, int, bool) {
	for attempt := 0; attempt < 50; attempt++ {
		x, y := b.rng.Intn(b.width), b.rng.Intn(b.height)
		if b.isOpenLand(x, y) {
			return x, y, true
		}
	}
	return 0, 0, false
}

// nearestOpenLand разворачивает спираль вокруг точки до первой
// открытой клетки. На практике находит за пару витков.
func (b *MapBuilder) nearestOpenLand(cx, cy int) domain.TilePos {
	if b.isOpenLand(cx, cy) {
		return domain.TilePos{X: cx, Y: cy}
	}
	for r := 1; r < b.width; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx > -r && dx < r && dy > -r && dy < r {
					continue // только ободок кольца
				}
				if b.isOpenLand(cx+dx, cy+dy) {
					return domain.TilePos{X: cx + dx, Y: cy + dy}
				}
			}
		}
	}
	return domain.TilePos{X: cx, Y: cy}
}

func (b *MapBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}
