// Package gen реализует детерминированную генерацию ландшафта —
// подсистему-поставщика чанков для загрузчика регионов.
package gen

import (
	"github.com/annel0/voxelgrid/internal/util"
	"github.com/annel0/voxelgrid/internal/vec"
	"github.com/annel0/voxelgrid/internal/voxel"
	"github.com/annel0/voxelgrid/internal/world"
)

// Идентификаторы вокселей генератора. Значения ниже voxel.PredefinedCount
// зарезервированы движком, поэтому нумерация начинается с 3.
const (
	StoneID voxel.ID = voxel.PredefinedCount + iota
	DirtID
	GrassID
	SandID
	WaterID
)

// Константы рельефа
const (
	WaterLevel  = 10   // Глобальная высота уровня воды
	HeightRange = 24   // Амплитуда высот ландшафта
	DirtDepth   = 3    // Толщина слоя земли под поверхностью
	CaveDensity = 0.72 // Порог шума, выше которого вырезается пещера
)

// Generator генерирует ландшафт мира по сиду.
// Один и тот же сид и координаты чанка всегда дают идентичный чанк.
type Generator struct {
	Seed       int64
	NoiseScale float64 // Масштаб шума высот
	BiomeScale float64 // Масштаб шума биомов
	CaveScale  float64 // Масштаб объёмного шума пещер

	lenX, lenY, lenZ uint8

	height *util.Noise
	biome  *util.Noise
	cave   *util.Noise
}

// NewGenerator создаёт генератор мира для чанков указанных размеров
func NewGenerator(seed int64, lenX, lenY, lenZ uint8) *Generator {
	return &Generator{
		Seed:       seed,
		NoiseScale: 0.05, // Настройка сглаженности ландшафта
		BiomeScale: 0.02, // Настройка размера биомов
		CaveScale:  0.09, // Настройка плотности пещер
		lenX:       lenX,
		lenY:       lenY,
		lenZ:       lenZ,
		height:     util.NewNoise(seed),
		biome:      util.NewNoise(seed + 42),
		cave:       util.NewNoise(seed + 1337),
	}
}

// ChunkExtents возвращает размеры генерируемых чанков
func (g *Generator) ChunkExtents() vec.Vec3 {
	return vec.Vec3{X: int(g.lenX), Y: int(g.lenY), Z: int(g.lenZ)}
}

// GenerateChunk генерирует чанк по его координатам в сетке чанков.
// Ось Y — вертикальная.
func (g *Generator) GenerateChunk(coords vec.Vec3) *world.Chunk[voxel.ID] {
	chunk := world.NewChunk[voxel.ID](g.lenX, g.lenY, g.lenZ)

	baseX := coords.X * int(g.lenX)
	baseY := coords.Y * int(g.lenY)
	baseZ := coords.Z * int(g.lenZ)

	for z := 0; z < int(g.lenZ); z++ {
		for x := 0; x < int(g.lenX); x++ {
			globalX := baseX + x
			globalZ := baseZ + z

			// Высота поверхности колонки из 2D-шума
			h := g.height.Noise2D(float64(globalX)*g.NoiseScale, float64(globalZ)*g.NoiseScale)
			surface := int(h * HeightRange)

			// Биом колонки определяет блок поверхности
			b := g.biome.Noise2D(float64(globalX)*g.BiomeScale, float64(globalZ)*g.BiomeScale)
			surfaceID := GrassID
			if b < 0.35 {
				surfaceID = SandID
			}

			for y := 0; y < int(g.lenY); y++ {
				globalY := baseY + y
				chunk.UnsafeSet(x, y, z, g.voxelAt(globalX, globalY, globalZ, surface, surfaceID))
			}
		}
	}

	return chunk
}

// voxelAt возвращает воксель для глобальной позиции при известной
// высоте поверхности колонки
func (g *Generator) voxelAt(x, y, z, surface int, surfaceID voxel.ID) voxel.ID {
	switch {
	case y > surface:
		// Над поверхностью: вода до уровня воды, выше — воздух
		if y <= WaterLevel {
			return WaterID
		}
		return voxel.Null

	case y == surface:
		if y < WaterLevel {
			// Затопленная поверхность — песок
			return SandID
		}
		return surfaceID

	default:
		// Под поверхностью: пещеры вырезаются объёмным шумом
		c := g.cave.Noise3D(float64(x)*g.CaveScale, float64(y)*g.CaveScale, float64(z)*g.CaveScale)
		if c > CaveDensity {
			return voxel.Null
		}
		if surface-y <= DirtDepth {
			return DirtID
		}
		return StoneID
	}
}
