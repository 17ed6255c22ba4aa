package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxelgrid/internal/vec"
	"github.com/annel0/voxelgrid/internal/voxel"
)

func TestGeneratorDeterministic(t *testing.T) {
	coords := vec.Vec3{X: 3, Y: 0, Z: -2}

	a := NewGenerator(777, 16, 16, 16).GenerateChunk(coords)
	b := NewGenerator(777, 16, 16, 16).GenerateChunk(coords)
	assert.Equal(t, a.Voxels(), b.Voxels(), "Один сид должен давать идентичный чанк")

	c := NewGenerator(778, 16, 16, 16).GenerateChunk(coords)
	assert.NotEqual(t, a.Voxels(), c.Voxels(), "Разные сиды должны давать разный ландшафт")
}

func TestGeneratorExtents(t *testing.T) {
	g := NewGenerator(1, 8, 32, 4)
	assert.Equal(t, vec.Vec3{X: 8, Y: 32, Z: 4}, g.ChunkExtents())

	chunk := g.GenerateChunk(vec.Vec3{})
	assert.Equal(t, 8, chunk.LenX())
	assert.Equal(t, 32, chunk.LenY())
	assert.Equal(t, 4, chunk.LenZ())
}

func TestGeneratorKnownVoxels(t *testing.T) {
	g := NewGenerator(42, 16, 16, 16)

	// Нижний чанк столба — сплошной ландшафт без предопределённых
	// служебных вокселей
	chunk := g.GenerateChunk(vec.Vec3{Y: -2})
	known := map[voxel.ID]bool{
		voxel.Null: true, StoneID: true, DirtID: true,
		GrassID: true, SandID: true, WaterID: true,
	}
	for i := 0; i < chunk.Size(); i++ {
		v := chunk.GetIndex(i)
		require.True(t, known[v], "Генератор выдал неизвестный воксель %d", v)
		require.NotEqual(t, voxel.Unknown, v)
		require.NotEqual(t, voxel.Debug, v)
	}
}

func TestGeneratorHeightBounded(t *testing.T) {
	g := NewGenerator(9001, 16, 64, 16)
	chunk := g.GenerateChunk(vec.Vec3{Y: 0})

	// Поверхность не превышает амплитуду высот: выше неё только воздух
	for z := 0; z < chunk.LenZ(); z++ {
		for x := 0; x < chunk.LenX(); x++ {
			for y := HeightRange + 1; y < chunk.LenY(); y++ {
				require.Equal(t, voxel.Null, chunk.Get(x, y, z),
					"Воксель выше амплитуды высот в (%d,%d,%d)", x, y, z)
			}
		}
	}
}

func TestGeneratorWaterFillsBasins(t *testing.T) {
	g := NewGenerator(5, 16, 32, 16)
	chunk := g.GenerateChunk(vec.Vec3{})

	// Выше уровня воды вода не встречается
	for z := 0; z < chunk.LenZ(); z++ {
		for x := 0; x < chunk.LenX(); x++ {
			for y := WaterLevel + 1; y < chunk.LenY(); y++ {
				require.NotEqual(t, WaterID, chunk.Get(x, y, z),
					"Вода выше уровня воды в (%d,%d,%d)", x, y, z)
			}
		}
	}
}
