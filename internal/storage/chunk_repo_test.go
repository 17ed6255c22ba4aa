package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxelgrid/internal/vec"
	"github.com/annel0/voxelgrid/internal/voxel"
	"github.com/annel0/voxelgrid/internal/world"
)

// newPatternChunk создаёт чанк с уникальным значением в каждой ячейке
func newPatternChunk(lenX, lenY, lenZ uint8) *world.Chunk[voxel.ID] {
	chunk := world.NewChunk[voxel.ID](lenX, lenY, lenZ)
	for i := 0; i < chunk.Size(); i++ {
		chunk.SetIndex(i, voxel.ID(i%1000+3))
	}
	return chunk
}

func TestEncodeDecodeChunk(t *testing.T) {
	chunk := newPatternChunk(5, 7, 3)

	data := encodeChunk(chunk)
	require.Len(t, data, 3+2*chunk.Size(), "Три байта размеров плюс два байта на воксель")
	assert.Equal(t, []byte{5, 7, 3}, data[:3])

	decoded, err := decodeChunk(data)
	require.NoError(t, err)
	assert.Equal(t, chunk.Extents(), decoded.Extents())
	assert.Equal(t, chunk.Voxels(), decoded.Voxels())
}

func TestDecodeChunkCorrupted(t *testing.T) {
	_, err := decodeChunk([]byte{1, 2})
	assert.Error(t, err, "Обрезанный заголовок должен давать ошибку")

	// Заголовок обещает 2*2*2 вокселя, данных меньше
	_, err = decodeChunk([]byte{2, 2, 2, 0, 0})
	assert.Error(t, err, "Несовпадение длины данных должно давать ошибку")
}

func TestChunkKeyUnique(t *testing.T) {
	assert.Equal(t, "chunk:1:-2:3", string(chunkKey(vec.Vec3{X: 1, Y: -2, Z: 3})))
	assert.NotEqual(t, chunkKey(vec.Vec3{X: 12, Y: 3}), chunkKey(vec.Vec3{X: 1, Y: 23}),
		"Разделители не позволяют склеивать координаты")
}

func TestMemoryRepoRoundTrip(t *testing.T) {
	repo := NewMemoryChunkRepo()
	defer repo.Close()

	coords := vec.Vec3{X: -1, Y: 0, Z: 4}
	chunk := newPatternChunk(8, 8, 8)

	// Пустое хранилище
	_, found, err := repo.LoadChunk(coords)
	require.NoError(t, err)
	assert.False(t, found, "Несохранённый чанк не должен находиться")

	has, err := repo.HasChunk(coords)
	require.NoError(t, err)
	assert.False(t, has)

	// Сохранение и загрузка
	require.NoError(t, repo.SaveChunk(coords, chunk))

	has, err = repo.HasChunk(coords)
	require.NoError(t, err)
	assert.True(t, has)

	loaded, found, err := repo.LoadChunk(coords)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, chunk.Voxels(), loaded.Voxels())

	// Загруженный чанк — копия: изменения не видны хранилищу
	loaded.SetIndex(0, 999)
	again, _, err := repo.LoadChunk(coords)
	require.NoError(t, err)
	assert.NotEqual(t, voxel.ID(999), again.GetIndex(0), "Хранилище должно отдавать независимые копии")

	assert.Error(t, repo.SaveChunk(coords, nil), "Сохранение nil-чанка должно давать ошибку")
}

func TestBadgerRepoRoundTrip(t *testing.T) {
	dataPath := t.TempDir()

	repo, err := NewBadgerChunkRepo(dataPath)
	require.NoError(t, err)

	coords := vec.Vec3{X: 2, Y: -3, Z: 0}
	chunk := newPatternChunk(16, 16, 16)

	_, found, err := repo.LoadChunk(coords)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SaveChunk(coords, chunk))

	has, err := repo.HasChunk(coords)
	require.NoError(t, err)
	assert.True(t, has)

	loaded, found, err := repo.LoadChunk(coords)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, chunk.Voxels(), loaded.Voxels())

	// Данные переживают переоткрытие хранилища
	require.NoError(t, repo.Close())

	repo, err = NewBadgerChunkRepo(dataPath)
	require.NoError(t, err)
	defer repo.Close()

	loaded, found, err = repo.LoadChunk(coords)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, chunk.Voxels(), loaded.Voxels())
}

func TestBadgerRepoClosed(t *testing.T) {
	repo, err := NewBadgerChunkRepo(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	require.NoError(t, repo.Close(), "Повторное закрытие безопасно")

	_, _, err = repo.LoadChunk(vec.Vec3{})
	assert.Error(t, err, "Закрытое хранилище не обслуживает запросы")
	assert.Error(t, repo.SaveChunk(vec.Vec3{}, newPatternChunk(2, 2, 2)))
}

func TestEnsureWorldMeta(t *testing.T) {
	dataPath := t.TempDir()

	repo, err := NewBadgerChunkRepo(dataPath)
	require.NoError(t, err)

	meta, err := repo.EnsureWorldMeta(424242)
	require.NoError(t, err)
	assert.NotEmpty(t, meta.ID, "При первом открытии должен создаваться UUID мира")
	assert.Equal(t, int64(424242), meta.Seed)
	assert.False(t, meta.CreatedAt.IsZero())

	// Повторное обращение возвращает ту же запись, сид не перезаписывается
	again, err := repo.EnsureWorldMeta(1)
	require.NoError(t, err)
	assert.Equal(t, meta.ID, again.ID)
	assert.Equal(t, int64(424242), again.Seed)

	// Метаданные переживают переоткрытие
	require.NoError(t, repo.Close())
	repo, err = NewBadgerChunkRepo(dataPath)
	require.NoError(t, err)
	defer repo.Close()

	persisted, err := repo.EnsureWorldMeta(7)
	require.NoError(t, err)
	assert.Equal(t, meta.ID, persisted.ID)
	assert.Equal(t, int64(424242), persisted.Seed)
}
