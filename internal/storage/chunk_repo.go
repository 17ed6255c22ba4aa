package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/annel0/voxelgrid/internal/vec"
	"github.com/annel0/voxelgrid/internal/voxel"
	"github.com/annel0/voxelgrid/internal/world"
)

// ChunkRepo описывает хранилище чанков мира.
// Реализации: BadgerChunkRepo (персистентное) и MemoryChunkRepo
// (fallback для CI/локальной разработки без БД).
type ChunkRepo interface {
	// SaveChunk сохраняет чанк по его координатам в сетке чанков.
	SaveChunk(coords vec.Vec3, chunk *world.Chunk[voxel.ID]) error

	// LoadChunk загружает чанк. Второе значение false, если чанк
	// ещё не сохранялся.
	LoadChunk(coords vec.Vec3) (*world.Chunk[voxel.ID], bool, error)

	// HasChunk проверяет наличие чанка без его загрузки.
	HasChunk(coords vec.Vec3) (bool, error)

	// Close освобождает ресурсы хранилища.
	Close() error
}

// encodeChunk сериализует чанк: три байта размеров, затем воксели
// little-endian по два байта. Данные не сжимаются.
func encodeChunk(chunk *world.Chunk[voxel.ID]) []byte {
	voxels := chunk.Voxels()
	buf := make([]byte, 3+2*len(voxels))
	buf[0] = uint8(chunk.LenX())
	buf[1] = uint8(chunk.LenY())
	buf[2] = uint8(chunk.LenZ())
	for i, v := range voxels {
		binary.LittleEndian.PutUint16(buf[3+2*i:], uint16(v))
	}
	return buf
}

// decodeChunk восстанавливает чанк из сериализованного представления
func decodeChunk(data []byte) (*world.Chunk[voxel.ID], error) {
	if len(data) < 3 {
		return nil, fmt.Errorf("повреждённые данные чанка: %d байт", len(data))
	}

	lenX, lenY, lenZ := data[0], data[1], data[2]
	size := int(lenX) * int(lenY) * int(lenZ)
	if len(data) != 3+2*size {
		return nil, fmt.Errorf("повреждённые данные чанка: ожидалось %d байт, получено %d",
			3+2*size, len(data))
	}

	chunk := world.NewChunk[voxel.ID](lenX, lenY, lenZ)
	voxels := chunk.Voxels()
	for i := range voxels {
		voxels[i] = voxel.ID(binary.LittleEndian.Uint16(data[3+2*i:]))
	}
	return chunk, nil
}

// chunkKey формирует ключ чанка для хранилища
func chunkKey(coords vec.Vec3) []byte {
	return []byte(fmt.Sprintf("chunk:%d:%d:%d", coords.X, coords.Y, coords.Z))
}

// MemoryChunkRepo реализует ChunkRepo в памяти.
// ВНИМАНИЕ: Данные теряются при перезапуске процесса!
type MemoryChunkRepo struct {
	mu   sync.RWMutex
	data map[vec.Vec3][]byte
}

// NewMemoryChunkRepo создает новое хранилище чанков в памяти
func NewMemoryChunkRepo() *MemoryChunkRepo {
	return &MemoryChunkRepo{
		data: make(map[vec.Vec3][]byte),
	}
}

// SaveChunk сохраняет сериализованную копию чанка в памяти
func (r *MemoryChunkRepo) SaveChunk(coords vec.Vec3, chunk *world.Chunk[voxel.ID]) error {
	if chunk == nil {
		return fmt.Errorf("чанк не задан")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[coords] = encodeChunk(chunk)
	return nil
}

// LoadChunk загружает чанк из памяти
func (r *MemoryChunkRepo) LoadChunk(coords vec.Vec3) (*world.Chunk[voxel.ID], bool, error) {
	r.mu.RLock()
	data, exists := r.data[coords]
	r.mu.RUnlock()

	if !exists {
		return nil, false, nil
	}

	chunk, err := decodeChunk(data)
	if err != nil {
		return nil, false, err
	}
	return chunk, true, nil
}

// HasChunk проверяет наличие чанка в памяти
func (r *MemoryChunkRepo) HasChunk(coords vec.Vec3) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.data[coords]
	return exists, nil
}

// Close освобождает ресурсы (для памяти — ничего не делает)
func (r *MemoryChunkRepo) Close() error {
	return nil
}
