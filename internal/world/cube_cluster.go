package world

import (
	"fmt"

	"github.com/annel0/voxelgrid/internal/vec"
	"github.com/annel0/voxelgrid/internal/voxel"
)

// Параметры кубического кластера: 3x3x3 чанка.
const (
	CubeLength    = 3
	CubeLayerSize = 9
	CubeSize      = 27

	// CubeCenterIndex — линейный индекс центрального чанка (1,1,1).
	CubeCenterIndex = 13
)

// CubeOffsets задаёт семантическую позицию каждого слота кластера
// относительно центра. Порядок соответствует PosToIndex по сетке 3x3x3:
// X меняется быстрее всего.
var CubeOffsets = [CubeSize]vec.Vec3{
	{X: -1, Y: -1, Z: -1}, {X: 0, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1},
	{X: -1, Y: 0, Z: -1}, {X: 0, Y: 0, Z: -1}, {X: 1, Y: 0, Z: -1},
	{X: -1, Y: 1, Z: -1}, {X: 0, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 0}, {X: 0, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0},
	{X: -1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0},
	{X: -1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
	{X: -1, Y: -1, Z: 1}, {X: 0, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1},
	{X: -1, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1},
	{X: -1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
}

// CubeCluster объединяет 27 чанков кубом 3x3x3 вокруг центрального,
// покрывая все комбинации соседей по осям, включая диагональные.
// Запросы вокселей принимают расширенные координаты: на каждой оси от
// -len до 2*len-1, где len — размер центрального чанка по этой оси.
//
// Кластер не владеет чанками: ссылки заимствованы, временем жизни
// управляет вызывающий код. Все чанки кластера должны иметь размеры
// центрального.
type CubeCluster[V voxel.Voxel] struct {
	chunks [CubeSize]*Chunk[V]
}

// NewCubeCluster создаёт кластер из массива ссылок на чанки.
// Отдельные слоты могут быть nil.
func NewCubeCluster[V voxel.Voxel](chunks [CubeSize]*Chunk[V]) *CubeCluster[V] {
	return &CubeCluster[V]{chunks: chunks}
}

// Center возвращает центральный чанк кластера (может быть nil).
func (cc *CubeCluster[V]) Center() *Chunk[V] {
	return cc.chunks[CubeCenterIndex]
}

// Chunk возвращает чанк по трехмерному индексу слота (каждая ось 0..2).
// Может вернуть nil для незаполненного слота; индекс вне сетки — паника.
func (cc *CubeCluster[V]) Chunk(x, y, z int) *Chunk[V] {
	if x < 0 || x >= CubeLength || y < 0 || y >= CubeLength || z < 0 || z >= CubeLength {
		panic(fmt.Sprintf("world: индекс слота (%d,%d,%d) вне кластера 3x3x3", x, y, z))
	}
	return cc.chunks[PosToIndex(x, y, z, CubeLength, CubeLayerSize)]
}

// ChunkAt возвращает чанк по линейному индексу слота 0..26.
func (cc *CubeCluster[V]) ChunkAt(index int) *Chunk[V] {
	if index < 0 || index >= CubeSize {
		panic(fmt.Sprintf("world: индекс слота %d вне кластера из %d чанков", index, CubeSize))
	}
	return cc.chunks[index]
}

// TryChunk возвращает чанк по трехмерному индексу слота с проверкой границ.
func (cc *CubeCluster[V]) TryChunk(x, y, z int) (*Chunk[V], bool) {
	if x < 0 || x >= CubeLength || y < 0 || y >= CubeLength || z < 0 || z >= CubeLength {
		return nil, false
	}
	return cc.chunks[PosToIndex(x, y, z, CubeLength, CubeLayerSize)], true
}

// TryChunkAt возвращает чанк по линейному индексу слота с проверкой границ.
func (cc *CubeCluster[V]) TryChunkAt(index int) (*Chunk[V], bool) {
	if index < 0 || index >= CubeSize {
		return nil, false
	}
	return cc.chunks[index], true
}

// UnsafeChunk возвращает чанк по трехмерному индексу слота без проверки.
func (cc *CubeCluster[V]) UnsafeChunk(x, y, z int) *Chunk[V] {
	return cc.chunks[PosToIndex(x, y, z, CubeLength, CubeLayerSize)]
}

// UnsafeChunkAt возвращает чанк по линейному индексу слота без проверки.
func (cc *CubeCluster[V]) UnsafeChunkAt(index int) *Chunk[V] {
	return cc.chunks[index]
}

// SetChunkAt заменяет ссылку в слоте кластера.
func (cc *CubeCluster[V]) SetChunkAt(index int, c *Chunk[V]) {
	if index < 0 || index >= CubeSize {
		panic(fmt.Sprintf("world: индекс слота %d вне кластера из %d чанков", index, CubeSize))
	}
	cc.chunks[index] = c
}

// IsComplete сообщает, заполнены ли все 27 слотов кластера.
func (cc *CubeCluster[V]) IsComplete() bool {
	for _, c := range cc.chunks {
		if c == nil {
			return false
		}
	}
	return true
}

// HasChunks сообщает, заполнен ли хотя бы один слот кластера.
func (cc *CubeCluster[V]) HasChunks() bool {
	for _, c := range cc.chunks {
		if c != nil {
			return true
		}
	}
	return false
}

// VoxelChunk разрешает позицию в расширенных координатах в чанк-владелец
// и переписывает pos на месте в координаты, локальные для этого чанка.
// Индекс слота по оси — floor((coord+len)/len); деление обязано округлять
// вниз, усечение к нулю на отрицательных значениях дало бы неверный слот.
// Возвращённая ссылка может быть nil для незаполненного слота.
//
// Контракт: coord каждой оси лежит в [-len, 2*len-1]; требуется
// заполненный центральный слот (он задаёт размеры).
func (cc *CubeCluster[V]) VoxelChunk(pos *vec.Vec3) *Chunk[V] {
	center := cc.chunks[CubeCenterIndex]
	lx, ly, lz := center.lenX, center.lenY, center.lenZ

	sx := vec.FloorDiv(pos.X+lx, lx)
	sy := vec.FloorDiv(pos.Y+ly, ly)
	sz := vec.FloorDiv(pos.Z+lz, lz)

	pos.X -= (sx - 1) * lx
	pos.Y -= (sy - 1) * ly
	pos.Z -= (sz - 1) * lz

	return cc.chunks[PosToIndex(sx, sy, sz, CubeLength, CubeLayerSize)]
}

// GetVoxel возвращает воксель по позиции в расширенных координатах.
// Если слот-владелец не заполнен, возвращается missing.
func (cc *CubeCluster[V]) GetVoxel(pos vec.Vec3, missing V) V {
	chunk := cc.VoxelChunk(&pos)
	if chunk == nil {
		return missing
	}
	return chunk.Get(pos.X, pos.Y, pos.Z)
}

// SetVoxel записывает воксель по позиции в расширенных координатах.
// Незаполненный слот-владелец — нарушение контракта: паника.
func (cc *CubeCluster[V]) SetVoxel(pos vec.Vec3, v V) {
	chunk := cc.VoxelChunk(&pos)
	chunk.Set(pos.X, pos.Y, pos.Z, v)
}

// inExtendedBounds проверяет расширенный диапазон координат кластера
func (cc *CubeCluster[V]) inExtendedBounds(pos vec.Vec3) bool {
	center := cc.chunks[CubeCenterIndex]
	if center == nil {
		return false
	}
	return pos.X >= -center.lenX && pos.X < 2*center.lenX &&
		pos.Y >= -center.lenY && pos.Y < 2*center.lenY &&
		pos.Z >= -center.lenZ && pos.Z < 2*center.lenZ
}

// TryGetVoxel возвращает воксель и true, если позиция в расширенном
// диапазоне и слот-владелец заполнен.
func (cc *CubeCluster[V]) TryGetVoxel(pos vec.Vec3) (V, bool) {
	if !cc.inExtendedBounds(pos) {
		var zero V
		return zero, false
	}
	chunk := cc.VoxelChunk(&pos)
	if chunk == nil {
		var zero V
		return zero, false
	}
	return chunk.TryGet(pos.X, pos.Y, pos.Z)
}

// TrySetVoxel записывает воксель, возвращая false для позиции вне
// расширенного диапазона или незаполненного слота.
func (cc *CubeCluster[V]) TrySetVoxel(pos vec.Vec3, v V) bool {
	if !cc.inExtendedBounds(pos) {
		return false
	}
	chunk := cc.VoxelChunk(&pos)
	if chunk == nil {
		return false
	}
	return chunk.TrySet(pos.X, pos.Y, pos.Z, v)
}

// UnsafeGetVoxel возвращает воксель без каких-либо проверок.
// Вызывающий код гарантирует диапазон и заполненность слота.
func (cc *CubeCluster[V]) UnsafeGetVoxel(pos vec.Vec3) V {
	chunk := cc.VoxelChunk(&pos)
	return chunk.UnsafeGet(pos.X, pos.Y, pos.Z)
}

// Resolve реализует ChunkResolver.
func (cc *CubeCluster[V]) Resolve(pos vec.Vec3) (*Chunk[V], vec.Vec3, bool) {
	if !cc.inExtendedBounds(pos) {
		return nil, pos, false
	}
	chunk := cc.VoxelChunk(&pos)
	if chunk == nil {
		return nil, pos, false
	}
	return chunk, pos, true
}
