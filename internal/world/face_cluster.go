package world

import (
	"github.com/annel0/voxelgrid/internal/vec"
	"github.com/annel0/voxelgrid/internal/voxel"
)

// FaceClusterSize — количество чанков в кластере граней, включая центр.
const FaceClusterSize = 7

// ChunkResolver разрешает позицию в расширенных координатах в пару
// (чанк-владелец, локальная позиция). Общий контракт обеих топологий
// кластеров для кода, которому безразлично, какая из них используется.
type ChunkResolver[V voxel.Voxel] interface {
	Resolve(pos vec.Vec3) (*Chunk[V], vec.Vec3, bool)
}

// FaceCluster объединяет центральный чанк и шесть соседей по граням,
// позволяя запросам вокселей прозрачно пересекать границу чанка.
//
// Кластер не владеет чанками: ссылки заимствованы, временем жизни
// управляет вызывающий код. Поддерживается переполнение только одной
// оси за запрос — позиция, вышедшая за границы сразу по двум осям,
// не определена.
type FaceCluster[V voxel.Voxel] struct {
	C  *Chunk[V] // центр
	NX *Chunk[V] // сосед по -X
	PX *Chunk[V] // сосед по +X
	NY *Chunk[V] // сосед по -Y
	PY *Chunk[V] // сосед по +Y
	NZ *Chunk[V] // сосед по -Z
	PZ *Chunk[V] // сосед по +Z
}

// NewFaceCluster создаёт кластер из центрального чанка и шести соседей.
func NewFaceCluster[V voxel.Voxel](c, nx, px, ny, py, nz, pz *Chunk[V]) *FaceCluster[V] {
	return &FaceCluster[V]{C: c, NX: nx, PX: px, NY: ny, PY: py, NZ: nz, PZ: pz}
}

// IsComplete сообщает, заполнены ли все семь ссылок кластера.
func (fc *FaceCluster[V]) IsComplete() bool {
	return fc.C != nil && fc.NX != nil && fc.PX != nil &&
		fc.NY != nil && fc.PY != nil && fc.NZ != nil && fc.PZ != nil
}

// resolve находит чанк-владелец позиции и её локальные координаты.
// Порядок проверки осей фиксирован: X, затем Y, затем Z.
func (fc *FaceCluster[V]) resolve(x, y, z int) (*Chunk[V], int, int, int) {
	switch {
	case x < 0:
		return fc.NX, x + fc.C.lenX, y, z
	case x >= fc.C.lenX:
		return fc.PX, x - fc.C.lenX, y, z
	case y < 0:
		return fc.NY, x, y + fc.C.lenY, z
	case y >= fc.C.lenY:
		return fc.PY, x, y - fc.C.lenY, z
	case z < 0:
		return fc.NZ, x, y, z + fc.C.lenZ
	case z >= fc.C.lenZ:
		return fc.PZ, x, y, z - fc.C.lenZ
	}
	return fc.C, x, y, z
}

// Get возвращает воксель по позиции относительно центрального чанка.
// Требует IsComplete(); на неполном кластере паникует разыменованием
// nil-ссылки — это нарушение контракта вызывающего кода.
func (fc *FaceCluster[V]) Get(x, y, z int) V {
	chunk, lx, ly, lz := fc.resolve(x, y, z)
	return chunk.Get(lx, ly, lz)
}

// Set записывает воксель по позиции относительно центрального чанка.
// Требует IsComplete().
func (fc *FaceCluster[V]) Set(x, y, z int, v V) {
	chunk, lx, ly, lz := fc.resolve(x, y, z)
	chunk.Set(lx, ly, lz, v)
}

// TryGet выполняет то же перенаправление, что и Get, но терпимо
// относится к отсутствующему соседу: возвращает false вместо паники.
// Без центрального чанка размеры кластера неизвестны, поэтому при
// C == nil любой запрос возвращает false.
func (fc *FaceCluster[V]) TryGet(x, y, z int) (V, bool) {
	if fc.C == nil {
		var zero V
		return zero, false
	}
	chunk, lx, ly, lz := fc.resolve(x, y, z)
	if chunk == nil {
		var zero V
		return zero, false
	}
	return chunk.TryGet(lx, ly, lz)
}

// TrySet записывает воксель, возвращая false при отсутствующем соседе
// или позиции вне допустимого диапазона.
func (fc *FaceCluster[V]) TrySet(x, y, z int, v V) bool {
	if fc.C == nil {
		return false
	}
	chunk, lx, ly, lz := fc.resolve(x, y, z)
	if chunk == nil {
		return false
	}
	return chunk.TrySet(lx, ly, lz, v)
}

// Resolve реализует ChunkResolver.
func (fc *FaceCluster[V]) Resolve(pos vec.Vec3) (*Chunk[V], vec.Vec3, bool) {
	if fc.C == nil {
		return nil, pos, false
	}
	chunk, lx, ly, lz := fc.resolve(pos.X, pos.Y, pos.Z)
	local := vec.Vec3{X: lx, Y: ly, Z: lz}
	if chunk == nil || !chunk.contains(lx, ly, lz) {
		return nil, local, false
	}
	return chunk, local, true
}
