package world

import (
	"fmt"

	"github.com/annel0/voxelgrid/internal/vec"
	"github.com/annel0/voxelgrid/internal/voxel"
)

// Chunk представляет участок мира — плотный трехмерный массив вокселей
// фиксированного размера. Раскладка row-major: X меняется быстрее всего,
// затем Y, затем Z (см. PosToIndex).
//
// Chunk — простой контейнер-значение без внутренней синхронизации.
// При конкурентном доступе из нескольких горутин вызывающий код обязан
// синхронизироваться самостоятельно.
type Chunk[V voxel.Voxel] struct {
	lenX, lenY, lenZ int
	layerSize        int // lenX * lenY
	size             int // lenX * lenY * lenZ
	voxels           []V
}

// NewChunk создаёт чанк с указанными размерами по осям.
// Размеры задаются 8-битными значениями и должны быть больше нуля.
// Содержимое нового чанка обнулено, что эквивалентно Fill(Null).
func NewChunk[V voxel.Voxel](lenX, lenY, lenZ uint8) *Chunk[V] {
	if lenX == 0 || lenY == 0 || lenZ == 0 {
		panic(fmt.Sprintf("world: недопустимые размеры чанка %dx%dx%d", lenX, lenY, lenZ))
	}

	lx, ly, lz := int(lenX), int(lenY), int(lenZ)
	return &Chunk[V]{
		lenX:      lx,
		lenY:      ly,
		lenZ:      lz,
		layerSize: lx * ly,
		size:      lx * ly * lz,
		voxels:    make([]V, lx*ly*lz),
	}
}

// NewFilledChunk создаёт чанк, заполненный указанным вокселем.
func NewFilledChunk[V voxel.Voxel](lenX, lenY, lenZ uint8, v V) *Chunk[V] {
	c := NewChunk[V](lenX, lenY, lenZ)
	c.Fill(v)
	return c
}

// LenX возвращает размер чанка по оси X.
func (c *Chunk[V]) LenX() int { return c.lenX }

// LenY возвращает размер чанка по оси Y.
func (c *Chunk[V]) LenY() int { return c.lenY }

// LenZ возвращает размер чанка по оси Z.
func (c *Chunk[V]) LenZ() int { return c.lenZ }

// LayerSize возвращает количество вокселей в одном XY-слое.
func (c *Chunk[V]) LayerSize() int { return c.layerSize }

// Size возвращает общее количество вокселей в чанке.
func (c *Chunk[V]) Size() int { return c.size }

// Extents возвращает размеры чанка в виде вектора.
func (c *Chunk[V]) Extents() vec.Vec3 {
	return vec.Vec3{X: c.lenX, Y: c.lenY, Z: c.lenZ}
}

// Voxels возвращает нижележащий массив вокселей без копирования.
// Изменения массива напрямую видны чанку.
func (c *Chunk[V]) Voxels() []V { return c.voxels }

// contains проверяет, лежит ли позиция внутри чанка
func (c *Chunk[V]) contains(x, y, z int) bool {
	return x >= 0 && x < c.lenX &&
		y >= 0 && y < c.lenY &&
		z >= 0 && z < c.lenZ
}

// Get возвращает воксель по координатам.
// Выход за границы — нарушение контракта вызывающего кода: паника.
func (c *Chunk[V]) Get(x, y, z int) V {
	if !c.contains(x, y, z) {
		panic(fmt.Sprintf("world: позиция (%d,%d,%d) вне чанка %dx%dx%d",
			x, y, z, c.lenX, c.lenY, c.lenZ))
	}
	return c.voxels[PosToIndex(x, y, z, c.lenX, c.layerSize)]
}

// Set записывает воксель по координатам.
// Выход за границы — нарушение контракта вызывающего кода: паника.
func (c *Chunk[V]) Set(x, y, z int, v V) {
	if !c.contains(x, y, z) {
		panic(fmt.Sprintf("world: позиция (%d,%d,%d) вне чанка %dx%dx%d",
			x, y, z, c.lenX, c.lenY, c.lenZ))
	}
	c.voxels[PosToIndex(x, y, z, c.lenX, c.layerSize)] = v
}

// GetIndex возвращает воксель по линейному индексу.
func (c *Chunk[V]) GetIndex(index int) V {
	if index < 0 || index >= c.size {
		panic(fmt.Sprintf("world: индекс %d вне чанка размера %d", index, c.size))
	}
	return c.voxels[index]
}

// SetIndex записывает воксель по линейному индексу.
func (c *Chunk[V]) SetIndex(index int, v V) {
	if index < 0 || index >= c.size {
		panic(fmt.Sprintf("world: индекс %d вне чанка размера %d", index, c.size))
	}
	c.voxels[index] = v
}

// TryGet возвращает воксель и true, если позиция внутри чанка.
// Для позиции вне чанка возвращает нулевой воксель и false, не
// обращаясь к памяти массива.
func (c *Chunk[V]) TryGet(x, y, z int) (V, bool) {
	if !c.contains(x, y, z) {
		var zero V
		return zero, false
	}
	return c.voxels[PosToIndex(x, y, z, c.lenX, c.layerSize)], true
}

// TrySet записывает воксель, если позиция внутри чанка.
// Возвращает false без каких-либо изменений, если позиция вне чанка.
func (c *Chunk[V]) TrySet(x, y, z int, v V) bool {
	if !c.contains(x, y, z) {
		return false
	}
	c.voxels[PosToIndex(x, y, z, c.lenX, c.layerSize)] = v
	return true
}

// TryGetIndex возвращает воксель по линейному индексу с проверкой границ.
func (c *Chunk[V]) TryGetIndex(index int) (V, bool) {
	if index < 0 || index >= c.size {
		var zero V
		return zero, false
	}
	return c.voxels[index], true
}

// TrySetIndex записывает воксель по линейному индексу с проверкой границ.
func (c *Chunk[V]) TrySetIndex(index int, v V) bool {
	if index < 0 || index >= c.size {
		return false
	}
	c.voxels[index] = v
	return true
}

// UnsafeGet возвращает воксель без какой-либо проверки границ.
// Предназначен для горячих путей, где границы уже проверены вызывающим
// кодом; некорректная позиция ведёт к неопределённому поведению.
func (c *Chunk[V]) UnsafeGet(x, y, z int) V {
	return c.voxels[PosToIndex(x, y, z, c.lenX, c.layerSize)]
}

// UnsafeSet записывает воксель без какой-либо проверки границ.
func (c *Chunk[V]) UnsafeSet(x, y, z int, v V) {
	c.voxels[PosToIndex(x, y, z, c.lenX, c.layerSize)] = v
}

// UnsafeGetIndex возвращает воксель по линейному индексу без проверки.
func (c *Chunk[V]) UnsafeGetIndex(index int) V {
	return c.voxels[index]
}

// UnsafeSetIndex записывает воксель по линейному индексу без проверки.
func (c *Chunk[V]) UnsafeSetIndex(index int, v V) {
	c.voxels[index] = v
}

// Fill заполняет весь чанк указанным вокселем.
// Для нулевого (Null) вокселя используется быстрое обнуление массива;
// результат побитово идентичен поэлементной записи.
func (c *Chunk[V]) Fill(v V) {
	var zero V
	if v == zero {
		clear(c.voxels)
		return
	}
	for i := range c.voxels {
		c.voxels[i] = v
	}
}

// Copy перезаписывает весь чанк из массива src.
// Длина src должна совпадать с размером чанка.
func (c *Chunk[V]) Copy(src []V) {
	if len(src) != c.size {
		panic(fmt.Sprintf("world: длина массива %d не равна размеру чанка %d",
			len(src), c.size))
	}
	copy(c.voxels, src)
}

// CopyRegion копирует прямоугольную подобласть из массива src с размерами
// srcDims в подобласть этого чанка. count задаёт размеры копируемой
// области, srcOff и dstOff — смещения в источнике и приёмнике.
//
// Копирование выполняется построчно (count.Z*count.Y строк по count.X
// вокселей): X-отрезки источника и приёмника начинаются с разных смещений
// в своих строках, поэтому одним copy всего массива обойтись нельзя.
func (c *Chunk[V]) CopyRegion(src []V, srcDims, count, srcOff, dstOff vec.Vec3) {
	if len(src) != srcDims.X*srcDims.Y*srcDims.Z {
		panic(fmt.Sprintf("world: длина массива %d не соответствует размерам %dx%dx%d",
			len(src), srcDims.X, srcDims.Y, srcDims.Z))
	}
	if count.X+srcOff.X > srcDims.X || count.Y+srcOff.Y > srcDims.Y || count.Z+srcOff.Z > srcDims.Z {
		panic(fmt.Sprintf("world: область %v со смещением %v выходит за источник %v",
			count, srcOff, srcDims))
	}
	if count.X+dstOff.X > c.lenX || count.Y+dstOff.Y > c.lenY || count.Z+dstOff.Z > c.lenZ {
		panic(fmt.Sprintf("world: область %v со смещением %v выходит за чанк %v",
			count, dstOff, c.Extents()))
	}
	if count.X <= 0 || count.Y <= 0 || count.Z <= 0 ||
		srcOff.X < 0 || srcOff.Y < 0 || srcOff.Z < 0 ||
		dstOff.X < 0 || dstOff.Y < 0 || dstOff.Z < 0 {
		panic(fmt.Sprintf("world: недопустимые параметры области: count=%v srcOff=%v dstOff=%v",
			count, srcOff, dstOff))
	}

	// Полное совпадение объёмов — единое копирование.
	if count.X == c.lenX && count.Y == c.lenY && count.Z == c.lenZ &&
		srcDims.X == c.lenX && srcDims.Y == c.lenY && srcDims.Z == c.lenZ {
		copy(c.voxels, src)
		return
	}

	srcLayer := srcDims.X * srcDims.Y
	for z := 0; z < count.Z; z++ {
		for y := 0; y < count.Y; y++ {
			si := PosToIndex(srcOff.X, srcOff.Y+y, srcOff.Z+z, srcDims.X, srcLayer)
			di := PosToIndex(dstOff.X, dstOff.Y+y, dstOff.Z+z, c.lenX, c.layerSize)
			copy(c.voxels[di:di+count.X], src[si:si+count.X])
		}
	}
}
