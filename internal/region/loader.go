// Package region реализует потоковую загрузку мира: чанки вокруг
// фокусной точки загружаются из хранилища или генерируются, в порядке
// расширяющихся оболочек — ближайшие к точке первыми.
package region

import (
	"fmt"

	"github.com/annel0/voxelgrid/internal/gen"
	"github.com/annel0/voxelgrid/internal/storage"
	"github.com/annel0/voxelgrid/internal/vec"
	"github.com/annel0/voxelgrid/internal/volume"
	"github.com/annel0/voxelgrid/internal/voxel"
	"github.com/annel0/voxelgrid/internal/world"
)

// Loader управляет кэшем загруженных чанков вокруг фокусной точки.
// Кластеры, собранные из кэша, держат заимствованные ссылки: чанк
// обязан оставаться в кэше, пока кластер используется.
//
// Loader не синхронизирован: доступ только из одной горутины.
type Loader struct {
	repo      storage.ChunkRepo
	generator *gen.Generator
	chunks    map[vec.Vec3]*world.Chunk[voxel.ID]
}

// NewLoader создаёт загрузчик поверх хранилища и генератора
func NewLoader(repo storage.ChunkRepo, generator *gen.Generator) *Loader {
	return &Loader{
		repo:      repo,
		generator: generator,
		chunks:    make(map[vec.Vec3]*world.Chunk[voxel.ID]),
	}
}

// Loaded возвращает количество чанков в кэше
func (l *Loader) Loaded() int {
	return len(l.chunks)
}

// Chunk возвращает чанк из кэша по координатам в сетке чанков
func (l *Loader) Chunk(coords vec.Vec3) (*world.Chunk[voxel.ID], bool) {
	chunk, ok := l.chunks[coords]
	return chunk, ok
}

// LoadAround загружает куб чанков со стороной 2*radius+1 вокруг center.
// Обход идёт расширяющимися оболочками, поэтому чанки, ближайшие к
// центру, оказываются в кэше первыми.
func (l *Loader) LoadAround(center vec.Vec3, radius int) error {
	if radius < 1 {
		return fmt.Errorf("недопустимый радиус загрузки: %d", radius)
	}

	size := 2*radius + 1
	var firstErr error
	volume.Expand(size, func(x, y, z int) {
		coords := center.Add(vec.Vec3{X: x - radius, Y: y - radius, Z: z - radius})
		if err := l.ensureChunk(coords); err != nil && firstErr == nil {
			firstErr = err
		}
	})
	return firstErr
}

// ensureChunk помещает чанк в кэш: из хранилища, если он сохранялся,
// иначе из генератора
func (l *Loader) ensureChunk(coords vec.Vec3) error {
	if _, ok := l.chunks[coords]; ok {
		return nil
	}

	chunk, found, err := l.repo.LoadChunk(coords)
	if err != nil {
		return fmt.Errorf("ошибка загрузки чанка %v: %w", coords, err)
	}

	if found {
		chunksLoaded.Inc()
	} else {
		chunk = l.generator.GenerateChunk(coords)
		chunksGenerated.Inc()
	}

	l.chunks[coords] = chunk
	return nil
}

// SaveAll сохраняет все чанки кэша в хранилище
func (l *Loader) SaveAll() error {
	for coords, chunk := range l.chunks {
		if err := l.repo.SaveChunk(coords, chunk); err != nil {
			return fmt.Errorf("ошибка сохранения чанка %v: %w", coords, err)
		}
		chunksSaved.Inc()
	}
	return nil
}

// UnloadAround сохраняет и выгружает куб чанков вокруг center.
// Обход идёт сжимающимися оболочками: дальние от центра чанки
// покидают кэш первыми.
func (l *Loader) UnloadAround(center vec.Vec3, radius int) error {
	if radius < 1 {
		return fmt.Errorf("недопустимый радиус выгрузки: %d", radius)
	}

	size := 2*radius + 1
	var firstErr error
	volume.Shrink(size, func(x, y, z int) {
		coords := center.Add(vec.Vec3{X: x - radius, Y: y - radius, Z: z - radius})
		chunk, ok := l.chunks[coords]
		if !ok {
			return
		}

		if err := l.repo.SaveChunk(coords, chunk); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("ошибка сохранения чанка %v: %w", coords, err)
			}
			return
		}
		chunksSaved.Inc()

		delete(l.chunks, coords)
		chunksEvicted.Inc()
	})
	return firstErr
}

// CubeClusterAt собирает кубический кластер 3x3x3 вокруг чанка с
// указанными координатами. Незагруженные соседи остаются nil-слотами;
// полноту кластера проверяет вызывающий код через IsComplete.
func (l *Loader) CubeClusterAt(coords vec.Vec3) *world.CubeCluster[voxel.ID] {
	var chunks [world.CubeSize]*world.Chunk[voxel.ID]
	for i, offset := range world.CubeOffsets {
		chunks[i] = l.chunks[coords.Add(offset)]
	}
	return world.NewCubeCluster(chunks)
}

// FaceClusterAt собирает кластер граней вокруг чанка с указанными
// координатами. Незагруженные соседи остаются nil-ссылками.
func (l *Loader) FaceClusterAt(coords vec.Vec3) *world.FaceCluster[voxel.ID] {
	return world.NewFaceCluster(
		l.chunks[coords],
		l.chunks[coords.Add(vec.Vec3{X: -1})],
		l.chunks[coords.Add(vec.Vec3{X: 1})],
		l.chunks[coords.Add(vec.Vec3{Y: -1})],
		l.chunks[coords.Add(vec.Vec3{Y: 1})],
		l.chunks[coords.Add(vec.Vec3{Z: -1})],
		l.chunks[coords.Add(vec.Vec3{Z: 1})],
	)
}
