package main

import (
	"log"
	"os"

	"github.com/annel0/voxelgrid/internal/config"
	"github.com/annel0/voxelgrid/internal/gen"
	"github.com/annel0/voxelgrid/internal/logging"
	"github.com/annel0/voxelgrid/internal/region"
	"github.com/annel0/voxelgrid/internal/storage"
	"github.com/annel0/voxelgrid/internal/vec"
	"github.com/annel0/voxelgrid/internal/volume"
	"github.com/annel0/voxelgrid/internal/voxel"
)

func main() {
	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("voxgrid"); err != nil {
		log.Fatalf("Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("Запуск демонстрации воксельной сетки...")

	// === КОНФИГУРАЦИЯ ===
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Error("Ошибка загрузки конфигурации: %v", err)
		os.Exit(1)
	}

	var worldCfg config.WorldConfig
	if cfg != nil {
		worldCfg = cfg.World
	}

	seed := worldCfg.GetSeed()
	dataPath := worldCfg.GetDataPath()
	sizeX, sizeY, sizeZ := worldCfg.GetChunkSize()
	radius := worldCfg.GetLoadRadius()

	logging.Info("Конфигурация мира: seed=%d, чанк %dx%dx%d, радиус загрузки %d",
		seed, sizeX, sizeY, sizeZ, radius)

	// === ИНИЦИАЛИЗАЦИЯ КОМПОНЕНТОВ ===

	// Открываем хранилище чанков
	logging.Debug("Открытие хранилища в %s...", dataPath)
	repo, err := storage.NewBadgerChunkRepo(dataPath)
	if err != nil {
		logging.Error("Ошибка открытия хранилища: %v", err)
		os.Exit(1)
	}
	defer repo.Close()

	meta, err := repo.EnsureWorldMeta(seed)
	if err != nil {
		logging.Error("Ошибка чтения метаданных мира: %v", err)
		os.Exit(1)
	}
	logging.Info("Мир %s (seed=%d, создан %s)", meta.ID, meta.Seed,
		meta.CreatedAt.Format("2006-01-02 15:04:05"))

	// Создаем генератор и загрузчик регионов
	generator := gen.NewGenerator(meta.Seed, sizeX, sizeY, sizeZ)
	loader := region.NewLoader(repo, generator)

	// === ПОТОКОВАЯ ЗАГРУЗКА РЕГИОНА ===

	center := vec.Vec3{X: 0, Y: 0, Z: 0}
	if err := loader.LoadAround(center, radius); err != nil {
		logging.Error("Ошибка загрузки региона: %v", err)
		os.Exit(1)
	}
	logging.Info("Загружено чанков: %d", loader.Loaded())

	// === ЗАПРОСЫ ЧЕРЕЗ ГРАНИЦЫ ЧАНКОВ ===

	cluster := loader.CubeClusterAt(center)
	logging.Info("Кубический кластер полон: %v", cluster.IsComplete())

	// Запрос на один воксель левее центрального чанка попадает в соседа -X
	pos := vec.Vec3{X: -1, Y: 3, Z: 5}
	owner := cluster.VoxelChunk(&pos)
	logging.Info("Воксель (-1,3,5) принадлежит соседу, локальная позиция %v, значение %d",
		pos, owner.Get(pos.X, pos.Y, pos.Z))

	faces := loader.FaceClusterAt(center)
	if v, ok := faces.TryGet(int(sizeX), 3, 5); ok {
		logging.Info("Воксель за гранью +X: %d", v)
	}

	// === ПОРЯДОК ОБХОДА ОБОЛОЧЕК ===

	visited := 0
	volume.Expand(2*radius+1, func(x, y, z int) { visited++ })
	logging.Info("Расширяющийся обход куба со стороной %d посетил %d точек", 2*radius+1, visited)

	// Подсчитываем нетривиальные воксели в центральном чанке
	if chunk, ok := loader.Chunk(center); ok {
		solid := 0
		for i := 0; i < chunk.Size(); i++ {
			if chunk.UnsafeGetIndex(i) != voxel.Null {
				solid++
			}
		}
		logging.Info("Центральный чанк: %d/%d непустых вокселей", solid, chunk.Size())
	}

	// Сохраняем мир перед выходом
	if err := loader.SaveAll(); err != nil {
		logging.Error("Ошибка сохранения мира: %v", err)
		os.Exit(1)
	}
	logging.Info("Мир сохранён, завершение работы")
}
