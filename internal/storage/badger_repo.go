package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"github.com/annel0/voxelgrid/internal/vec"
	"github.com/annel0/voxelgrid/internal/voxel"
	"github.com/annel0/voxelgrid/internal/world"
)

// worldMetaKey — ключ записи с метаданными мира
var worldMetaKey = []byte("world:meta")

// WorldMeta содержит метаданные мира, создаваемые при первом открытии
type WorldMeta struct {
	ID        string    `json:"id"`   // UUID мира
	Seed      int64     `json:"seed"` // Сид генерации
	CreatedAt time.Time `json:"created_at"`
}

// BadgerChunkRepo реализует ChunkRepo поверх BadgerDB.
type BadgerChunkRepo struct {
	db      *badger.DB
	dbPath  string
	mutex   sync.RWMutex
	isReady bool
}

// NewBadgerChunkRepo открывает хранилище чанков в указанном каталоге
func NewBadgerChunkRepo(dataPath string) (*BadgerChunkRepo, error) {
	dbPath := filepath.Join(dataPath, "world")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	return &BadgerChunkRepo{
		db:      db,
		dbPath:  dbPath,
		isReady: true,
	}, nil
}

// Close закрывает хранилище данных
func (r *BadgerChunkRepo) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !r.isReady {
		return nil
	}

	r.isReady = false
	return r.db.Close()
}

// SaveChunk сохраняет чанк по его координатам в сетке чанков
func (r *BadgerChunkRepo) SaveChunk(coords vec.Vec3, chunk *world.Chunk[voxel.ID]) error {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if !r.isReady {
		return fmt.Errorf("хранилище не готово")
	}
	if chunk == nil {
		return fmt.Errorf("чанк не задан")
	}

	data := encodeChunk(chunk)
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(chunkKey(coords), data)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения чанка %v в BadgerDB: %w", coords, err)
	}

	return nil
}

// LoadChunk загружает чанк. Второе значение false, если чанк
// ещё не сохранялся.
func (r *BadgerChunkRepo) LoadChunk(coords vec.Vec3) (*world.Chunk[voxel.ID], bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if !r.isReady {
		return nil, false, fmt.Errorf("хранилище не готово")
	}

	var data []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chunkKey(coords))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			data = append([]byte{}, val...)
			return nil
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ошибка чтения чанка %v из BadgerDB: %w", coords, err)
	}

	chunk, err := decodeChunk(data)
	if err != nil {
		return nil, false, fmt.Errorf("ошибка десериализации чанка %v: %w", coords, err)
	}
	return chunk, true, nil
}

// HasChunk проверяет наличие чанка без его загрузки
func (r *BadgerChunkRepo) HasChunk(coords vec.Vec3) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if !r.isReady {
		return false, fmt.Errorf("хранилище не готово")
	}

	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(chunkKey(coords))
		return err
	})

	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ошибка проверки чанка %v в BadgerDB: %w", coords, err)
	}
	return true, nil
}

// EnsureWorldMeta возвращает метаданные мира, создавая запись с новым
// UUID при первом обращении. Сид сохраняется только при создании.
func (r *BadgerChunkRepo) EnsureWorldMeta(seed int64) (*WorldMeta, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if !r.isReady {
		return nil, fmt.Errorf("хранилище не готово")
	}

	var meta WorldMeta
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(worldMetaKey)
		if err == nil {
			return item.Value(func(val []byte) error {
				return json.Unmarshal(val, &meta)
			})
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		// Первое открытие мира — создаём метаданные
		meta = WorldMeta{
			ID:        uuid.NewString(),
			Seed:      seed,
			CreatedAt: time.Now().UTC(),
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return txn.Set(worldMetaKey, data)
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения метаданных мира: %w", err)
	}

	return &meta, nil
}
