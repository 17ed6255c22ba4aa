package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
type Config struct {
	World WorldConfig `yaml:"world"`
}

// WorldConfig описывает параметры мира и загрузки регионов.
type WorldConfig struct {
	Seed       int64  `yaml:"seed"`
	DataPath   string `yaml:"data_path"`
	ChunkSizeX uint8  `yaml:"chunk_size_x"`
	ChunkSizeY uint8  `yaml:"chunk_size_y"`
	ChunkSizeZ uint8  `yaml:"chunk_size_z"`
	LoadRadius int    `yaml:"load_radius"`
}

// GetSeed возвращает сид мира с поддержкой fallback значений
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv("VOXELGRID_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}

	// Используем дефолтное значение
	return 12345
}

// GetDataPath возвращает каталог данных мира с поддержкой fallback значений
func (w *WorldConfig) GetDataPath() string {
	if w.DataPath != "" {
		return w.DataPath
	}
	if envVal := os.Getenv("VOXELGRID_DATA"); envVal != "" {
		return envVal
	}
	return "data"
}

// GetChunkSize возвращает размеры чанка, подставляя дефолт 16 по
// каждой незаданной оси
func (w *WorldConfig) GetChunkSize() (x, y, z uint8) {
	x, y, z = w.ChunkSizeX, w.ChunkSizeY, w.ChunkSizeZ
	if x == 0 {
		x = 16
	}
	if y == 0 {
		y = 16
	}
	if z == 0 {
		z = 16
	}
	return x, y, z
}

// GetLoadRadius возвращает радиус загрузки регионов в чанках
func (w *WorldConfig) GetLoadRadius() int {
	if w.LoadRadius > 0 {
		return w.LoadRadius
	}
	return 2
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VOXELGRID_CONFIG или
// возвращает nil, nil — использовать дефолты.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VOXELGRID_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
	}

	return &cfg, nil
}
