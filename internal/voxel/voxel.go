package voxel

// ID представляет идентификатор типа вокселя.
// Значения ниже PredefinedCount зарезервированы движком,
// всё остальное определяется вызывающим кодом.
type ID uint16

const (
	// Null — пустой воксель (воздух).
	Null ID = 0
	// Unknown — отсутствующий или ещё не сгенерированный воксель.
	Unknown ID = 1
	// Debug — служебный воксель для отладки.
	Debug ID = 2
	// PredefinedCount — количество зарезервированных идентификаторов.
	PredefinedCount ID = 3
)

// Voxel ограничивает типы элементов чанка беззнаковыми целыми.
// Нулевое значение типа всегда трактуется как Null.
type Voxel interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}
