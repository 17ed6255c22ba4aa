package vec

import "math"

// Vec3 представляет трехмерный вектор с целочисленными координатами
type Vec3 struct {
	X int
	Y int
	Z int
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub вычитает другой вектор
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// DistanceTo возвращает евклидово расстояние до другого вектора
func (v Vec3) DistanceTo(other Vec3) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// ToChunkCoords преобразует глобальные координаты вокселя в координаты чанка
// для чанков с размерами size. Размеры не обязаны быть степенями двойки,
// поэтому используется деление с округлением вниз, а не сдвиги.
func (v Vec3) ToChunkCoords(size Vec3) Vec3 {
	return Vec3{
		X: FloorDiv(v.X, size.X),
		Y: FloorDiv(v.Y, size.Y),
		Z: FloorDiv(v.Z, size.Z),
	}
}

// LocalInChunk возвращает локальные координаты вокселя внутри его чанка
func (v Vec3) LocalInChunk(size Vec3) Vec3 {
	return Vec3{
		X: FloorMod(v.X, size.X),
		Y: FloorMod(v.Y, size.Y),
		Z: FloorMod(v.Z, size.Z),
	}
}
