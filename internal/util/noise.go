package util

import (
	"github.com/aquilax/go-perlin"
)

// Noise оборачивает генератор шума Перлина с фиксированным сидом.
// В отличие от глобального генератора, каждый экземпляр детерминирован
// относительно своего сида, поэтому разные миры не влияют друг на друга.
type Noise struct {
	p *perlin.Perlin
}

// NewNoise создаёт генератор шума Перлина с указанным сидом
func NewNoise(seed int64) *Noise {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &Noise{p: perlin.NewPerlin(alpha, beta, n, seed)}
}

// Noise2D возвращает значение шума для указанных координат (от 0 до 1)
func (n *Noise) Noise2D(x, y float64) float64 {
	// Получаем значение шума (от -1 до 1) и приводим к диапазону 0..1
	return (n.p.Noise2D(x, y) + 1.0) / 2.0
}

// Noise3D возвращает значение объёмного шума для указанных координат (от 0 до 1)
func (n *Noise) Noise3D(x, y, z float64) float64 {
	return (n.p.Noise3D(x, y, z) + 1.0) / 2.0
}
