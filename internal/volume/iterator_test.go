package volume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y, z int }

func collect(size int, walk func(int, IterFunc)) []point {
	var points []point
	walk(size, func(x, y, z int) {
		points = append(points, point{x, y, z})
	})
	return points
}

func TestExpandVisitsEveryPointOnce(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5, 8, 9} {
		points := collect(size, Expand)
		require.Len(t, points, size*size*size, "Обход куба %d должен посетить каждую точку", size)

		seen := make(map[point]bool, len(points))
		for _, p := range points {
			require.False(t, seen[p], "Точка %v посещена повторно при размере %d", p, size)
			require.True(t, p.x >= 0 && p.x < size && p.y >= 0 && p.y < size && p.z >= 0 && p.z < size,
				"Точка %v вне куба %d", p, size)
			seen[p] = true
		}
	}
}

func TestExpandEvenStartsAtInnerCube(t *testing.T) {
	points := collect(4, Expand)
	require.Len(t, points, 64)

	// Первые 8 точек — внутренний куб {1,2}^3
	for _, p := range points[:8] {
		assert.True(t, p.x >= 1 && p.x <= 2 && p.y >= 1 && p.y <= 2 && p.z >= 1 && p.z <= 2,
			"Точка %v должна лежать во внутреннем кубе", p)
	}

	// Остальные 56 — внешняя оболочка
	for _, p := range points[8:] {
		onSurface := p.x == 0 || p.x == 3 || p.y == 0 || p.y == 3 || p.z == 0 || p.z == 3
		assert.True(t, onSurface, "Точка %v должна лежать на поверхности куба", p)
	}
}

func TestExpandOddStartsAtCenter(t *testing.T) {
	points := collect(5, Expand)
	require.NotEmpty(t, points)
	assert.Equal(t, point{2, 2, 2}, points[0], "Первой должна посещаться центральная точка")
}

func TestShrinkEndsAtCenter(t *testing.T) {
	points := collect(5, Shrink)
	require.Len(t, points, 125)
	assert.Equal(t, point{2, 2, 2}, points[len(points)-1], "Последней должна посещаться центральная точка")

	// Первая оболочка — внешняя поверхность куба
	for _, p := range points[:98] {
		onSurface := p.x == 0 || p.x == 4 || p.y == 0 || p.y == 4 || p.z == 0 || p.z == 4
		require.True(t, onSurface, "Точка %v первой оболочки должна лежать на поверхности", p)
	}
}

func TestExpandShrinkSamePointSet(t *testing.T) {
	for _, size := range []int{2, 3, 6, 7} {
		expanded := collect(size, Expand)
		shrunk := collect(size, Shrink)
		require.Equal(t, len(expanded), len(shrunk))

		// Наборы точек совпадают, порядок противоположный по оболочкам
		set := make(map[point]bool, len(expanded))
		for _, p := range expanded {
			set[p] = true
		}
		for _, p := range shrunk {
			require.True(t, set[p], "Точка %v сжатия отсутствует в расширении (размер %d)", p, size)
		}
	}
}

func TestVolumeMinimumSize(t *testing.T) {
	assert.Panics(t, func() { Expand(1, func(x, y, z int) {}) }, "Размер 1 должен вызывать панику")
	assert.Panics(t, func() { Shrink(0, func(x, y, z int) {}) }, "Размер 0 должен вызывать панику")
	assert.NotPanics(t, func() { Expand(2, func(x, y, z int) {}) }, "Размер 2 — минимально допустимый")
}
