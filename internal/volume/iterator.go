// Package volume реализует обход кубического объёма NxNxN
// концентрическими оболочками: от центра наружу или от внешнего края
// внутрь. Обход посещает каждую точку ровно один раз, не выделяет
// память и не хранит состояния, кроме двух индексов границ оболочки.
package volume

import "fmt"

// IterFunc вызывается для каждой посещённой точки объёма.
type IterFunc func(x, y, z int)

// prepare вычисляет центральную точку объёма и стартовую внешнюю
// границу первой некентральной оболочки.
func prepare(size int) (center, positive int, isEven bool) {
	center = size / 2
	isEven = size%2 == 0
	if isEven {
		center--
		positive = center + 2
	} else {
		positive = center + 1
	}
	return center, positive, isEven
}

// runCenter посещает внутреннюю область объёма: единственную
// центральную точку для нечётного размера либо внутренний куб
// (от center до positive-1 по каждой оси) для чётного.
func runCenter(fn IterFunc, center, positive int, isEven bool) {
	if !isEven {
		fn(center, center, center)
		return
	}
	for z := center; z < positive; z++ {
		for y := center; y < positive; y++ {
			for x := center; x < positive; x++ {
				fn(x, y, z)
			}
		}
	}
}

// runShell посещает поверхность куба с границами [negative, positive].
// Сначала два полных слоя X*Y при крайних z, затем слои X*Z при крайних
// y с z, ограниченным внутренним диапазоном, затем слои Y*Z с y и z,
// ограниченными внутренним диапазоном. Такой порядок исключает и
// дубликаты, и пропуски точек поверхности.
func runShell(fn IterFunc, positive, negative int) {
	negOne, posOne := negative+1, positive-1

	for y := negative; y <= positive; y++ {
		for x := negative; x <= positive; x++ {
			fn(x, y, negative)
		}
	}
	for y := negative; y <= positive; y++ {
		for x := negative; x <= positive; x++ {
			fn(x, y, positive)
		}
	}

	for z := negOne; z <= posOne; z++ {
		for x := negative; x <= positive; x++ {
			fn(x, negative, z)
		}
	}
	for z := negOne; z <= posOne; z++ {
		for x := negative; x <= positive; x++ {
			fn(x, positive, z)
		}
	}

	for z := negOne; z <= posOne; z++ {
		for y := negOne; y <= posOne; y++ {
			fn(negative, y, z)
		}
	}
	for z := negOne; z <= posOne; z++ {
		for y := negOne; y <= posOne; y++ {
			fn(positive, y, z)
		}
	}
}

func checkSize(size int) {
	if size < 2 {
		panic(fmt.Sprintf("volume: размер объёма %d меньше минимального (2)", size))
	}
}

// Expand обходит объём NxNxN от центра наружу: сначала внутренняя
// область, затем оболочки возрастающего радиуса до края объёма.
func Expand(size int, fn IterFunc) {
	checkSize(size)

	center, positive, isEven := prepare(size)
	runCenter(fn, center, positive, isEven)
	negative := center - 1

	for positive < size {
		runShell(fn, positive, negative)
		positive++
		negative--
	}
}

// Shrink обходит объём NxNxN от внешнего края внутрь: оболочки
// убывающего радиуса, последней посещается внутренняя область.
func Shrink(size int, fn IterFunc) {
	checkSize(size)

	negative, positive := 0, size-1
	for positive-negative > 1 {
		runShell(fn, positive, negative)
		positive--
		negative++
	}

	center, positive, isEven := prepare(size)
	runCenter(fn, center, positive, isEven)
}
