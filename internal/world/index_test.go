package world

import "testing"

func TestIndexRoundTrip(t *testing.T) {
	const lenX, lenY, lenZ = 5, 7, 3
	layerSize := lenX * lenY

	// Каждая позиция должна восстанавливаться из своего индекса
	for z := 0; z < lenZ; z++ {
		for y := 0; y < lenY; y++ {
			for x := 0; x < lenX; x++ {
				index := PosToIndex(x, y, z, lenX, layerSize)
				gx, gy, gz := IndexToPos(index, lenX, layerSize)
				if gx != x || gy != y || gz != z {
					t.Errorf("Ожидалась позиция (%d,%d,%d), получено (%d,%d,%d)",
						x, y, z, gx, gy, gz)
				}
			}
		}
	}
}

func TestIndexInjective(t *testing.T) {
	const lenX, lenY, lenZ = 4, 6, 5
	layerSize := lenX * lenY
	size := lenX * lenY * lenZ

	seen := make(map[int]bool, size)
	for z := 0; z < lenZ; z++ {
		for y := 0; y < lenY; y++ {
			for x := 0; x < lenX; x++ {
				index := PosToIndex(x, y, z, lenX, layerSize)
				if index < 0 || index >= size {
					t.Fatalf("Индекс %d для (%d,%d,%d) вне диапазона [0,%d)", index, x, y, z, size)
				}
				if seen[index] {
					t.Fatalf("Индекс %d получен повторно для (%d,%d,%d)", index, x, y, z)
				}
				seen[index] = true
			}
		}
	}

	if len(seen) != size {
		t.Errorf("Ожидалось %d уникальных индексов, получено %d", size, len(seen))
	}
}

func TestIndexRowMajorOrder(t *testing.T) {
	// X меняется быстрее всего: соседние по X позиции дают соседние индексы
	if PosToIndex(1, 0, 0, 8, 64)-PosToIndex(0, 0, 0, 8, 64) != 1 {
		t.Error("Шаг по X должен изменять индекс на 1")
	}
	if PosToIndex(0, 1, 0, 8, 64)-PosToIndex(0, 0, 0, 8, 64) != 8 {
		t.Error("Шаг по Y должен изменять индекс на length")
	}
	if PosToIndex(0, 0, 1, 8, 64)-PosToIndex(0, 0, 0, 8, 64) != 64 {
		t.Error("Шаг по Z должен изменять индекс на layerSize")
	}
}
