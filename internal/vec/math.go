package vec

// FloorDiv делит a на b с округлением вниз.
// Обычное деление в Go усекает к нулю, из-за чего отрицательные
// координаты попадали бы не в тот чанк. b > 0.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// FloorMod возвращает неотрицательный остаток от деления a на b. b > 0.
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
