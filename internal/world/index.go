package world

// PosToIndex преобразует координаты вокселя в линейный индекс внутри
// плотного массива. Раскладка row-major: X меняется быстрее всего,
// затем Y, затем Z. Границы не проверяются — за корректность координат
// отвечает вызывающий код.
func PosToIndex(x, y, z, length, layerSize int) int {
	return z*layerSize + y*length + x
}

// IndexToPos выполняет обратное преобразование линейного индекса в
// координаты. Для любого индекса в пределах объёма является точной
// инверсией PosToIndex.
func IndexToPos(index, length, layerSize int) (x, y, z int) {
	z = index / layerSize
	rem := index % layerSize
	y = rem / length
	x = rem % length
	return x, y, z
}
