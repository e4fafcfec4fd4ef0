package entity

// Product representa un producto terminado fabricable.
// Sus materias primas se relacionan vía materia_prima_producto.
type Product struct {
	ID   int64
	Name string
}
