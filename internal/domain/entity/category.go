package entity

// Category agrupa productos. El nombre es único (comparación exacta, tal como se guardó).
type Category struct {
	ID   string `db:"id"`
	Name string `db:"nombre"`
}
