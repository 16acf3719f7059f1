package repository

// Set agrupa los repositorios atados a una misma conexión o transacción.
// Dentro de TxRunner.Run todos comparten la transacción en curso.
type Set struct {
	Categories CategoryRepository
	Products   ProductRepository
	Movements  MovementRepository
}
