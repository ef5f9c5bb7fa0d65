package store

// Repository is the durable key-value store. Absence of a key is a
// meaningful state and is reported as ErrRecordNotFound by Get.
type Repository interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Has(key string) (bool, error)
	Clear() error

	ExecTx(fn func(Repository) error) error
	Close() error
}
