package repositories

// Record is anything that can live in a Collection. Key must be stable for
// the lifetime of the record.
type Record interface {
	Key() string
}
