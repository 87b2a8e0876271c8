package domain

import "time"

// RecordMeta holds the fields the record store manages on every persisted
// record. Callers never set these directly; the store stamps them on
// create/update.
type RecordMeta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta exposes the record metadata for the generic store.
func (m *RecordMeta) Meta() *RecordMeta { return m }

// Keyed is implemented by every persisted record via the embedded RecordMeta.
type Keyed interface {
	Meta() *RecordMeta
}
