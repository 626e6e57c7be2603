package domain

import "github.com/google/uuid"

// Upload binds a generated identifier to a blob stored in the object
// store plus its original filename. Rows are write-once: an upload is
// never updated or deleted after creation.
type Upload struct {
	ID           uuid.UUID `json:"id"`
	ObjectID     uuid.UUID `json:"object_id"`
	OriginalName string    `json:"original_name"`
}
