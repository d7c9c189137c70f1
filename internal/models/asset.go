package models

import "time"

// AssetRecord describes one persisted audio file owned by a user. Filename
// is unique within the owner's list and acts as the external identifier for
// lookup and delete; FilePath always points inside the owner's exclusive
// audio directory.
type AssetRecord struct {
	Filename      string    `json:"filename"`
	FilePath      string    `json:"filepath"`
	SourceText    string    `json:"text"`
	CreatedAt     time.Time `json:"created_at"`
	FileSizeBytes int64     `json:"file_size"`
}
