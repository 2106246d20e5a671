package tone3000

import "time"

// ModelType distinguishes the downloadable file formats.
type ModelType string

const (
	ModelTypeNAM ModelType = "nam"
	ModelTypeWAV ModelType = "wav"
)

// Model is a downloadable capture belonging to a tone. URL is pre-signed and
// must still be fetched with bearer authorization.
type Model struct {
	ID        int64      `json:"id"`
	ToneID    int64      `json:"tone_id"`
	Name      string     `json:"name"`
	Type      ModelType  `json:"type"`
	Size      Size       `json:"size,omitempty"`
	URL       string     `json:"url"`
	Filename  string     `json:"filename"`
	SizeBytes int64      `json:"size_bytes,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type ModelList struct {
	Meta  ListMeta `json:"meta"`
	Items []Model  `json:"models"`
}
