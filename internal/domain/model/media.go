package model

import "time"

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media is one row per uploaded asset. StorageKey is the backend key
// ({section}/{filename}); ProviderURL is set only by backends that expose a
// directly fetchable public URL, and read paths must prefer it over deriving
// a URL from StorageKey.
type Media struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"size:255;not null" json:"filename"`
	OriginalName string    `gorm:"size:255;not null" json:"original_name"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Section      string    `gorm:"size:100;not null;index" json:"section"`
	MediaType    string    `gorm:"size:20;not null;index" json:"media_type"`
	StorageKey   string    `gorm:"size:500;not null" json:"-"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `gorm:"size:100" json:"mime_type"`
	ProviderURL  string    `gorm:"size:500" json:"-"`
	UploadDate   time.Time `gorm:"index" json:"upload_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Media) TableName() string {
	return "media"
}
