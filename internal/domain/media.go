package domain

import "time"

type Thumbnails struct {
	W160 string `json:"w160,omitempty"`
	W320 string `json:"w320,omitempty"`
	W640 string `json:"w640,omitempty"`
}

// Media is a file record as the media API returns it from GET /media/:id.
type Media struct {
	FileID      int         `json:"file_id"`
	UserID      int         `json:"user_id"`
	Filename    string      `json:"filename"`
	Filesize    int64       `json:"filesize,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	MediaType   string      `json:"media_type,omitempty"`
	MimeType    string      `json:"mime_type,omitempty"`
	TimeAdded   time.Time   `json:"time_added"`
	Thumbnails  *Thumbnails `json:"thumbnails,omitempty"`
}

// Preview returns the smallest available rendition, falling back to the file itself.
func (m Media) Preview() string {
	if m.Thumbnails != nil {
		switch {
		case m.Thumbnails.W320 != "":
			return m.Thumbnails.W320
		case m.Thumbnails.W160 != "":
			return m.Thumbnails.W160
		case m.Thumbnails.W640 != "":
			return m.Thumbnails.W640
		}
	}
	return m.Filename
}

type MediaUpdate struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Upload is the multipart body of POST /media.
type Upload struct {
	Title       string
	Description string
	Filename    string
	Data        []byte
}

// MutationResult covers the small acknowledgement bodies of POST/PUT/DELETE calls.
type MutationResult struct {
	Message     string `json:"message"`
	FileID      int    `json:"file_id,omitempty"`
	TagID       int    `json:"tag_id,omitempty"`
	FavouriteID int    `json:"favourite_id,omitempty"`
	CommentID   int    `json:"comment_id,omitempty"`
	UserID      int    `json:"user_id,omitempty"`
}
