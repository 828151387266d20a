package domain

import "strconv"

// TaggedFile is an element of GET /tags/:tag.
type TaggedFile struct {
	Media
	TagID int    `json:"tag_id,omitempty"`
	Tag   string `json:"tag"`
}

type Tag struct {
	FileID int    `json:"file_id"`
	Tag    string `json:"tag"`
}

// AvatarTag is the tag whose newest file is the user's avatar.
func AvatarTag(userID int) string {
	return "avatar_" + strconv.Itoa(userID)
}
