package dto

// MediaUploadResp POST /api/posts/media
type MediaUploadResp struct {
	MediaURL  string `json:"media_url"`
	MediaType string `json:"media_type"`
	Filename  string `json:"filename"`
}

// ProfileImageResp POST /api/profile/image
type ProfileImageResp struct {
	ImageURL string `json:"image_url"`
}
