package dto

// MediaUploadResult 上传成功后返回可直接写入 image_urls 的公开地址
type MediaUploadResult struct {
	URL string `json:"url"`
}
