package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeVideo = "video/"
	MimePDF   = "application/pdf"
)

// Legacy upload allowlist: mp4, pdf, word docs and common images.
var (
	AllowedUploadTypes = []string{
		"video/mp4",
		MimePDF,
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"image/png",
		"image/jpeg",
	}
	AllowedImageTypes = []string{"image/png", "image/jpeg"}
)

const MaxUploadSize = 100 << 20 // 100 MB, matching the legacy multer limit
