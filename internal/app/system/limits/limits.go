// internal/app/system/limits/limits.go
package limits

// Request body size limits for various endpoints.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBodySize is the maximum size for ordinary JSON request bodies.
	MaxJSONBodySize = 1 << 20 // 1 MB

	// MaxCourseBodySize is the maximum size for teacher-course payloads,
	// which may embed a base64 thumbnail data URI.
	MaxCourseBodySize = 8 << 20 // 8 MB

	// MaxAvatarUploadSize is the maximum size for multipart avatar uploads.
	MaxAvatarUploadSize = 2 << 20 // 2 MB
)
