package constants

import "time"

const (
	AppName           = "lumibot"
	Version           = "v0.1.0"
	DefaultConfigDir  = "~/.config/lumibot"
	DefaultKeyringKey = "image-api-key"

	// Recency markers used by the share card ordering. Timestamps are free text and
	// are never parsed; these substrings are the whole heuristic.
	RecencyMarkerHours     = "小时"
	RecencyMarkerYesterday = "昨天"

	// Image edit constants
	DefaultImageModel      = "gemini-2.5-flash-image-preview"
	DefaultGenerateTimeout = 60 * time.Second
	MaxImageBytes          = 20 << 20
	EditedImageSuffix      = "-edited.png"

	// Circuit breaker constants
	BreakerName                = "Image-Generation"
	BreakerMaxRequests         = 1
	BreakerInterval            = 60 * time.Second
	BreakerTimeout             = 30 * time.Second
	BreakerConsecutiveFailures = 3

	// Log rotation
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	// Environment variables
	EnvAPIKey       = "LUMIBOT_API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
)
