package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// Roles carried in JWT claims
const (
	RoleOrganizer   = "organizer"
	RoleParticipant = "participant"
)

// Database defaults
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Redis key prefixes
const (
	RedisKeyTimelineCache  = "calfind:timeline:"  // + project id
	RedisChannelProject    = "calfind:project:"   // + project id, pub/sub channel
	RedisKeyTokenBlacklist = "calfind:blacklist:" // + raw token
)

// Asynq task types
const (
	TaskDocumentReminder = "document:reminder"
)

// Document upload limits
const (
	MaxDocumentSizeBytes = 20 << 20 // 20 MiB
)

// Signed URL lifetime in minutes
const (
	DocumentURLExpiryMinutes = 15
)
