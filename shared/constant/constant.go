package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyLoginID  contextKey = "login_id"
	ContextKeyUserRole contextKey = "user_role"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	RoleSuperAdmin   = "SUPERADMIN"
	RoleAdmin        = "ADMIN"
	RoleManager      = "MANAGER"
	RoleReceptionist = "RECEPTIONIST"
	RoleAccountant   = "ACCOUNTANT"
	RoleSupervisor   = "SUPERVISOR"
)

const (
	RequestParamID           = "id"
	RequestParamPhone        = "phone"
	RequestParamStatus       = "status"
	RequestParamBlock        = "block"
	RequestParamConsolidated = "consolidated"
	RequestMaxMemory         = 10 << 20 // 10 MB
)

const (
	PathHealth  = "/health"
	PathMetrics = "/metrics"
)

const (
	StoreLocal  = "local"
	StoreRemote = "remote"
)

const (
	DateFormat  = time.RFC3339
	DayFormat   = "2006-01-02"
	ClockFormat = "15:04"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelS3ScopeName         = "s3"

	OtelQueryAttributeKey = "query"
	OtelTableAttributeKey = "table"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderAPIKey             = "X-API-Key"
	ResponseHeaderDisposition       = "Content-Disposition"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FormFile        = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
