package constant

import (
	"errors"
	"time"
)

const (
	CacheParentKey = "ctrunner"
)

const (
	RequestParamID       = "id"
	RequestParamUserID   = "userID"
	RequestParamRunnerID = "runnerID"
)

const (
	UserRoleAdmin = "admin"
	UserRoleUser  = "user"
)

const (
	LocalsRequestID = "request_id"
	LocalsEmail     = "email"
	LocalsClaims    = "claims"
	LocalsUser      = "user"
)

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
)

const (
	PaginationDefaultPage     = 1
	PaginationDefaultPageSize = 20
	PaginationMaxPageSize     = 100
)

// Towns are seeded with ids 1..169, one per town in the state.
const (
	TownIDMin = 1
	TownIDMax = 169
)

const (
	RunnerIDMin  = 1
	RunnerIDMax  = 9999
	NameMaxChars = 25
)

var (
	ErrInvalidContextUserType = errors.New("invalid user type in context")
	ErrMissingContextUser     = errors.New("no user in context")
)
