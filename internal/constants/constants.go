package constants

// Centralized constants for env keys, routes and shared strings.
const (
	// Environment variable keys
	EnvConfig        = "FRENZY_CONFIG"
	EnvDB            = "FRENZY_DB"
	EnvSessionSecret = "SESSION_SECRET"
	EnvSecureCookie  = "SESSION_SECURE_COOKIE"
	EnvDebug         = "FRENZY_DEBUG"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	ContentTypeJSON     = "application/json"
	BearerPrefix        = "Bearer "

	// Session / cookie names
	CookieSessionName = "sf_session"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteSession       = "/session"
	RoutePlayer        = "/player"
	RouteClick         = "/player/click"
	RouteAssistants    = "/assistants"
	RouteAssistantsBuy = "/assistants/buy"
	RouteBattleState   = "/battle"
	RouteBattleEngage  = "/battle/engage"
	RouteBattleLedger  = "/battle/ledger"
	RouteBattleUnlock  = "/battle/unlock"
	RoutePlayerBuffs   = "/player/buffs"
	RouteLeaderboard   = "/leaderboard"
	RouteHealth        = "/healthz"
	RouteVersion       = "/version"
)

// JSON keys and error strings returned by the API
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"

	ErrInvalidRequest  = "invalid request"
	ErrAuthRequired    = "authentication required"
	ErrInvalidSession  = "invalid session"
	ErrPlayerNotFound  = "player not found"
	ErrUnknownKind     = "unknown assistant kind"
	ErrNotEnoughSnow   = "not enough snowballs"
	ErrFailedPersist   = "failed to persist state"
	ErrBattleUnavail   = "battle engine unavailable"
)

// Structured log field names
const (
	LogFieldAddr       = "addr"
	LogFieldPlayerUUID = "player_uuid"
	LogFieldActorID    = "actor_id"
)
