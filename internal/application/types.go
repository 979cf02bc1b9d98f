package application

// CreateAccountRequest carries the inputs of account registration.
// ClientIP is optional; when present it feeds the per-identity rate limiter.
type CreateAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	ClientIP string `json:"-"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	ClientIP string `json:"-"`
}

// SessionDescriptor is what a successful login or registration hands back:
// the bearer token and how long the cache will honor it.
type SessionDescriptor struct {
	SessionToken  string `json:"session_token"`
	TimeToLiveSec int64  `json:"time_to_live_sec"`
}
