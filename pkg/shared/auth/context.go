package auth

// Keys under which the auth middleware stores the caller in the gin context.
const (
	AUTH_USER_ID = "auth_user_id"
	AUTH_CLAIMS  = "auth_claims"
)
