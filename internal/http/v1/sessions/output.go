package sessions

// Session describes an authenticated session.
type Session struct {
	Token   string `json:"token,omitempty" doc:"Opaque bearer token; only returned on creation"`
	Email   string `json:"email"           doc:"Authenticated address"                          format:"email"`
	IsAdmin bool   `json:"isAdmin"         doc:"Whether the address is a configured super admin"`
}

// SessionCreateOutput wraps a freshly minted session.
type SessionCreateOutput struct {
	Body Session
}

// SessionGetOutput wraps the current session's identity.
type SessionGetOutput struct {
	Body Session
}
