package sessions

// CodeRequestInput asks for a one-time login code.
type CodeRequestInput struct {
	Body struct {
		Email string `json:"email" doc:"Address the code is sent to" format:"email" example:"family@example.com"`
	}
}

// SessionCreateInput redeems a login code for a session token.
type SessionCreateInput struct {
	Body struct {
		Email string `json:"email" doc:"Address the code was sent to"  format:"email" example:"family@example.com"`
		Code  string `json:"code"  doc:"One-time code from the email"  minLength:"4"  maxLength:"4" example:"4821"`
	}
}

// SessionDeleteInput carries the session token being revoked.
type SessionDeleteInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token of the session to end"`
}
