package repository

import "net/http"

// Session carries the caller's bearer credential. It is passed explicitly
// into every repository call; there is no ambient auth state. A zero Session
// simply omits the Authorization header and lets the backend decide.
type Session struct {
	Token string
}

func (s Session) apply(req *http.Request) {
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
}
