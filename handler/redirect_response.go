package handler

import "net/http"

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a redirect response with status 303 (See Other).
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode creates a redirect response with a specific status code.
// Valid codes are 301, 302, 303, 307 and 308.
//
// Example:
//
//	return handler.RedirectWithCode("/tools", http.StatusTemporaryRedirect)
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}
