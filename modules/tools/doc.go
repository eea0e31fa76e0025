// Package tools serves session-scoped tools over HTTP.
//
// A client first calls POST /session to obtain a session_id, then passes it
// on every tool call. Unknown, expired and evicted sessions all answer 404
// session_not_found; the client should create a new session.
//
//	store := session.NewFromConfig(cfg.Session, session.WithLogger(log))
//	router := tools.Router(tools.RouterOptions{
//		Config: cfg.Tools,
//		Store:  store,
//		Logger: log,
//	})
//
// Calculator input is read from the query string and from an optional JSON
// body with the same field names:
//
//	POST /tools/calculator?session_id=...&operation=add&a=2&b=3
//	POST /tools/calculator  {"session_id": "...", "operation": "add", "a": 2, "b": 3}
//
// GET /tools returns the tool manifest in the function-calling format
// consumed by LLM frameworks, including each tool's endpoint.
//
// Setting Config.SessionRateLimit caps session creation per client IP.
package tools
