// Package clientip resolves the client address of HTTP requests.
//
// Proxy headers are only consulted when explicitly trusted, since any client
// can set them:
//
//	res := clientip.New(clientip.DefaultProxyHeaders...)
//	r.Use(clientip.Middleware(res))
//
// Handlers read the address back with FromContext or FromRequest.
package clientip
