// Package api is the HTTP transport to the notes backend.
//
// Every backend operation is a POST to <base>/<endpoint> with an
// application/x-www-form-urlencoded body and, for authenticated operations,
// an "Authorization: Bearer <token>" header. Replies are JSON objects with at
// least a "status" field ("SUCCESS" or an error indicator) and optionally
// "msg"/"error" texts.
//
// Client methods return *Response and never a Go error. When no reply can be
// obtained (connection refused, timeout, undecodable body) the response is
// NetworkFailure(): StatusCode 0 and a fixed FAILED payload. Callers decide
// what a status means; the session layer treats 401 as an expired access
// token.
package api
