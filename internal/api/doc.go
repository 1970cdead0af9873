// Package api handles incoming HTTP requests, request validation and
// response formatting. Handlers decode and validate a request, call the
// account or catalog service, and write the service's result envelope with
// a status code derived from its failure kind.
package api
