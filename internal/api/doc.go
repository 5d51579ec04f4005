// Package api provides the HTTP handlers for the card issuing API.
//
// Handlers decode transport payloads into domain requests, delegate to the
// service layer and translate its outcomes into responses: created cards as
// 201, validation failures as 400 carrying the offending field, and system
// faults as 500 with a generic message.
package api
