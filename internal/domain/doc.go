// Package domain contains the card issuing core: the untrusted request and
// external record shapes, the ordered field validation that turns a request
// into a ValidatedCard, and the Card entity assembled from it with injected
// identifier, clock, and number generators.
package domain
