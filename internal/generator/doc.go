// Package generator provides the production identifier, clock, and card
// number generators injected into the card service.
package generator
