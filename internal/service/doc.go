// Package service implements the card creation use case. It orchestrates
// request validation, card assembly from injected generators and a single
// persistence call, and classifies failures as client or system faults.
package service
