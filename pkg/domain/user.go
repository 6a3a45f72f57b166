package domain

import "github.com/google/uuid"

// ClientID identifies an authenticated API client (a browser extension or
// desktop agent installation). It wraps uuid.UUID to provide type safety at
// the domain layer.
type ClientID uuid.UUID

// String returns the canonical UUID representation.
func (c ClientID) String() string { return uuid.UUID(c).String() }
