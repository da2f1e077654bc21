package domain

import "github.com/google/uuid"

// MarshalText encodes the ID in its canonical UUID form.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a canonical UUID.
func (id *UserID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// MarshalText encodes the ID in its canonical UUID form.
func (id ServiceID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a canonical UUID.
func (id *ServiceID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// MarshalText encodes the ID in its canonical UUID form.
func (id ScanID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a canonical UUID.
func (id *ScanID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }
