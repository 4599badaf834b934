package security

import (
	"time"

	"github.com/google/uuid"
)

// Maker makes a new token
type Maker interface {

	// CreateToken creates a new token for a specific user and duration
	CreateToken(userID uuid.UUID, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not
	VerifyToken(token string) (*Payload, error)
}
