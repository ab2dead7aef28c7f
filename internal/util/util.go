package util

import (
	"github.com/google/uuid"
)

// RandomAccount generates a random wallet account suitable for testing
func RandomAccount() string {
	return "test-" + uuid.New().String()
}
