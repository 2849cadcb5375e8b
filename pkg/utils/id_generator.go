package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateID generates a new UUID for correlation or artifact IDs
func GenerateID() string {
	return uuid.New().String()
}

// GenerateRequestNumber generates a human-readable request number
func GenerateRequestNumber() string {
	return fmt.Sprintf("REQ-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8])
}

// GenerateContractNumber generates a unique contract number for asset movement contracts
func GenerateContractNumber(movementID int64) string {
	return fmt.Sprintf("CNT-%d-%s", movementID, uuid.New().String()[:8])
}

// IsValidUUID checks if a string is a valid UUID
func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
