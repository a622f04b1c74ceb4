package utils

import "strings"

// Contains checks if a slice contains a specific element.
// It uses type parameters to work with any slice type.
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

// NormalizeAddress lowercases a hex address so that lookups and signer
// comparisons are case-insensitive.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}
