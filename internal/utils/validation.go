package utils

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var txHashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// IsValidAddress checks if the given string is a valid EVM address.
// Note: it does not check the checksum casing, addresses are normalized to
// lowercase before storage.
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// IsValidTxHash checks if the given string is a valid transaction hash.
// Note: it does not check the actual content of the hash.
func IsValidTxHash(txHash string) bool {
	return txHashRegex.MatchString(txHash)
}

// IsValidSignatureFormat checks if the given string is a 65-byte hex encoded
// ECDSA signature with a 0x prefix.
// Note: it does not verify the signature against any message or signer.
func IsValidSignatureFormat(sigHex string) bool {
	if !strings.HasPrefix(sigHex, "0x") {
		return false
	}
	sigBytes, err := hex.DecodeString(strings.TrimPrefix(sigHex, "0x"))
	if err != nil {
		return false
	}
	return len(sigBytes) == 65
}
