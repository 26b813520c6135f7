package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	transactionDate := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	transactionID := "3f1a4b9e-1111-2222-3333-444455556666"

	token := EncodeToken(transactionDate, createdAt, transactionID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedCreatedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, transactionDate, decodedDate, "Transaction date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
	assert.Equal(t, transactionID, decodedID, "Transaction ID should match after decode")

	// Zero time values round-trip too
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime, transactionID)
	decodedZeroDate, decodedZeroTime, _, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroDate)
	assert.Equal(t, zeroTime, decodedZeroTime)
}

func TestTokensDifferForTiedRows(t *testing.T) {
	// Batch imports stamp many rows with the same date and creation time;
	// the ID component must keep their cursors distinct.
	date := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 0, time.UTC)

	tokenA := EncodeToken(date, createdAt, "aaaa")
	tokenB := EncodeToken(date, createdAt, "bbbb")
	assert.NotEqual(t, tokenA, tokenB)

	_, _, idA, err := DecodeToken(tokenA)
	assert.NoError(t, err)
	assert.Equal(t, "aaaa", idA)
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing components
	invalidToken := base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|2023-05-15T14:30:45Z"))
	_, _, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split")

	// Empty ID component
	emptyIDToken := base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|2023-05-15T14:30:45Z|"))
	_, _, _, err = DecodeToken(emptyIDToken)
	assert.Error(t, err, "Should return an error for an empty ID component")
	assert.Contains(t, err.Error(), "split")

	// Invalid date part
	invalidDateToken := base64.StdEncoding.EncodeToString([]byte("notadate|2023-05-15T14:30:45.123456789Z|some-id"))
	_, _, _, err = DecodeToken(invalidDateToken)
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "transaction date parse")
}
