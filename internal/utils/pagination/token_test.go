package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(date, 42)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedSeq, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, date, decodedDate, "Date should match after decode")
	assert.Equal(t, int64(42), decodedSeq, "Sequence should match after decode")

	now := time.Now().UTC()
	decodedNow, _, err := DecodeToken(EncodeToken(now, 1))
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSep := base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))
	_, _, err = DecodeToken(noSep)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.StdEncoding.EncodeToString([]byte("notadate|7"))
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	badSeq := base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|seven"))
	_, _, err = DecodeToken(badSeq)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sequence parse")
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 5, NormalizeLimit(5))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}
