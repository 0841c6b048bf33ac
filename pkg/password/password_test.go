package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret")

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, Verify("s3cret", hash))
	assert.False(t, Verify("wrong", hash))
}

func TestHash_SaltRandomness(t *testing.T) {
	first, err := Hash("s3cret")
	assert.NoError(t, err)

	second, err := Hash("s3cret")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("s3cret", first))
	assert.True(t, Verify("s3cret", second))
}

func TestVerify_MalformedHash(t *testing.T) {
	assert.False(t, Verify("s3cret", "not-a-bcrypt-hash"))
	assert.False(t, Verify("s3cret", ""))
}
