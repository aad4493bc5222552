package uploads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedFile(t *testing.T) {
	assert.True(t, AllowedFile("receipt.pdf"))
	assert.True(t, AllowedFile("photo.JPG"))
	assert.True(t, AllowedFile("scan.jpeg"))
	assert.True(t, AllowedFile("scan.png"))
	assert.False(t, AllowedFile("evil.exe"))
	assert.False(t, AllowedFile("noextension"))
}

func TestSecureFilename(t *testing.T) {
	assert.Equal(t, "receipt.pdf", SecureFilename("receipt.pdf"))
	assert.Equal(t, "passwd", SecureFilename("../../etc/passwd"))
	assert.Equal(t, "my_receipt__1_.png", SecureFilename("my receipt (1).png"))
	assert.Equal(t, "", SecureFilename("..."))
}
