package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_IsEmpty(t *testing.T) {
	assert.True(t, Document{}.IsEmpty())
	assert.True(t, Document{RawText: "   \n\t"}.IsEmpty())
	assert.False(t, Document{RawText: "Python developer"}.IsEmpty())
	// Skills alone do not make a document usable.
	assert.True(t, Document{Skills: []string{"Python"}}.IsEmpty())
}
