package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("label duplicated", From("label duplicated"))
	assert.Equal("line 3 label start missing", From("line %d label %v missing", 3, "start"))
}
