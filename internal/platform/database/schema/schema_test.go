package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golpohub/golpohub/internal/platform/database/schema"
)

func TestList(t *testing.T) {
	assert.Equal(t, "id, name, created_at", schema.List("", schema.Category.Columns()))
	assert.Equal(t, "c.id, c.name, c.created_at", schema.List("c", schema.Category.Columns()))
}
