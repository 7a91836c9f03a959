package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// The id column is uuid-typed; a CR- identifier bound against it fails
// the whole query, so lookups must pick the column by identifier shape.
func TestRegistrationLookupColumn(t *testing.T) {
	t.Run("row uuid targets id", func(t *testing.T) {
		assert.Equal(t, "id", registrationLookupColumn(uuid.New().String()))
	})

	t.Run("public copyright id targets copyright_id", func(t *testing.T) {
		assert.Equal(t, "copyright_id", registrationLookupColumn("CR-MB3K2A-X1Y2Z3"))
	})

	t.Run("arbitrary garbage never targets the uuid column", func(t *testing.T) {
		assert.Equal(t, "copyright_id", registrationLookupColumn(""))
		assert.Equal(t, "copyright_id", registrationLookupColumn("not-a-uuid"))
	})
}
