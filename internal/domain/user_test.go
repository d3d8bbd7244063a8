package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/schema"
)

func TestUserSchemaConversion(t *testing.T) {
	rec, err := schema.NewUser(3, "juan carlos", "juan@ejemplo.com", "+1 (555) 123-4567")
	require.NoError(t, err)

	row := UserFromSchema(rec)
	assert.Equal(t, rec.ID, row.ID)
	assert.Equal(t, "Juan Carlos", row.Name)
	assert.Equal(t, rec.Email, row.Email)
	assert.Equal(t, rec.Phone, row.Phone)
	assert.True(t, row.Active)
	assert.False(t, row.Admin)
	assert.True(t, row.CreatedAt.IsZero(), "timestamps belong to the storage layer")

	back := row.Schema()
	assert.Equal(t, *rec, *back)
}

func TestUser_ApplyUpdate(t *testing.T) {
	phone := "5551234567"
	row := &User{ID: 1, Name: "Juan Carlos", Email: "juan@ejemplo.com", Phone: &phone, Active: true}

	name := "maría elena"
	inactive := false
	up := &schema.UserUpdate{Name: &name, Active: &inactive}
	require.NoError(t, up.Validate())

	row.ApplyUpdate(up)
	assert.Equal(t, "María Elena", row.Name)
	assert.False(t, row.Active)
	assert.Equal(t, "juan@ejemplo.com", row.Email, "absent fields untouched")
	require.NotNil(t, row.Phone)
	assert.Equal(t, phone, *row.Phone)
}
