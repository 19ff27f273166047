package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
)

func TestValidStatusTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.StatusActive, entity.StatusCompleted, true},
		{entity.StatusActive, entity.StatusCancelled, true},
		{entity.StatusActive, entity.StatusActive, false},
		{entity.StatusCompleted, entity.StatusCancelled, false},
		{entity.StatusCompleted, entity.StatusActive, false},
		{entity.StatusCancelled, entity.StatusCompleted, false},
		{entity.StatusActive, "archived", false},
		{"", entity.StatusCompleted, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.ValidStatusTransition(c.from, c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleBuyer))
	assert.True(t, entity.ValidRole(entity.RoleSeller))
	assert.True(t, entity.ValidRole(entity.RoleSuperadmin))
	assert.False(t, entity.ValidRole("carrier"))
	assert.False(t, entity.ValidRole(""))
}
