package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Ana Perez", "ana perez"},
		{"ANA  PEREZ", "ana perez"},
		{"  ana\tperez  ", "ana perez"},
		{"Carlos Ruiz", "carlos ruiz"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeName(tc.in))
	}
}

func TestSameName(t *testing.T) {
	assert.True(t, SameName("Ana Perez", "ANA  PEREZ"))
	assert.True(t, SameName("ana perez", "Ana Perez"))
	assert.False(t, SameName("Carlos Ruiz", "Carlos Gomez"))
	assert.False(t, SameName("Carlos Ruiz", "Carlos"))
}
