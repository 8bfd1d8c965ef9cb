package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FieldsOrder(t *testing.T) {
	m := Metadata{MachineName: "Blue", Date: "2024-01-01", Author: "R0b1"}

	var labels []string
	for _, f := range m.Fields() {
		labels = append(labels, f.Label)
	}

	assert.Equal(t, []string{
		"Machine Name", "Platform", "IP / Host", "Date", "Author", "Difficulty Level", "Goal",
	}, labels)
	assert.Equal(t, "Blue", m.Fields()[0].Value)
}

func TestMetadata_LookupAndSet(t *testing.T) {
	var m Metadata

	assert.True(t, m.Set("IP / Host", "10.10.10.10"))
	assert.False(t, m.Set("Flag", "nope"))

	v, ok := m.Lookup("IP / Host")
	assert.True(t, ok)
	assert.Equal(t, "10.10.10.10", v)

	v, ok = m.Lookup(" Goal ")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = m.Lookup("Flag")
	assert.False(t, ok)
}
