package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_PlainLabelIsItsOwnValue(t *testing.T) {
	o := Plain("Junior")
	assert.Equal(t, PlainLabel, o.Kind())
	assert.Equal(t, "Junior", o.Value())
	assert.Equal(t, "Junior", o.Label())
	assert.Empty(t, o.Description())
}

func TestOption_Labeled(t *testing.T) {
	o := Labeled("mr", "Mr.")
	assert.Equal(t, LabeledOption, o.Kind())
	assert.Equal(t, "mr", o.Value())
	assert.Equal(t, "Mr.", o.Label())
}

func TestOption_Described(t *testing.T) {
	o := Described("mentor", "Mentor", "Guide mentees")
	assert.Equal(t, LabeledOption, o.Kind())
	assert.Equal(t, "Guide mentees", o.Description())
}

func TestPlains(t *testing.T) {
	opts := Plains("a", "b")
	assert.Len(t, opts, 2)
	assert.Equal(t, "b", opts[1].Label())
}
