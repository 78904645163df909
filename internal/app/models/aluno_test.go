package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBirthDate(t *testing.T) {
	valid := "2010-04-23"
	malformed := "23/04/2010"
	empty := ""

	assert.Equal(t, &valid, NormalizeBirthDate(&valid))
	assert.Nil(t, NormalizeBirthDate(&malformed))
	assert.Nil(t, NormalizeBirthDate(&empty))
	assert.Nil(t, NormalizeBirthDate(nil))
}

func TestNormalizeBirthDateRejectsTrailingContent(t *testing.T) {
	timestamp := "2010-04-23T00:00:00Z"
	assert.Nil(t, NormalizeBirthDate(&timestamp))
}
