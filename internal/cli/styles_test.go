package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CI", "")
	var buf bytes.Buffer

	assert.True(t, useColor("always", &buf))
	assert.False(t, useColor("never", &buf))
	assert.False(t, useColor("auto", &buf), "a buffer is not a terminal")
}

func TestUseColor_EnvironmentDisables(t *testing.T) {
	for _, env := range []string{"NO_COLOR", "CI"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("CI", "")
			t.Setenv(env, "1")
			assert.False(t, useColor("auto", &bytes.Buffer{}))
			assert.True(t, useColor("always", &bytes.Buffer{}))
		})
	}
}

func TestNewStyles_PlainLeavesTextUnchanged(t *testing.T) {
	st := newStyles(false)
	assert.Equal(t, "header", st.Title.Render("header"))
	assert.Equal(t, "FATAL", st.Fatal.Render("FATAL"))
}
