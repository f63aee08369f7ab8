package logging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnip(t *testing.T) {
	assert.Equal(t, "short", Snip("short"))

	long := strings.Repeat("a", 60)
	snipped := Snip(long)
	assert.Len(t, []rune(snipped), 49)
	assert.True(t, strings.HasSuffix(snipped, "…"))

	// Multi-byte text must not be cut mid-rune.
	wide := strings.Repeat("é", 60)
	assert.Equal(t, strings.Repeat("é", 48)+"…", Snip(wide))
}

func TestIsPersonalFieldName(t *testing.T) {
	assert.True(t, IsPersonalFieldName("description"))
	assert.True(t, IsPersonalFieldName("Description"))
	assert.True(t, IsPersonalFieldName("task_description"))
	assert.True(t, IsPersonalFieldName("why_statement"))

	assert.False(t, IsPersonalFieldName("title"))
	assert.False(t, IsPersonalFieldName("goal_id"))
}

func TestSafeValue(t *testing.T) {
	assert.Equal(t, ElidedValue, SafeValue("description", "my private plans"))
	assert.Equal(t, "Morning run", SafeValue("title", "Morning run"))
}
