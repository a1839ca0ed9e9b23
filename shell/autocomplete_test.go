package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completions(c *ShellCompleter, line string) []string {
	matches, _ := c.Do([]rune(line), len(line))
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(m)
	}
	return out
}

func TestCompleteCommandNames(t *testing.T) {
	c := NewShellCompleter(testController(t))
	assert.ElementsMatch(t, []string{"ave", "et", "how", "cript"}, completions(c, "s"))
	assert.Equal(t, []string{"oves"}, completions(c, "m"))
}

func TestCompleteArgs(t *testing.T) {
	sc := testController(t)
	c := NewShellCompleter(sc)
	assert.ElementsMatch(t, []string{"start", "empty"}, completions(c, "new "))
	assert.Equal(t, []string{"irst"}, completions(c, "place f"))
	assert.Equal(t, []string{"desc"}, completions(c, "save pos.yaml -"))
	assert.Equal(t, []string{"rue"}, completions(c, "set cache t"))

	run(t, sc, "new empty")
	run(t, sc, "place first 3,5 1,1")
	assert.ElementsMatch(t, []string{"1,1", "3,5"}, completions(c, "moves "))
	assert.Equal(t, []string{",5"}, completions(c, "moves 3"))
}
