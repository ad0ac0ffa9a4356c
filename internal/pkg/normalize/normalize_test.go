package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"computer science":  "Computer Science",
		"nigeria":           "Nigeria",
		"b.tech":            "B.Tech",
		"MBA":               "MBA",
		"asha okafor":       "Asha Okafor",
		"  padded  name ":   "  Padded  Name ",
		"":                  "",
		"already Title":     "Already Title",
		"hyphen-ated name":  "Hyphen-Ated Name",
	}
	for in, want := range cases {
		assert.Equal(t, want, TitleCase(in), "input %q", in)
	}
}

func TestStudentID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "INT/INT-KV/2024-25/045", StudentID("int/int-kv/2024-25/045"))
	assert.Equal(t, "INT/INT-KV/2024-25/045", StudentID("INT/INT-KV/2024-25/045"))
}
