package slug

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		dname string
		want  string
	}{
		{"plain name", "x@example.com", "John Doe", "john-doe"},
		{"mixed case + punctuation", "x@example.com", "John O'Doe, Jr.", "john-odoe-jr"},
		{"extra whitespace", "x@example.com", "  John   Doe  ", "john-doe"},
		{"existing hyphens collapse", "x@example.com", "a--b---c", "a-b-c"},
		{"leading/trailing hyphens trimmed", "x@example.com", "-john-", "john"},
		{"falls back to email local part", "john.doe@example.com", "", "johndoe"},
		{"thai characters stripped, digits kept", "x@example.com", "สมชาย 99", "99"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Generate(tt.email, tt.dname))
		})
	}
}

// ทุก output ต้อง lowercase, มีแค่ [a-z0-9-], ไม่มี "-" นำ/ท้าย, ไม่มี "--"
func TestGenerate_OutputShape(t *testing.T) {
	t.Parallel()

	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	inputs := []string{
		"Alice Wonderland", "BOB!!", "a  b\tc", "Ж Ж Ж x", "user@name#1",
	}
	for _, in := range inputs {
		got := Generate("fallback@example.com", in)
		require.Regexp(t, valid, got, "input %q produced %q", in, got)
	}
}

func TestGenerate_EmptyLocalPartFallsBack(t *testing.T) {
	t.Parallel()

	got := Generate("@x.com", "")
	require.Regexp(t, `^user-[0-9a-f]{8}$`, got)
}

func TestGenerateUnique_BaseFree(t *testing.T) {
	t.Parallel()

	got, err := GenerateUnique("x@example.com", "John Doe", func(string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "john-doe", got)
}

func TestGenerateUnique_ProbesSuffixes(t *testing.T) {
	t.Parallel()

	taken := map[string]bool{"john-doe": true, "john-doe-1": true}
	got, err := GenerateUnique("x@example.com", "John Doe", func(s string) (bool, error) {
		return taken[s], nil
	})
	require.NoError(t, err)
	assert.Equal(t, "john-doe-2", got)
}

// documents the known race: probe ที่ไม่ atomic ทำให้สองคนได้ slug เดียวกันได้
// (ชั้นกันจริงคือ unique index ตอน insert)
func TestGenerateUnique_ConcurrentProbesCanCollide(t *testing.T) {
	t.Parallel()

	neverTaken := func(string) (bool, error) { return false, nil }
	a, err := GenerateUnique("x@example.com", "John Doe", neverTaken)
	require.NoError(t, err)
	b, err := GenerateUnique("x@example.com", "John Doe", neverTaken)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateUnique_Exhausted(t *testing.T) {
	t.Parallel()

	_, err := GenerateUnique("x@example.com", "John Doe", func(string) (bool, error) {
		return true, nil
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestGenerateUnique_ProbeErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	_, err := GenerateUnique("x@example.com", "John Doe", func(string) (bool, error) {
		return false, boom
	})
	require.ErrorIs(t, err, boom)
}
