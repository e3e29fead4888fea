package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Loads(t *testing.T) {
	taxonomy, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, taxonomy.Skills())
	assert.NotEmpty(t, taxonomy.Knowledge())
}

func TestFindMatchingSkill(t *testing.T) {
	taxonomy, err := Default()
	require.NoError(t, err)

	tests := []struct {
		term string
		want string
	}{
		{"Python", "python"},
		{"python3", "python"},
		{"Node.js", "node"},
		{"k8s", "kubernetes"},
		{"sql", "sql"},
		{"kubernets", "kubernetes"},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			entry := taxonomy.FindMatchingSkill(tt.term)
			require.NotNil(t, entry)
			assert.Equal(t, tt.want, entry.Name)
		})
	}
}

func TestFindMatchingSkill_NoMatch(t *testing.T) {
	taxonomy, err := Default()
	require.NoError(t, err)

	assert.Nil(t, taxonomy.FindMatchingSkill("kafka"))
	assert.Nil(t, taxonomy.FindMatchingSkill(""))
	assert.Nil(t, taxonomy.FindMatchingSkill("!!!"))
}

func TestFindMatchingSkill_ShortTermsNeedExactMatch(t *testing.T) {
	taxonomy, err := Default()
	require.NoError(t, err)

	// "reach" is one edit from "react" but too short for fuzzy lookup.
	assert.Nil(t, taxonomy.FindMatchingSkill("reach"))
}

func TestFindMatchingKnowledge(t *testing.T) {
	taxonomy, err := Default()
	require.NoError(t, err)

	entry := taxonomy.FindMatchingKnowledge("Distributed Systems")
	require.NotNil(t, entry)
	assert.Equal(t, "distributed systems", entry.Name)

	entry = taxonomy.FindMatchingKnowledge("distributed system")
	require.NotNil(t, entry)
	assert.Equal(t, "distributed systems", entry.Name)

	assert.Nil(t, taxonomy.FindMatchingKnowledge("python"))
}

func TestNew_RejectsEmptyName(t *testing.T) {
	_, err := New([]Entry{{Name: "  "}}, nil)
	require.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")
	content := "skills:\n  - name: welding\n    aliases: [mig welding]\nknowledge:\n  - name: metallurgy\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	taxonomy, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, taxonomy.Skills(), 1)
	assert.NotNil(t, taxonomy.FindMatchingSkill("MIG welding"))
	assert.NotNil(t, taxonomy.FindMatchingKnowledge("metallurgy"))
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	taxonomy, err := Load("")
	require.NoError(t, err)
	assert.NotNil(t, taxonomy.FindMatchingSkill("python"))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Contains(t, loadErr.Error(), "failed to read file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("skills: [unclosed"), "bad.yaml")
		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, "bad.yaml", loadErr.Path)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := Parse([]byte("skills: []\n"), "")
		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Contains(t, loadErr.Error(), "(embedded)")
	})
}
