package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, idLength)
		assert.Regexp(t, "^[A-Za-z0-9]+$", id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 45)
}

func TestPrettyJSON(t *testing.T) {
	out, err := PrettyJSON(map[string]int{"sales": 98975})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"sales\": 98975\n}", string(out))

	out, err = PrettyJSON([]byte(`{"store":"Sande"}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"store\": \"Sande\"\n}", string(out))

	_, err = PrettyJSON([]byte(`{quebrado`))
	assert.Error(t, err)
}
