package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyJSON(t *testing.T) {
	type item struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	src := []*item{{ID: "1", Name: "Buttons"}, {ID: "2", Name: "Cards"}}

	var dst []item
	require.NoError(t, copyJSON(src, &dst))

	assert.Equal(t, []item{{ID: "1", Name: "Buttons"}, {ID: "2", Name: "Cards"}}, dst)
}
