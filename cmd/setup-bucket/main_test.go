package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicReadPolicy(t *testing.T) {
	raw, err := publicReadPolicy("assets")
	require.NoError(t, err)

	var policy struct {
		Statement []struct {
			Action   []string `json:"Action"`
			Resource []string `json:"Resource"`
		} `json:"Statement"`
	}
	require.NoError(t, json.Unmarshal(raw, &policy))
	require.Len(t, policy.Statement, 1)
	assert.Equal(t, []string{"s3:GetObject"}, policy.Statement[0].Action)
	assert.Equal(t, []string{"arn:aws:s3:::assets/logos/*"}, policy.Statement[0].Resource)
}
