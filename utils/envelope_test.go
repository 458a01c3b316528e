package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeListBareArray(t *testing.T) {
	body := []byte(`[{"code":"SAVE10","discount":10},{"code":"FLASH50","discount":50}]`)

	got := NormalizeList(body)
	require.Len(t, got, 2)
	assert.Equal(t, "SAVE10", got[0]["code"])
	assert.Equal(t, 50.0, got[1]["discount"])
}

func TestNormalizeListDataEnvelope(t *testing.T) {
	body := []byte(`{"data":[{"name":"XL"},{"name":"S"}]}`)

	got := NormalizeList(body)
	require.Len(t, got, 2)
	assert.Equal(t, "XL", got[0]["name"])
}

func TestNormalizeListStatusEnvelope(t *testing.T) {
	body := []byte(`{"status":"success","data":[{"id":1}]}`)

	got := NormalizeList(body)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0]["id"])
}

func TestNormalizeListUnrecognizedShapes(t *testing.T) {
	cases := map[string][]byte{
		"empty body":       nil,
		"garbage":          []byte(`not json at all`),
		"scalar":           []byte(`42`),
		"object no data":   []byte(`{"status":"success"}`),
		"data not a list":  []byte(`{"data":{"code":"SAVE10"}}`),
		"null data":        []byte(`{"data":null}`),
		"null body":        []byte(`null`),
		"array of scalars": []byte(`[1,2,3]`),
	}

	for name, body := range cases {
		got := NormalizeList(body)
		assert.NotNil(t, got, name)
		assert.Empty(t, got, name)
	}
}
