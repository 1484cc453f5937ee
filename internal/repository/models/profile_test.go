package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSlice_ValueScan(t *testing.T) {
	v, err := StringSlice(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringSlice{"fado", "festa"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["fado","festa"]`, v)

	var s StringSlice
	assert.NoError(t, s.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringSlice{"a", "b"}, s)

	assert.NoError(t, s.Scan(nil))
	assert.Equal(t, StringSlice{}, s)

	assert.NoError(t, s.Scan("null"))
	assert.Equal(t, StringSlice{}, s)

	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan("{not json"))
}

func TestScoreMap_ValueScan(t *testing.T) {
	v, err := ScoreMap(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "{}", v)

	v, err = ScoreMap{"music": 7.5, "food": 9}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `{"food":9,"music":7.5}`, v)

	var m ScoreMap
	assert.NoError(t, m.Scan(`{"family":8}`))
	assert.Equal(t, ScoreMap{"family": 8}, m)

	assert.NoError(t, m.Scan([]byte("")))
	assert.Equal(t, ScoreMap{}, m)

	assert.Error(t, m.Scan(3.14))
}
