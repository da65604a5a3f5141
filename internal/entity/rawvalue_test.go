package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawValuePreservesFormattedNegatives(t *testing.T) {
	var v RawValue
	require.NoError(t, json.Unmarshal([]byte(`"(5.50)"`), &v))
	assert.True(t, v.IsSet())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `"(5.50)"`, string(out))

	f, ok := v.Float()
	assert.True(t, ok)
	assert.Equal(t, -5.5, f)
}

func TestRawValueNullRoundTrip(t *testing.T) {
	var v RawValue
	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	assert.False(t, v.IsSet())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestRawValueKeepsNumericToken(t *testing.T) {
	var v RawValue
	require.NoError(t, json.Unmarshal([]byte(`1200.50`), &v))

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `1200.50`, string(out))

	f, ok := v.Float()
	assert.True(t, ok)
	assert.Equal(t, 1200.5, f)
	assert.Equal(t, "1200.50", v.String())
}

func TestRawValueFloatToleratesCurrencyFormatting(t *testing.T) {
	f, ok := RawString("$1,234.56").Float()
	assert.True(t, ok)
	assert.Equal(t, 1234.56, f)

	_, ok = RawString("n/a").Float()
	assert.False(t, ok)

	_, ok = RawValue{}.Float()
	assert.False(t, ok)
}
