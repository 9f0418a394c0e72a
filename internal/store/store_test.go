package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	data, err := st.Get(ctx, "r1", FieldStep)
	require.NoError(t, err)
	assert.Nil(t, data, "absent field reads as nil")

	require.NoError(t, st.Set(ctx, "r1", FieldStep, []byte(`"questionnaire"`)))
	data, err = st.Get(ctx, "r1", FieldStep)
	require.NoError(t, err)
	assert.Equal(t, []byte(`"questionnaire"`), data)

	// Respondents do not share fields
	data, err = st.Get(ctx, "r2", FieldStep)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, st.Delete(ctx, "r1", FieldStep))
	data, err = st.Get(ctx, "r1", FieldStep)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	buf := []byte(`"a"`)
	require.NoError(t, st.Set(ctx, "r1", FieldIdentity, buf))
	buf[1] = 'b'

	data, err := st.Get(ctx, "r1", FieldIdentity)
	require.NoError(t, err)
	assert.Equal(t, []byte(`"a"`), data)
}

func TestGetJSON(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	type payload struct {
		N int `json:"n"`
	}

	var out payload
	found, err := GetJSON(ctx, st, "r1", FieldStats, &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, st, "r1", FieldStats, payload{N: 7}))
	found, err = GetJSON(ctx, st, "r1", FieldStats, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7, out.N)
}

func TestGetJSONDiscardsCorruptValue(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, st.Set(ctx, "r1", FieldAnswers, []byte("{oops")))

	var out map[string]int
	found, err := GetJSON(ctx, st, "r1", FieldAnswers, &out)
	require.NoError(t, err)
	assert.False(t, found, "corrupt value reads as absent")
}

func TestDeleteMultipleFields(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	for _, f := range AllFields {
		require.NoError(t, st.Set(ctx, "r1", f, []byte("1")))
	}
	require.NoError(t, st.Delete(ctx, "r1", AllFields...))
	for _, f := range AllFields {
		data, err := st.Get(ctx, "r1", f)
		require.NoError(t, err)
		assert.Nil(t, data, "field %s", f)
	}
}
