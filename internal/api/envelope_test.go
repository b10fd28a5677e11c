package api

import (
	"testing"

	"github.com/ArbeitEmployee/arbeit-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList_BareArray(t *testing.T) {
	env, err := DecodeList[domain.Task]([]byte(`[{"_id":"1","name":"a"},{"_id":"2","name":"b"}]`))
	require.NoError(t, err)
	require.Len(t, env.Items, 2)
	assert.Equal(t, "a", env.Items[0].Name)
}

func TestDecodeList_DataField(t *testing.T) {
	env, err := DecodeList[domain.Task]([]byte(`{"data":[{"_id":"1","name":"a"}]}`))
	require.NoError(t, err)
	require.Len(t, env.Items, 1)
}

func TestDecodeList_NestedDataData(t *testing.T) {
	env, err := DecodeList[domain.Task]([]byte(`{"data":{"total":1,"data":[{"_id":"1","name":"a"}]}}`))
	require.NoError(t, err)
	require.Len(t, env.Items, 1)
}

func TestDecodeList_NamedField(t *testing.T) {
	env, err := DecodeList[domain.Article]([]byte(`{"articles":[{"_id":"1","subject":"faq"}]}`))
	require.NoError(t, err)
	require.Len(t, env.Items, 1)
	assert.Equal(t, "faq", env.Items[0].Subject)
}

func TestDecodeList_Stats(t *testing.T) {
	env, err := DecodeList[domain.Ticket]([]byte(`{"tickets":[],"stats":{"Open":3,"Closed":9}}`))
	require.NoError(t, err)
	assert.Empty(t, env.Items)
	assert.Equal(t, map[string]int{"Open": 3, "Closed": 9}, env.Stats)
}

func TestDecodeList_ShapeMismatchDegradesToEmpty(t *testing.T) {
	env, err := DecodeList[domain.Task]([]byte(`{"data":"unexpected"}`))
	require.NoError(t, err)
	assert.NotNil(t, env.Items)
	assert.Empty(t, env.Items)
}

func TestDecodeList_InvalidJSON(t *testing.T) {
	_, err := DecodeList[domain.Task]([]byte(`{not json`))
	assert.Error(t, err)
}
