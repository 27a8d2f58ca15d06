package discipline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r := Default()
	assert.Len(t, r, 10)
	for _, k := range Keys {
		v, ok := r[k]
		assert.True(t, ok, "key %s missing", k)
		assert.False(t, v, "key %s should be false", k)
	}
	assert.Empty(t, Codes(r))
}

func TestDefault_ReturnsFreshRecord(t *testing.T) {
	a := Default()
	a[Trad] = true
	assert.False(t, Default()[Trad])
}

func TestKeyValidate(t *testing.T) {
	for _, k := range Keys {
		assert.NoError(t, k.Validate())
	}
	assert.Error(t, Key(TypeTagKey).Validate())
	assert.Error(t, Key("Sport").Validate())
	assert.Error(t, Key("").Validate())
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("  Sport ")
	require.NoError(t, err)
	assert.Equal(t, Sport, k)

	_, err = ParseKey("via-ferrata")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown discipline")
}

func TestRecordMerge(t *testing.T) {
	decoded, _ := Decode("T A")
	merged := Default().Merge(decoded)

	assert.Len(t, merged, 10)
	assert.Equal(t, []Key{Trad, Aid}, merged.Active())
	assert.False(t, Default()[Trad], "merge must not mutate the receiver")
}

func TestRecordUnmarshalJSON_DropsTypeTag(t *testing.T) {
	data := `{"__typename":"ClimbDisciplineRecord","trad":true,"aid":false,"sport":null,"grade":"5.9"}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(data), &r))

	assert.Equal(t, Record{Trad: true, Aid: false}, r)
	assert.Equal(t, []string{"Trad"}, Names(r))
	assert.Equal(t, "T", CodesString(r))
}

func TestRecordUnmarshalJSON_RejectsNonBoolean(t *testing.T) {
	_, err := ParseJSON(`{"trad":"yes"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `discipline "trad"`)

	_, err = ParseJSON(`[true]`)
	assert.Error(t, err)
}

func TestRecordMarshalJSON_KeepsAbsentKeysAbsent(t *testing.T) {
	decoded, _ := Decode("B")
	data, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bouldering":true}`, string(data))

	data, err = json.Marshal(Default())
	require.NoError(t, err)
	assert.JSONEq(t, `{"deepwatersolo":false,"sport":false,"trad":false,"bouldering":false,"aid":false,"ice":false,"alpine":false,"mixed":false,"tr":false,"snow":false}`, string(data))
}
