package discipline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   []string
	}{
		{
			name:   "single discipline",
			record: Record{Sport: true},
			want:   []string{"Sport"},
		},
		{
			name:   "only first letter is capitalized",
			record: Record{DeepWaterSolo: true},
			want:   []string{"Deepwatersolo"},
		},
		{
			name:   "top rope keeps its key",
			record: Record{TopRope: true},
			want:   []string{"Tr"},
		},
		{
			name:   "inactive disciplines omitted",
			record: Record{Trad: true, Aid: false, Ice: true},
			want:   []string{"Trad", "Ice"},
		},
		{
			name:   "canonical order regardless of literal order",
			record: Record{Snow: true, Sport: true, Bouldering: true},
			want:   []string{"Sport", "Bouldering", "Snow"},
		},
		{
			name:   "empty record",
			record: Record{},
			want:   []string{},
		},
		{
			name:   "nil record",
			record: nil,
			want:   []string{},
		},
		{
			name:   "default record",
			record: Default(),
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Names(tt.record)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Names() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   []Code
	}{
		{
			name:   "sport and aid",
			record: Record{Sport: true, Aid: true},
			want:   []Code{"S", "A"},
		},
		{
			name:   "top rope is two letters",
			record: Record{TopRope: true, Trad: true},
			want:   []Code{"T", "TR"},
		},
		{
			name:   "encode-only codes",
			record: Record{Ice: true, Mixed: true, DeepWaterSolo: true},
			want:   []Code{"D", "I", "M"},
		},
		{
			name:   "default record encodes to nothing",
			record: Default(),
			want:   []Code{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Codes(tt.record)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Codes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestCodes_KnownCollisions pins the first-letter collisions between aid and
// alpine, and between sport and snow. Both codes are emitted and the output
// cannot be decoded back unambiguously.
func TestCodes_KnownCollisions(t *testing.T) {
	assert.Equal(t, "A A", CodesString(Record{Aid: true, Alpine: true}))
	assert.Equal(t, "S S", CodesString(Record{Sport: true, Snow: true}))

	decoded, hadError := Decode(CodesString(Record{Alpine: true}))
	assert.False(t, hadError)
	assert.Equal(t, Record{Aid: true}, decoded, "alpine decodes as aid")

	decoded, hadError = Decode(CodesString(Record{Mixed: true}))
	assert.True(t, hadError, "M is encode-only")
	assert.Empty(t, decoded)
}

func TestCodesString(t *testing.T) {
	assert.Equal(t, "T A", CodesString(Record{Trad: true, Aid: true}))
	assert.Equal(t, "", CodesString(Default()))
	assert.Equal(t, "S T B A TR", CodesString(Record{
		TopRope: true, Aid: true, Bouldering: true, Trad: true, Sport: true,
	}))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Record
		wantError bool
	}{
		{
			name:  "two codes",
			input: "T A",
			want:  Record{Trad: true, Aid: true},
		},
		{
			name:      "unknown code keeps earlier results",
			input:     "T X",
			want:      Record{Trad: true},
			wantError: true,
		},
		{
			name:      "empty input",
			input:     "",
			want:      Record{},
			wantError: true,
		},
		{
			name:  "lower case top rope",
			input: "tr",
			want:  Record{TopRope: true},
		},
		{
			name:  "mixed case",
			input: "b Tr s",
			want:  Record{Bouldering: true, TopRope: true, Sport: true},
		},
		{
			name:      "double space yields empty token",
			input:     "T  A",
			want:      Record{Trad: true, Aid: true},
			wantError: true,
		},
		{
			name:      "leading and trailing space",
			input:     " B ",
			want:      Record{Bouldering: true},
			wantError: true,
		},
		{
			name:      "unknown code before known code",
			input:     "I S",
			want:      Record{Sport: true},
			wantError: true,
		},
		{
			name:  "repeated code",
			input: "S S",
			want:  Record{Sport: true},
		},
		{
			name:      "tab is not a separator",
			input:     "T\tA",
			want:      Record{},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hadError := Decode(tt.input)
			assert.Equal(t, tt.wantError, hadError)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestDecode_PartialRecordOmitsUnsetKeys(t *testing.T) {
	got, hadError := Decode("T")
	require.False(t, hadError)

	_, hasSport := got[Sport]
	assert.False(t, hasSport, "undecoded keys must be absent, not false")
	assert.Len(t, got, 1)
}

func TestDecode_RoundTripOverDecodableSubset(t *testing.T) {
	decodable := []Key{Sport, Trad, Aid, TopRope, Bouldering}

	// Every subset of the five decodable disciplines.
	for mask := 1; mask < 1<<len(decodable); mask++ {
		r := Record{}
		for i, k := range decodable {
			if mask&(1<<i) != 0 {
				r[k] = true
			}
		}

		got, hadError := Decode(CodesString(r))
		require.False(t, hadError, "mask %b", mask)
		assert.Equal(t, r.Active(), got.Active(), "mask %b", mask)
	}
}

func TestDecodable(t *testing.T) {
	for _, k := range []Key{Sport, Trad, Aid, TopRope, Bouldering} {
		assert.True(t, Decodable(k), "%s", k)
	}
	for _, k := range []Key{Ice, Alpine, Mixed, Snow, DeepWaterSolo} {
		assert.False(t, Decodable(k), "%s", k)
	}
}

func TestDecodeStrict(t *testing.T) {
	r, err := DecodeStrict("T A")
	require.NoError(t, err)
	assert.Equal(t, Record{Trad: true, Aid: true}, r)

	r, err = DecodeStrict("T X  q")
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
	assert.Equal(t, Record{Trad: true}, r)

	decodeErr := err.(*DecodeError)
	assert.Equal(t, []string{"X", "", "q"}, decodeErr.Tokens)
	assert.Contains(t, err.Error(), `"X", "", "q"`)
}

func TestIsDecodeError(t *testing.T) {
	assert.False(t, IsDecodeError(nil))
	assert.False(t, IsDecodeError(assert.AnError))
	assert.True(t, IsDecodeError(&DecodeError{}))
}
