package descriptor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeCaseName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123", "_123"},
		{"normal-mode", "NORMAL_MODE"},
		{"normal", "NORMAL"},
		{"extended", "EXTENDED"},
		{"a-b", "A_B"},
		{"a_b", "A_B"},
		{"a  --  b", "A_B"},
		{"  spaced out ", "SPACED_OUT"},
		{"normalMode", "NORMALMODE"},
		{"v1.2", "V1_2"},
		{"v1beta", "V1BETA"},
		{"A1", "A1"},
		{"ISO8859", "ISO8859"},
		{"utf8", "UTF8"},
		{"Ärger", "ÄRGER"},
		{"東京", "東京"},
		{"½", EmptyCaseName},
		{"x½y", "X_Y"},
		{"-1", "_1"},
		{"!!!", EmptyCaseName},
		{"", EmptyCaseName},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeCaseName(tt.input))
			// pure function of the raw value
			assert.Equal(t, SanitizeCaseName(tt.input), SanitizeCaseName(tt.input))
		})
	}
}

func TestBuildEnumBackingInference(t *testing.T) {
	tests := []struct {
		name     string
		cases    []RawEnumCase
		expected BackingKind
	}{
		{
			name:     "strings",
			cases:    []RawEnumCase{{Value: "low"}, {Value: "high"}},
			expected: BackingString,
		},
		{
			name:     "integers",
			cases:    []RawEnumCase{{Value: 1}, {Value: 2}},
			expected: BackingInteger,
		},
		{
			name:     "mixed integer widths",
			cases:    []RawEnumCase{{Value: int32(1)}, {Value: int64(2)}, {Value: uint8(3)}},
			expected: BackingInteger,
		},
		{
			name:     "no value",
			cases:    []RawEnumCase{{}},
			expected: BackingUnit,
		},
		{
			name:     "empty strings are unit cases",
			cases:    []RawEnumCase{{Value: ""}},
			expected: BackingUnit,
		},
		{
			name:     "no cases",
			cases:    nil,
			expected: BackingUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enum, err := BuildEnum("urn:test", "Level", tt.cases, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, enum.Backing)
			assert.Len(t, enum.Cases, len(tt.cases))
		})
	}
}

func TestBuildEnumIntegerValuesAreInt64(t *testing.T) {
	enum, err := BuildEnum("urn:test", "Code", []RawEnumCase{{Value: 1}, {Value: uint16(2)}}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), enum.Cases[0].Value)
	assert.Equal(t, int64(2), enum.Cases[1].Value)
	assert.Equal(t, "_1", enum.Cases[0].Name)
	assert.Equal(t, "_2", enum.Cases[1].Name)
}

func TestBuildEnumMixedBacking(t *testing.T) {
	_, err := BuildEnum("urn:test", "Level", []RawEnumCase{{Value: "low"}, {Value: 1}}, nil)
	require.Error(t, err)

	var mixed *MixedEnumBackingError
	require.True(t, errors.As(err, &mixed))
	assert.Equal(t, "Level", mixed.Enum)
	require.Len(t, mixed.Classifications, 2)
	assert.Equal(t, BackingString, mixed.Classifications[0].Kind)
	assert.Equal(t, BackingInteger, mixed.Classifications[1].Kind)
	assert.Equal(t, "1", mixed.Classifications[1].RawValue)
	assert.Equal(t, []BackingKind{BackingString, BackingInteger}, mixed.Kinds())
	assert.Contains(t, err.Error(), `"low"=string`)
}

func TestBuildEnumMixedBackingCarriesEveryCase(t *testing.T) {
	// the conflict is only detectable after the whole scan
	raw := []RawEnumCase{{Value: "a"}, {Value: "b"}, {Value: "c"}, {Value: 4}}
	_, err := BuildEnum("urn:test", "Letters", raw, nil)

	var mixed *MixedEnumBackingError
	require.ErrorAs(t, err, &mixed)
	assert.Len(t, mixed.Classifications, 4)
	for i, c := range mixed.Classifications {
		assert.Equal(t, i, c.Index)
	}
}

func TestBuildEnumUnitMixedWithValues(t *testing.T) {
	_, err := BuildEnum("urn:test", "Partial", []RawEnumCase{{Value: "a"}, {}}, nil)

	var mixed *MixedEnumBackingError
	require.ErrorAs(t, err, &mixed)
	assert.Equal(t, []BackingKind{BackingString, BackingUnit}, mixed.Kinds())
}

func TestBuildEnumInvalidValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"float", 1.5},
		{"bool", true},
		{"struct", struct{}{}},
		{"overflowing uint64", uint64(1 << 63)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildEnum("urn:test", "Bad", []RawEnumCase{{Value: "ok"}, {Value: tt.value}}, nil)

			var invalid *InvalidEnumValueError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "Bad", invalid.Enum)
			assert.Equal(t, 1, invalid.Index)
		})
	}
}

func TestBuildEnumRoundTrip(t *testing.T) {
	raw := []RawEnumCase{
		{Value: "normal", Doc: ""},
		{Value: "extended", Doc: ""},
	}

	enum, err := BuildEnum("urn:test", "Mode", raw, nil)
	require.NoError(t, err)

	assert.Equal(t, BackingString, enum.Backing)
	assert.Equal(t, "NORMAL", enum.Cases[0].Name)
	assert.Equal(t, "normal", enum.Cases[0].Value)
	assert.Equal(t, "EXTENDED", enum.Cases[1].Name)
	assert.Equal(t, "extended", enum.Cases[1].Value)
	assert.Nil(t, enum.Doc)
	assert.Equal(t, "urn:test", enum.Namespace)
	assert.Equal(t, "Mode", enum.Name)
}

func TestBuildEnumPreservesOrderAndDocs(t *testing.T) {
	raw := []RawEnumCase{
		{Value: "zeta", Doc: "  last letter  "},
		{Value: "alpha", Doc: "first letter"},
		{Value: "mu"},
	}
	doc := "Greek letters"

	enum, err := BuildEnum("urn:test", "Greek", raw, &doc)
	require.NoError(t, err)

	names := []string{enum.Cases[0].Name, enum.Cases[1].Name, enum.Cases[2].Name}
	assert.Equal(t, []string{"ZETA", "ALPHA", "MU"}, names)
	assert.Equal(t, "last letter", enum.Cases[0].Doc)
	assert.Equal(t, "first letter", enum.Cases[1].Doc)
	require.NotNil(t, enum.Doc)
	assert.Equal(t, "Greek letters", *enum.Doc)
}

func TestBuildEnumCaseNameCollisions(t *testing.T) {
	raw := []RawEnumCase{{Value: "a-b"}, {Value: "a_b"}, {Value: "a b"}}

	t.Run("rejected by default", func(t *testing.T) {
		_, err := BuildEnum("urn:test", "Pair", raw, nil)

		var collision *CaseNameCollisionError
		require.ErrorAs(t, err, &collision)
		assert.Equal(t, "A_B", collision.CaseName)
		assert.Equal(t, []string{"a-b", "a_b"}, collision.RawValues)
	})

	t.Run("suffixed on request", func(t *testing.T) {
		enum, err := EnumBuilder{Collisions: CollisionSuffix}.Build("urn:test", "Pair", raw, nil)
		require.NoError(t, err)

		assert.Equal(t, "A_B", enum.Cases[0].Name)
		assert.Equal(t, "A_B_2", enum.Cases[1].Name)
		assert.Equal(t, "A_B_3", enum.Cases[2].Name)
		assert.Equal(t, "a_b", enum.Cases[1].Value)
	})

	t.Run("suffix skips names already taken", func(t *testing.T) {
		enum, err := EnumBuilder{Collisions: CollisionSuffix}.Build("urn:test", "Pair",
			[]RawEnumCase{{Value: "x"}, {Value: "x_2"}, {Value: "x"}}, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"X", "X_2", "X_3"}, []string{enum.Cases[0].Name, enum.Cases[1].Name, enum.Cases[2].Name})
	})
}

func TestBuildEnumCaseBoundariesDoNotCollide(t *testing.T) {
	enum, err := BuildEnum("urn:test", "E", []RawEnumCase{{Value: "fooBar"}, {Value: "foo_bar"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "FOOBAR", enum.Cases[0].Name)
	assert.Equal(t, "FOO_BAR", enum.Cases[1].Name)
}

func TestParseCollisionPolicy(t *testing.T) {
	p, err := ParseCollisionPolicy("")
	require.NoError(t, err)
	assert.Equal(t, CollisionReject, p)

	p, err = ParseCollisionPolicy("Suffix")
	require.NoError(t, err)
	assert.Equal(t, CollisionSuffix, p)

	_, err = ParseCollisionPolicy("overwrite")
	assert.Error(t, err)
}
