package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBelts(t *testing.T) {
	all := Belts()
	require.Len(t, all, BeltCount)
	for i, b := range all {
		assert.Equal(t, i, b.Ordinal())
		assert.True(t, b.Valid())
		assert.NotEmpty(t, b.Label())
		assert.NotEmpty(t, b.Color())
	}
	assert.Equal(t, "Bianca", all[0].String())
	assert.Equal(t, "Nera 5° Dan", all[BeltCount-1].String())
}

func TestParseBelt(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Belt
		expectErr bool
	}{
		{name: "Stored name", input: "Blu", expected: BeltBlue},
		{name: "English label lower case", input: "white", expected: BeltWhite},
		{name: "Dan rank", input: "Nera 2° Dan", expected: BeltBlack2Dan},
		{name: "Label with spaces", input: "  Black 3rd Dan ", expected: BeltBlack3Dan},
		{name: "Unknown", input: "purple", expectErr: true},
		{name: "Empty", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBelt(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, b)
		})
	}
}

func TestBeltJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Belt Belt `json:"belt"`
	}{Belt: BeltGreenBlue})
	require.NoError(t, err)
	assert.JSONEq(t, `{"belt":"Verde-Blu"}`, string(data))

	var out struct {
		Belt Belt `json:"belt"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"belt":"brown"}`), &out))
	assert.Equal(t, BeltBrown, out.Belt)

	assert.Error(t, json.Unmarshal([]byte(`{"belt":"rainbow"}`), &out))

	_, err = json.Marshal(Belt(42))
	assert.Error(t, err)
}

func TestParseExamResult(t *testing.T) {
	r, err := ParseExamResult("passed")
	assert.NoError(t, err)
	assert.Equal(t, ExamPassed, r)

	_, err = ParseExamResult("maybe")
	assert.Error(t, err)
}

func TestMemberFullName(t *testing.T) {
	m := &Member{FirstName: "Mario", LastName: "Rossi"}
	assert.Equal(t, "Mario Rossi", m.FullName())
}
