package tx

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCategories(t *testing.T) {
	tests := []struct {
		result  Result
		success bool
		tec     bool
		tef     bool
		tem     bool
		ter     bool
	}{
		{TesSUCCESS, true, false, false, false, false},
		{TecOVERFLOW, false, true, false, false, false},
		{TecCOIN_NOT_ACTIVE, false, true, false, false, false},
		{TefINTERNAL, false, false, true, false, false},
		{TemBAD_DECIMALS, false, false, false, true, false},
		{TerNO_ACCOUNT, false, false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.result.String(), func(t *testing.T) {
			assert.Equal(t, tt.success, tt.result.IsSuccess())
			assert.Equal(t, tt.tec, tt.result.IsTec())
			assert.Equal(t, tt.tef, tt.result.IsTef())
			assert.Equal(t, tt.tem, tt.result.IsTem())
			assert.Equal(t, tt.ter, tt.result.IsTer())
			assert.Equal(t, tt.ter, tt.result.ShouldRetry())
		})
	}
}

func TestOnlySuccessIsApplied(t *testing.T) {
	for _, r := range resultsByName {
		assert.Equal(t, r == TesSUCCESS, r.IsApplied(), r.String())
	}
}

func TestResultNamesRoundTrip(t *testing.T) {
	for name, r := range resultsByName {
		parsed, ok := ResultFromString(name)
		require.True(t, ok)
		assert.Equal(t, r, parsed)
		assert.NotEmpty(t, r.Message(), name)
	}

	_, ok := ResultFromString("tecNOPE")
	assert.False(t, ok)
	assert.Equal(t, "Unknown(12345)", Result(12345).String())
}

func TestResultJSON(t *testing.T) {
	data, err := json.Marshal(struct{ R Result }{TecDUPLICATE})
	require.NoError(t, err)
	assert.JSONEq(t, `{"R":"tecDUPLICATE"}`, string(data))

	var out struct{ R Result }
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, TecDUPLICATE, out.R)

	assert.Error(t, json.Unmarshal([]byte(`{"R":"tecNOPE"}`), &out))
}

func TestResultError(t *testing.T) {
	assert.NoError(t, NewResultError(TesSUCCESS))

	err := NewResultError(TecOVERFLOW)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tecOVERFLOW")
	assert.True(t, errors.Is(err, NewResultError(TecOVERFLOW)))
	assert.False(t, errors.Is(err, NewResultError(TecDUPLICATE)))

	var re *ResultError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, TecOVERFLOW, re.Result)
}
