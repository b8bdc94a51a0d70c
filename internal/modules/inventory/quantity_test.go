package inventory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{``, "0", nil},
		{`null`, "0", nil},
		{`0`, "0", nil},
		{`0e-999999999`, "0", nil},
		{`500`, "500", nil},
		{`-5`, "-5", nil},
		{`2.0`, "2", nil},
		{`1e3`, "1000", nil},
		{`"12"`, "12", nil},
		{`" 7 "`, "7", nil},
		{`""`, "0", nil},
		{`999999999999999999`, "999999999999999999", nil},
		{`"lots"`, "", ErrQuantityNotNumber},
		{`true`, "", ErrQuantityNotNumber},
		{`[1]`, "", ErrQuantityNotNumber},
		{`{"n":1}`, "", ErrQuantityNotNumber},
		{`2.5`, "", ErrQuantityNotWhole},
		{`0.5`, "", ErrQuantityNotWhole},
		{`1e-2000000000`, "", ErrQuantityNotWhole},
		{`1000000000000000000`, "", ErrQuantityOutOfRange},
		{`1e400`, "", ErrQuantityOutOfRange},
		{`1e2000000000`, "", ErrQuantityOutOfRange},
		{`"-1e10000000"`, "", ErrQuantityOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			q, err := ParseQuantity(json.RawMessage(tt.raw))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.String())
		})
	}
}

func TestQuantity_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Quantity Quantity `json:"quantity"`
	}{NewQuantity(500)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"quantity":500}`, string(out))

	out, err = json.Marshal(Quantity{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(out))
}
