package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationCode(t *testing.T) {
	tests := []struct {
		id      int64
		want    string
		wantErr bool
	}{
		{1, "000000018", false},
		{2, "000000026", false},
		{17, "000000174", false},
		{0, "", true},
		{-3, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := ConfirmationCode(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, ValidConfirmationCode(got))
		})
	}
}

func TestValidConfirmationCode(t *testing.T) {
	assert.False(t, ValidConfirmationCode(""))
	assert.False(t, ValidConfirmationCode("000000019"))
	assert.False(t, ValidConfirmationCode("18"))
	assert.True(t, ValidConfirmationCode("000000026"))
}
