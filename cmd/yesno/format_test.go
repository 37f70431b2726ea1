package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    Format
		wantErr bool
	}{
		{value: "text", want: FormatText},
		{value: "json", want: FormatJSON},
		{value: "yaml", want: FormatYAML},
		{value: "xml", want: FormatText, wantErr: true},
		{value: "", want: FormatText, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			format := FormatText
			err := format.Set(tt.value)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, format)
			assert.Equal(t, string(tt.want), format.String())
			assert.Equal(t, "format", format.Type())
		})
	}
}
