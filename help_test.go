package main

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelp_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    Help
		wantErr string
	}{
		{give: "usage"},
		{give: "default"},
		{give: "config"},
		{give: "highlight"},
		{give: "styles"},
		{
			give:    "not-a-topic",
			wantErr: `unknown help topic "not-a-topic": valid values`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.give.String(), func(t *testing.T) {
			t.Parallel()

			err := tt.give.Write(io.Discard)
			if len(tt.wantErr) > 0 {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHelp_usageIsFirstLineOfDefault(t *testing.T) {
	t.Parallel()

	var usage, def strings.Builder
	assert.NoError(t, UsageHelp.Write(&usage))
	assert.NoError(t, DefaultHelp.Write(&def))

	assert.True(t, strings.HasPrefix(def.String(), usage.String()),
		"default help must open with the usage line")
	assert.Equal(t, 1, strings.Count(usage.String(), "\n"))
}
