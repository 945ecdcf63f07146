package optparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpvetterli/optparse"
)

func TestNewOption(t *testing.T) {
	o := optparse.NewOption("-r", "--samplingRate", true, "48000", "Set Sampling Rate")
	assert.Equal(t, "-r", o.Short())
	assert.Equal(t, "--samplingRate", o.Long())
	assert.True(t, o.RequiresValue())
	assert.Equal(t, "48000", o.Default())
	assert.Equal(t, "Set Sampling Rate", o.Help())
}

func TestOptionString(t *testing.T) {
	var testData = []struct {
		short, long string
		expect      string
	}{
		{"-r", "--samplingRate", "-r, --samplingRate"},
		{"-r", "", "-r"},
		{"", "--samplingRate", "--samplingRate"},
		{"", "", ""},
	}
	for _, data := range testData {
		o := optparse.NewOption(data.short, data.long, false, "", "")
		assert.Equal(t, data.expect, o.String())
	}
}
