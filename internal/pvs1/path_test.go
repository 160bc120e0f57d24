package pvs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allLeaves = []Path{
	PathGeneException,
	PathNF1, PathNF2, PathNF3, PathNF4, PathNF5, PathNF6,
	PathSS1, PathSS2, PathSS3, PathSS4, PathSS5,
	PathSS6, PathSS7, PathSS8, PathSS9, PathSS10,
	PathIC1, PathIC2, PathIC3,
}

func TestEveryLeafHasStrengthNameAndDescription(t *testing.T) {
	for _, p := range allLeaves {
		assert.NotEqual(t, StrengthUnsupported, p.StrengthFor(), p)
		assert.NotEqual(t, "not_set", p.String(), p)
		assert.NotEqual(t, "Not Set", p.Description(), p)
	}
}

func TestPathStrengths(t *testing.T) {
	tests := []struct {
		path Path
		want Strength
	}{
		{PathGeneException, StrengthFull},
		{PathNF1, StrengthFull},
		{PathNF2, StrengthNotApplicable},
		{PathNF3, StrengthStrong},
		{PathNF4, StrengthNotApplicable},
		{PathNF5, StrengthStrong},
		{PathNF6, StrengthModerate},
		{PathSS1, StrengthFull},
		{PathSS2, StrengthNotApplicable},
		{PathSS3, StrengthStrong},
		{PathSS4, StrengthNotApplicable},
		{PathSS5, StrengthStrong},
		{PathSS6, StrengthModerate},
		{PathSS7, StrengthNotApplicable},
		{PathSS8, StrengthStrong},
		{PathSS9, StrengthModerate},
		{PathSS10, StrengthStrong},
		{PathIC1, StrengthModerate},
		{PathIC2, StrengthSupporting},
		// An existing alternative start codon makes the criterion
		// inapplicable rather than supporting.
		{PathIC3, StrengthNotApplicable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.path.StrengthFor(), tt.path)
	}
}

func TestStrengthString(t *testing.T) {
	assert.Equal(t, "PVS1", StrengthFull.String())
	assert.Equal(t, "PVS1_Strong", StrengthStrong.String())
	assert.Equal(t, "PVS1_Moderate", StrengthModerate.String())
	assert.Equal(t, "PVS1_Supporting", StrengthSupporting.String())
	assert.Equal(t, "NotPVS1", StrengthNotApplicable.String())
	assert.Equal(t, "Unsupported", StrengthUnsupported.String())
}

func TestPathNoneDefaults(t *testing.T) {
	assert.Equal(t, "not_set", PathNone.String())
	assert.Equal(t, StrengthUnsupported, PathNone.StrengthFor())
	assert.Equal(t, "Not Set", PathNone.Description())
}
