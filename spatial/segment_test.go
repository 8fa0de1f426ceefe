package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkarpov/mtsp-routing-core/spatial"
)

func TestNewSegment_DefaultsToEuclidean(t *testing.T) {
	a := spatial.NewPoint(0, 0)
	b := spatial.NewPoint(3, 4)
	seg, err := spatial.NewSegment(a, b, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, seg.Length)
}

func TestNewSegment_RejectsShorterThanChord(t *testing.T) {
	a := spatial.NewPoint(0, 0)
	b := spatial.NewPoint(3, 4)
	_, err := spatial.NewSegment(a, b, 1)
	assert.ErrorIs(t, err, spatial.ErrShortSegment)
}

func TestNewSegment_AllowsPolylineLength(t *testing.T) {
	a := spatial.NewPoint(0, 0)
	b := spatial.NewPoint(3, 4)
	seg, err := spatial.NewSegment(a, b, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, seg.Length)
}

func TestNewSegment_RejectsSameEndpoints(t *testing.T) {
	a := spatial.NewPoint(1, 1)
	_, err := spatial.NewSegment(a, a, 0)
	assert.ErrorIs(t, err, spatial.ErrSameEndpoints)
}

func TestSegment_OtherEndpoint(t *testing.T) {
	a := spatial.NewPoint(0, 0)
	b := spatial.NewPoint(1, 1)
	seg, err := spatial.NewSegment(a, b, 0)
	require.NoError(t, err)

	assert.Equal(t, b, seg.OtherEndpoint(a))
	assert.Equal(t, a, seg.OtherEndpoint(b))
	// Any point other than Start maps to Start, even one that is not an endpoint.
	assert.Equal(t, a, seg.OtherEndpoint(spatial.NewPoint(9, 9)))
}
