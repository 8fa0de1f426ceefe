package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkarpov/mtsp-routing-core/spatial"
)

func TestCluster_Center(t *testing.T) {
	cases := []struct {
		points []spatial.Point
		want   spatial.Point
	}{
		{
			points: []spatial.Point{
				spatial.NewPoint(25, 40), spatial.NewPoint(15, 15), spatial.NewPoint(65, 20),
			},
			want: spatial.NewPoint(35, 25),
		},
		{
			points: []spatial.Point{
				spatial.NewPoint(-3, -4), spatial.NewPoint(21, 6), spatial.NewPoint(54, -5),
			},
			want: spatial.NewPoint(24, -1),
		},
	}

	for _, tc := range cases {
		c := spatial.NewCluster(tc.points)
		got, err := c.Center()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestCluster_Center_Singleton(t *testing.T) {
	p := spatial.NewPoint(1, 2)
	c := spatial.NewCluster([]spatial.Point{p})
	got, err := c.Center()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestCluster_Center_Empty(t *testing.T) {
	c := spatial.NewCluster(nil)
	_, err := c.Center()
	assert.ErrorIs(t, err, spatial.ErrEmptyCluster)
}
