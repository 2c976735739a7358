package location

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		in      string
		want    Coordinates
		wantErr bool
	}{
		{"28.6139,77.2090", Coordinates{28.6139, 77.2090}, false},
		{" -33.9 , 151.2 ", Coordinates{-33.9, 151.2}, false},
		{"91,0", Coordinates{}, true},
		{"0,181", Coordinates{}, true},
		{"abc,1", Coordinates{}, true},
		{"1,abc", Coordinates{}, true},
		{"12.5", Coordinates{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCoordinates(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Latitude, got.Latitude, 1e-9)
			assert.InDelta(t, tt.want.Longitude, got.Longitude, 1e-9)
		})
	}
}

func TestFromSetting(t *testing.T) {
	p, err := FromSetting("")
	require.NoError(t, err)
	assert.IsType(t, UnavailableProvider{}, p)

	p, err = FromSetting("Denied")
	require.NoError(t, err)
	assert.IsType(t, DeniedProvider{}, p)

	p, err = FromSetting("10,20")
	require.NoError(t, err)
	assert.Equal(t, StaticProvider{Coords: Coordinates{10, 20}}, p)

	_, err = FromSetting("nowhere")
	require.Error(t, err)
}

func TestProviders(t *testing.T) {
	ctx := context.Background()

	c, err := StaticProvider{Coords: Coordinates{1, 2}}.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.00000, 2.00000", c.String())

	_, err = UnavailableProvider{}.Request(ctx)
	assert.True(t, errors.Is(err, ErrUnavailable))

	_, err = DeniedProvider{}.Request(ctx)
	assert.True(t, errors.Is(err, ErrDenied))
}

func TestStaticProvider_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := StaticProvider{}.Request(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRequestCmd(t *testing.T) {
	cmd := RequestCmd(context.Background(), StaticProvider{Coords: Coordinates{5, 6}}, PurposeShare)
	msg, ok := cmd().(ResultMsg)
	require.True(t, ok)
	assert.Equal(t, PurposeShare, msg.Purpose)
	assert.NoError(t, msg.Err)
	assert.Equal(t, Coordinates{5, 6}, msg.Coords)
}
