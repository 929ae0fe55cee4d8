package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilters_Validate(t *testing.T) {
	tests := []struct {
		name      string
		filters   Filters
		wantField string
	}{
		{name: "empty_valid", filters: Filters{}},
		{
			name: "all_defaults_valid",
			filters: Filters{
				Equalizer: &Equalizer{Enabled: true, Bands: []EqualizerBand{{Band: 0, Gain: -0.25}, {Band: 14, Gain: 1}}},
				Karaoke:   NewKaraoke(),
				Timescale: &Timescale{Enabled: true, Speed: 1, Pitch: 1, Rate: 1},
				Tremolo:   &Tremolo{Enabled: true, Frequency: 2, Depth: 0.5},
				Vibrato:   &Vibrato{Enabled: true, Frequency: 14, Depth: 1},
				Volume:    &VolumeFilter{Enabled: true, Volume: 1},
			},
		},
		{name: "band_out_of_range", filters: Filters{Equalizer: &Equalizer{Bands: []EqualizerBand{{Band: 15}}}}, wantField: "band"},
		{name: "gain_too_low", filters: Filters{Equalizer: &Equalizer{Bands: []EqualizerBand{{Band: 1, Gain: -0.3}}}}, wantField: "gain"},
		{name: "timescale_zero_speed", filters: Filters{Timescale: &Timescale{Speed: 0, Pitch: 1, Rate: 1}}, wantField: "speed"},
		{name: "tremolo_depth_above_one", filters: Filters{Tremolo: &Tremolo{Frequency: 2, Depth: 1.5}}, wantField: "depth"},
		{name: "vibrato_frequency_above_fourteen", filters: Filters{Vibrato: &Vibrato{Frequency: 14.5, Depth: 0.5}}, wantField: "frequency"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filters.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var fe *FilterValueError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.wantField, fe.Field)
		})
	}
}

func TestEqualizer_JSON(t *testing.T) {
	t.Run("marshal_as_band_objects", func(t *testing.T) {
		b, err := json.Marshal(Equalizer{Enabled: true, Bands: []EqualizerBand{{Band: 3, Gain: 0.5}}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"enabled":true,"bands":[{"band":3,"gain":0.5}]}`, string(b))
	})
	t.Run("unmarshal_band_objects", func(t *testing.T) {
		var e Equalizer
		require.NoError(t, json.Unmarshal([]byte(`{"enabled":true,"bands":[{"band":3,"gain":0.5}]}`), &e))
		assert.Equal(t, []EqualizerBand{{Band: 3, Gain: 0.5}}, e.Bands)
	})
	t.Run("unmarshal_gain_list", func(t *testing.T) {
		var e Equalizer
		require.NoError(t, json.Unmarshal([]byte(`{"enabled":false,"bands":[0.2,0.0]}`), &e))
		assert.Equal(t, []EqualizerBand{{Band: 0, Gain: 0.2}, {Band: 1, Gain: 0}}, e.Bands)
	})
}
