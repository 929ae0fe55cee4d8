package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// EqualizerBandCount is the number of equalizer bands Andesite supports (0..14).
const EqualizerBandCount = 15

// FilterValueError is returned by Filters.Validate when a filter parameter is out of its interval.
type FilterValueError struct {
	Filter   string
	Field    string
	Value    float64
	Interval string
}

func (e *FilterValueError) Error() string {
	return fmt.Sprintf("filter %s: %s=%v not in %s", e.Filter, e.Field, e.Value, e.Interval)
}

// EqualizerBand configures the gain of one band.
type EqualizerBand struct {
	Band int     `json:"band"`
	Gain float64 `json:"gain"`
}

// Equalizer is sent as a list of {band, gain} objects; Andesite reports it back as a plain list of gains.
type Equalizer struct {
	Enabled bool
	Bands   []EqualizerBand
}

type equalizerWire struct {
	Enabled bool            `json:"enabled"`
	Bands   json.RawMessage `json:"bands"`
}

func (e Equalizer) MarshalJSON() ([]byte, error) {
	bands := e.Bands
	if bands == nil {
		bands = []EqualizerBand{}
	}
	raw, err := json.Marshal(bands)
	if err != nil {
		return nil, err
	}
	return json.Marshal(equalizerWire{Enabled: e.Enabled, Bands: raw})
}

func (e *Equalizer) UnmarshalJSON(b []byte) error {
	var w equalizerWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	e.Enabled = w.Enabled
	e.Bands = nil
	if len(w.Bands) == 0 || string(w.Bands) == "null" {
		return nil
	}
	var gains []float64
	if err := json.Unmarshal(w.Bands, &gains); err == nil {
		for i, g := range gains {
			e.Bands = append(e.Bands, EqualizerBand{Band: i, Gain: g})
		}
		return nil
	}
	return json.Unmarshal(w.Bands, &e.Bands)
}

// Gains returns the gain of every band, 0 for bands that are not configured.
func (e Equalizer) Gains() [EqualizerBandCount]float64 {
	var out [EqualizerBandCount]float64
	for _, b := range e.Bands {
		if b.Band >= 0 && b.Band < EqualizerBandCount {
			out[b.Band] = b.Gain
		}
	}
	return out
}

// Karaoke filter. Zero values are replaced by Andesite defaults (1, 1, 220, 100) in NewKaraoke.
type Karaoke struct {
	Enabled     bool    `json:"enabled"`
	Level       float64 `json:"level"`
	MonoLevel   float64 `json:"monoLevel"`
	FilterBand  float64 `json:"filterBand"`
	FilterWidth float64 `json:"filterWidth"`
}

// NewKaraoke returns an enabled karaoke filter with Andesite's default parameters.
func NewKaraoke() *Karaoke {
	return &Karaoke{Enabled: true, Level: 1, MonoLevel: 1, FilterBand: 220, FilterWidth: 100}
}

// Timescale changes speed, pitch and rate; every value must be > 0.
type Timescale struct {
	Enabled bool    `json:"enabled"`
	Speed   float64 `json:"speed"`
	Pitch   float64 `json:"pitch"`
	Rate    float64 `json:"rate"`
}

// Tremolo oscillates the volume. Frequency > 0, depth in (0, 1].
type Tremolo struct {
	Enabled   bool    `json:"enabled"`
	Frequency float64 `json:"frequency"`
	Depth     float64 `json:"depth"`
}

// Vibrato oscillates the pitch. Frequency in (0, 14], depth in (0, 1].
type Vibrato struct {
	Enabled   bool    `json:"enabled"`
	Frequency float64 `json:"frequency"`
	Depth     float64 `json:"depth"`
}

// VolumeFilter scales the output volume; 1.0 leaves it unchanged.
type VolumeFilter struct {
	Enabled bool    `json:"enabled"`
	Volume  float64 `json:"volume"`
}

// Filters is the filter map of a player. Nil entries are not sent and keep their current value on the node.
type Filters struct {
	Equalizer *Equalizer    `json:"equalizer,omitempty"`
	Karaoke   *Karaoke      `json:"karaoke,omitempty"`
	Timescale *Timescale    `json:"timescale,omitempty"`
	Tremolo   *Tremolo      `json:"tremolo,omitempty"`
	Vibrato   *Vibrato      `json:"vibrato,omitempty"`
	Volume    *VolumeFilter `json:"volume,omitempty"`
}

// Validate checks every configured filter against Andesite's accepted intervals and joins all violations.
func (f Filters) Validate() error {
	var errs []error
	check := func(filter, field string, v float64, ok bool, interval string) {
		if !ok {
			errs = append(errs, &FilterValueError{Filter: filter, Field: field, Value: v, Interval: interval})
		}
	}
	if f.Equalizer != nil {
		for _, b := range f.Equalizer.Bands {
			check("equalizer", "band", float64(b.Band), b.Band >= 0 && b.Band < EqualizerBandCount, "[0, 14]")
			check("equalizer", "gain", b.Gain, b.Gain >= -0.25 && b.Gain <= 1, "[-0.25, 1]")
		}
	}
	if f.Timescale != nil {
		check("timescale", "speed", f.Timescale.Speed, f.Timescale.Speed > 0, "(0, INF]")
		check("timescale", "pitch", f.Timescale.Pitch, f.Timescale.Pitch > 0, "(0, INF]")
		check("timescale", "rate", f.Timescale.Rate, f.Timescale.Rate > 0, "(0, INF]")
	}
	if f.Tremolo != nil {
		check("tremolo", "frequency", f.Tremolo.Frequency, f.Tremolo.Frequency > 0, "(0, INF]")
		check("tremolo", "depth", f.Tremolo.Depth, f.Tremolo.Depth > 0 && f.Tremolo.Depth <= 1, "(0, 1]")
	}
	if f.Vibrato != nil {
		check("vibrato", "frequency", f.Vibrato.Frequency, f.Vibrato.Frequency > 0 && f.Vibrato.Frequency <= 14, "(0, 14]")
		check("vibrato", "depth", f.Vibrato.Depth, f.Vibrato.Depth > 0 && f.Vibrato.Depth <= 1, "(0, 1]")
	}
	if f.Volume != nil {
		check("volume", "volume", f.Volume.Volume, f.Volume.Volume >= 0, "[0, INF]")
	}
	return errors.Join(errs...)
}
