package service

import (
	"encoding/json"
	"testing"
	"time"

	"myandesite/domain"
	"myandesite/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeString(t *testing.T, c *Codec, s string) (domain.ReceiveOperation, error) {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(s), &body))
	return c.Decode(body)
}

func TestCodec_Decode(t *testing.T) {
	c := NewCodec()

	t.Run("connection_id", func(t *testing.T) {
		op, err := decodeString(t, c, `{"op":"connection-id","id":"abc123"}`)
		require.NoError(t, err)
		assert.Equal(t, domain.ConnectionUpdate{ID: "abc123"}, op)
	})
	t.Run("pong", func(t *testing.T) {
		op, err := decodeString(t, c, `{"op":"pong","guildId":"42","userId":"1"}`)
		require.NoError(t, err)
		assert.Equal(t, domain.PongResponse{GuildID: 42, UserID: 1}, op)
	})
	t.Run("stats", func(t *testing.T) {
		op, err := decodeString(t, c, `{"op":"stats","userId":"1","stats":{"players":{"total":2,"playing":1}}}`)
		require.NoError(t, err)
		su, ok := op.(domain.StatsUpdate)
		require.True(t, ok)
		assert.Equal(t, 1, su.Stats.Players.Playing)
	})
	t.Run("track_start_event", func(t *testing.T) {
		op, err := decodeString(t, c, `{"op":"event","type":"TrackStartEvent","guildId":"549904277108424715","userId":"549905730099216384","track":"QAAAiwIAJ0x1aXMg"}`)
		require.NoError(t, err)
		evt, ok := op.(domain.TrackStartEvent)
		require.True(t, ok)
		assert.Equal(t, domain.GuildID(549904277108424715), evt.Guild())
		assert.Equal(t, "QAAAiwIAJ0x1aXMg", evt.Track)
		assert.Equal(t, domain.OpEvent, evt.Op())
		assert.Equal(t, domain.EventTrackStart, evt.EventType())
	})
	t.Run("track_end_event", func(t *testing.T) {
		op, err := decodeString(t, c, `{"op":"event","type":"TrackEndEvent","guildId":"1","userId":"2","track":"t","reason":"FINISHED","mayStartNext":true}`)
		require.NoError(t, err)
		evt := op.(domain.TrackEndEvent)
		assert.Equal(t, domain.TrackEndFinished, evt.Reason)
		assert.True(t, evt.MayStartNext)
	})
	t.Run("track_stuck_event_threshold_in_ms", func(t *testing.T) {
		op, err := decodeString(t, c, `{"op":"event","type":"TrackStuckEvent","guildId":"1","userId":"2","track":"t","threshold":5000}`)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, op.(domain.TrackStuckEvent).Threshold.Std())
	})
	t.Run("unknown_event_keeps_body", func(t *testing.T) {
		op, err := decodeString(t, c, `{"op":"event","type":"SpecialEvent","guildId":"234234234234234","userId":"1231231231231","a":5}`)
		require.NoError(t, err)
		evt, ok := op.(domain.UnknownEvent)
		require.True(t, ok)
		assert.Equal(t, "SpecialEvent", evt.EventType())
		assert.Equal(t, domain.GuildID(234234234234234), evt.Guild())
		assert.JSONEq(t, `5`, string(evt.Body["a"]))
	})
	t.Run("unknown_op", func(t *testing.T) {
		op, err := decodeString(t, c, `{"op":"something-new","x":1}`)
		require.NoError(t, err)
		u, ok := op.(domain.UnknownOperation)
		require.True(t, ok)
		assert.Equal(t, "something-new", u.Op())
	})
	t.Run("missing_op", func(t *testing.T) {
		_, err := decodeString(t, c, `{"id":"abc"}`)
		assert.ErrorIs(t, err, ErrMissingOperation)
	})
	t.Run("event_without_type", func(t *testing.T) {
		_, err := decodeString(t, c, `{"op":"event","guildId":"1"}`)
		assert.ErrorIs(t, err, ErrMissingEventType)
	})
	t.Run("bad_shape", func(t *testing.T) {
		_, err := decodeString(t, c, `{"op":"player-update","guildId":"not-a-number"}`)
		assert.Error(t, err)
	})
	t.Run("custom_registration", func(t *testing.T) {
		custom := NewCodec()
		custom.RegisterOperation("pong", func([]byte) (domain.ReceiveOperation, error) {
			return domain.PongResponse{GuildID: 99}, nil
		})
		op, err := decodeString(t, custom, `{"op":"pong"}`)
		require.NoError(t, err)
		assert.Equal(t, domain.GuildID(99), op.(domain.PongResponse).GuildID)
	})
}

func TestEncodeSendOperation(t *testing.T) {
	tests := []struct {
		name string
		op   domain.SendOperation
		want string
	}{
		{name: "ping", op: domain.Ping{}, want: `{"op":"ping","guildId":"42"}`},
		{name: "pause", op: domain.Pause{Pause: true}, want: `{"op":"pause","guildId":"42","pause":true}`},
		{
			name: "play_with_options",
			op: domain.Play{
				Track:  "QAAA",
				Start:  helpers.Ptr(domain.Duration(1500 * time.Millisecond)),
				Volume: helpers.Ptr(domain.Volume(0.5)),
			},
			want: `{"op":"play","guildId":"42","track":"QAAA","start":1500,"volume":50}`,
		},
		{name: "seek", op: domain.Seek{Position: domain.Duration(time.Minute)}, want: `{"op":"seek","guildId":"42","position":60000}`},
		{name: "volume", op: domain.SetVolume{Volume: 1.2}, want: `{"op":"volume","guildId":"42","volume":120}`},
		{
			name: "filters",
			op:   domain.FilterUpdate{Filters: domain.Filters{Tremolo: &domain.Tremolo{Enabled: true, Frequency: 2, Depth: 0.5}}},
			want: `{"op":"filters","guildId":"42","tremolo":{"enabled":true,"frequency":2,"depth":0.5}}`,
		},
		{
			name: "voice_server_update",
			op:   domain.VoiceServerUpdate{SessionID: "s", Event: domain.VoiceServerEvent{Token: "t", GuildID: 42, Endpoint: "eu-west1.discord.media:443"}},
			want: `{"op":"voice-server-update","guildId":"42","sessionId":"s","event":{"token":"t","guild_id":"42","endpoint":"eu-west1.discord.media:443"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeSendOperation(42, tt.op)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
