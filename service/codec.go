package service

import (
	"encoding/json"
	"fmt"

	"myandesite/domain"
)

// OperationDecoder builds a typed inbound operation from the raw JSON object.
type OperationDecoder func(raw []byte) (domain.ReceiveOperation, error)

// Codec maps wire tags to operation decoders. The "event" op is decoded through a second registry
// keyed by the event "type". Unknown ops decode to domain.UnknownOperation and unknown event types to
// domain.UnknownEvent; neither is an error.
type Codec struct {
	ops    map[string]OperationDecoder
	events map[string]OperationDecoder
}

// NewCodec returns a codec with every operation and event Andesite sends registered.
func NewCodec() *Codec {
	c := &Codec{
		ops:    make(map[string]OperationDecoder),
		events: make(map[string]OperationDecoder),
	}
	c.RegisterOperation(domain.OpConnectionID, decodeAs[domain.ConnectionUpdate])
	c.RegisterOperation(domain.OpMetadata, decodeAs[domain.MetadataUpdate])
	c.RegisterOperation(domain.OpStats, decodeAs[domain.StatsUpdate])
	c.RegisterOperation(domain.OpPlayerUpdate, decodeAs[domain.PlayerUpdate])
	c.RegisterOperation(domain.OpPong, decodeAs[domain.PongResponse])

	c.RegisterEvent(domain.EventTrackStart, decodeAs[domain.TrackStartEvent])
	c.RegisterEvent(domain.EventTrackEnd, decodeAs[domain.TrackEndEvent])
	c.RegisterEvent(domain.EventTrackException, decodeAs[domain.TrackExceptionEvent])
	c.RegisterEvent(domain.EventTrackStuck, decodeAs[domain.TrackStuckEvent])
	c.RegisterEvent(domain.EventWebSocketClosed, decodeAs[domain.WebSocketClosedEvent])
	return c
}

// RegisterOperation sets the decoder of an op, replacing any previous one. Not safe to call while decoding.
func (c *Codec) RegisterOperation(op string, decode OperationDecoder) {
	c.ops[op] = decode
}

// RegisterEvent sets the decoder of an event type.
func (c *Codec) RegisterEvent(eventType string, decode OperationDecoder) {
	c.events[eventType] = decode
}

// Decode classifies a JSON object read from a node.
//
// Returns: the typed operation; domain.UnknownOperation for an unregistered op; domain.UnknownEvent for an
// unregistered event type; ErrMissingOperation / ErrMissingEventType when the tag is absent or not a
// string; a wrapped json error when the object does not fit the registered type.
func (c *Codec) Decode(body map[string]json.RawMessage) (domain.ReceiveOperation, error) {
	op, ok := stringField(body, "op")
	if !ok {
		return nil, ErrMissingOperation
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	if op == domain.OpEvent {
		return c.decodeEvent(body, raw)
	}
	decode, ok := c.ops[op]
	if !ok {
		return domain.UnknownOperation{Name: op, Body: body}, nil
	}
	out, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", op, err)
	}
	return out, nil
}

func (c *Codec) decodeEvent(body map[string]json.RawMessage, raw []byte) (domain.ReceiveOperation, error) {
	typ, ok := stringField(body, "type")
	if !ok {
		return nil, ErrMissingEventType
	}
	decode, ok := c.events[typ]
	if !ok {
		var evt domain.UnknownEvent
		if err := json.Unmarshal(raw, &evt.EventBase); err != nil {
			return nil, fmt.Errorf("decode event %s: %w", typ, err)
		}
		evt.Body = body
		return evt, nil
	}
	out, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode event %s: %w", typ, err)
	}
	return out, nil
}

func decodeAs[T domain.ReceiveOperation](raw []byte) (domain.ReceiveOperation, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func stringField(body map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := body[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}

// EncodeSendOperation turns op into the JSON object sent to the node, stamped with "op" and "guildId".
func EncodeSendOperation(guildID domain.GuildID, op domain.SendOperation) ([]byte, error) {
	raw, err := json.Marshal(op)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", op.Op(), err)
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("encode %s: operation is not an object: %w", op.Op(), err)
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage)
	}
	fields["op"], _ = json.Marshal(op.Op())
	fields["guildId"], _ = json.Marshal(guildID)
	return json.Marshal(fields)
}
