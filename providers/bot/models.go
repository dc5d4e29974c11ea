package bot

import (
	"encoding/json"
	"sort"

	"github.com/rivo/uniseg"
)

/*
	##### DIRECTORY TYPES #####
*/

// Bot describes one backend-exposed agent or model, addressable through the
// [Client] contract. Bots are produced only by clients; composition layers
// may rewrite the ID when re-exporting but never touch the other fields.
type Bot struct {
	ID           ID            `json:"id"`
	Name         string        `json:"name"`
	Avatar       Avatar        `json:"avatar"`
	Capabilities CapabilitySet `json:"capabilities"`
}

// Avatar is the picture of a bot, represented either as a short piece of text
// (normally one or two graphemes) or as an image URL. Exactly one of the two
// fields is expected to be set.
type Avatar struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

// TextAvatar creates a textual avatar.
func TextAvatar(text string) Avatar {
	return Avatar{Text: text}
}

// ImageAvatar creates an avatar located at the given path or URL.
func ImageAvatar(url string) Avatar {
	return Avatar{Image: url}
}

// AvatarFromFirstGrapheme builds a textual avatar from the first grapheme
// cluster of text, so multi-byte emoji and combining sequences survive intact.
// Returns a zero Avatar when text is empty.
func AvatarFromFirstGrapheme(text string) Avatar {
	if text == "" {
		return Avatar{}
	}
	grapheme, _, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
	return Avatar{Text: grapheme}
}

// Capability is a self-reported feature flag of a bot. The vocabulary is
// closed; composition layers pass it through without inspection or filtering.
type Capability string

const (
	CapabilityTextIn          Capability = "text-in"
	CapabilityTextOut         Capability = "text-out"
	CapabilityAttachmentsIn   Capability = "attachments-in"
	CapabilityAttachmentsOut  Capability = "attachments-out"
	CapabilityRealtime        Capability = "realtime"
	CapabilityFunctionCalling Capability = "function-calling"
)

// CapabilitySet is the set of capabilities a bot supports. The zero value is
// an empty set ready for use with [CapabilitySet.With].
type CapabilitySet struct {
	capabilities map[Capability]struct{}
}

// NewCapabilitySet creates an empty capability set.
func NewCapabilitySet() CapabilitySet {
	return CapabilitySet{}
}

// With returns a copy of the set with the capability added. Useful for
// building sets fluently.
func (s CapabilitySet) With(capability Capability) CapabilitySet {
	capabilities := make(map[Capability]struct{}, len(s.capabilities)+1)
	for c := range s.capabilities {
		capabilities[c] = struct{}{}
	}
	capabilities[capability] = struct{}{}
	return CapabilitySet{capabilities: capabilities}
}

// Add inserts a capability into the set in place.
func (s *CapabilitySet) Add(capability Capability) {
	if s.capabilities == nil {
		s.capabilities = make(map[Capability]struct{})
	}
	s.capabilities[capability] = struct{}{}
}

// Has reports whether the set contains the capability.
func (s CapabilitySet) Has(capability Capability) bool {
	_, ok := s.capabilities[capability]
	return ok
}

// SupportsRealtime reports whether the bot supports realtime audio.
func (s CapabilitySet) SupportsRealtime() bool {
	return s.Has(CapabilityRealtime)
}

// SupportsFunctionCalling reports whether the bot supports tool calling.
func (s CapabilitySet) SupportsFunctionCalling() bool {
	return s.Has(CapabilityFunctionCalling)
}

// List returns the capabilities in stable sorted order.
func (s CapabilitySet) List() []Capability {
	capabilities := make([]Capability, 0, len(s.capabilities))
	for c := range s.capabilities {
		capabilities = append(capabilities, c)
	}
	sort.Slice(capabilities, func(i, j int) bool { return capabilities[i] < capabilities[j] })
	return capabilities
}

// MarshalJSON encodes the set as a sorted array of capability strings.
func (s CapabilitySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON decodes an array of capability strings.
func (s *CapabilitySet) UnmarshalJSON(data []byte) error {
	var capabilities []Capability
	if err := json.Unmarshal(data, &capabilities); err != nil {
		return err
	}
	s.capabilities = make(map[Capability]struct{}, len(capabilities))
	for _, c := range capabilities {
		s.capabilities[c] = struct{}{}
	}
	return nil
}

/*
	##### CONVERSATION TYPES #####
*/

// Role identifies who produced a message; compatible with string.
type Role string

const (
	RoleUser   Role = "user"   // The person operating the application
	RoleSystem Role = "system" // System/developer instructions
	RoleBot    Role = "bot"    // A bot reply; Message.Bot carries the sender id
	RoleTool   Role = "tool"   // Tool execution output
)

// Message is a single entry of a conversation. It is a flat pass-through
// record: clients forward it verbatim and composition layers never inspect
// or mutate its payload, only the identifier attached to a request.
type Message struct {
	Role Role `json:"role"`
	// Bot is the sender id when Role is RoleBot, empty otherwise.
	Bot     ID             `json:"bot,omitempty"`
	Content MessageContent `json:"content"`
}

// MessageContent is the payload of a message. During streaming, each chunk
// carries the full content accumulated so far (a cumulative snapshot), so
// consumers can replace rather than append.
type MessageContent struct {
	Text        string       `json:"text,omitempty"`
	Reasoning   string       `json:"reasoning,omitempty"`
	ToolCalls   []ToolCall   `json:"tool_calls,omitempty"`
	ToolResults []ToolResult `json:"tool_results,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// IsEmpty reports whether the content carries no payload at all.
func (c MessageContent) IsEmpty() bool {
	return c.Text == "" && c.Reasoning == "" &&
		len(c.ToolCalls) == 0 && len(c.ToolResults) == 0 && len(c.Attachments) == 0
}

// Attachment is a named binary payload attached to a message, such as an
// image or an audio clip. Data is base64-encoded on the wire.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	Data        []byte `json:"data,omitempty"`
}
