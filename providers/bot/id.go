package bot

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ID identifies any kind of bot, local or remote, model or agent. Normally
// this is just the model name or id as known by the provider, e.g. "gpt-4o".
//
// Two wire encodings are accepted on read. The legacy v1 form is
// "<n>;<id>@<provider>", where n is the decimal byte length of <id> and the
// provider suffix is discarded; the current form is the bare string itself.
// Writing always emits the bare form: decode is backward-compatible, encode
// is forward-only.
type ID string

// ParseID decodes a wire identifier, accepting both the legacy v1 framing and
// the current bare form. Decoding is attempted in fixed order: the v1 grammar
// first, and if it does not apply (no ';', a non-numeric length, or a length
// that runs past the end of the string) the whole raw string is the id.
//
// Example: ParseID("9;qwen:0.5b@http://localhost:11434/v1") == "qwen:0.5b".
func ParseID(raw string) ID {
	if id, ok := parseV1(raw); ok {
		return id
	}
	return ID(raw)
}

// parseV1 attempts the legacy "<n>;<id>@<provider>" grammar. The length, not
// the '@', separates the components, which lets ids contain '@' themselves.
func parseV1(raw string) (ID, bool) {
	lengthPart, rest, found := strings.Cut(raw, ";")
	if !found {
		return "", false
	}

	idLength, err := strconv.Atoi(lengthPart)
	if err != nil || idLength < 0 || idLength > len(rest) {
		return "", false
	}

	// Everything after the id is the provider tag (expected to start with a
	// semantic '@' separator) and is discarded.
	return ID(rest[:idLength]), true
}

// String returns the canonical bare form of the id.
func (id ID) String() string {
	return string(id)
}

// MarshalJSON always emits the bare canonical form; the legacy framing is
// never re-introduced on write.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// UnmarshalJSON runs the dual-format decode described on [ParseID].
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*id = ParseID(raw)
	return nil
}

// MarshalText emits the bare canonical form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id), nil
}

// UnmarshalText runs the dual-format decode described on [ParseID].
func (id *ID) UnmarshalText(data []byte) error {
	*id = ParseID(string(data))
	return nil
}
