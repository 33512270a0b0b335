package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrNotObject is returned when a JSON value that should be an object is not.
var ErrNotObject = errors.New("not a JSON object")

type member struct {
	Key   string
	Value json.RawMessage
}

// decodeObject reads a JSON object keeping its key order. A repeated key keeps
// the position of its first occurrence and the value of its last, the same as
// a browser's JSON.parse.
func decodeObject(raw json.RawMessage) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	var members []member
	seen := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}
		if i, ok := seen[key]; ok {
			members[i].Value = value
			continue
		}
		seen[key] = len(members)
		members = append(members, member{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}

// decodeDescriptor never fails. Fields with the wrong shape are left empty and
// render as the "None" placeholder.
func decodeDescriptor(raw json.RawMessage, nested bool) Descriptor {
	var d Descriptor
	fields, err := decodeObject(raw)
	if err != nil {
		return d
	}
	for _, f := range fields {
		switch f.Key {
		case "description":
			d.Description = text(f.Value)
		case "arguments":
			d.Arguments = decodeArguments(f.Value)
		case "permissions":
			d.Permissions = decodePermissions(f.Value)
		case "subcommands":
			if nested {
				continue
			}
			subs, err := decodeObject(f.Value)
			if err != nil {
				continue
			}
			for _, s := range subs {
				d.Subcommands = append(d.Subcommands, Subcommand{
					Name:       s.Key,
					Descriptor: decodeDescriptor(s.Value, true),
				})
			}
		}
	}
	return d
}

func decodeArguments(raw json.RawMessage) []Argument {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	args := make([]Argument, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			continue
		}
		arg := Argument{
			Name:     text(fields["name"]),
			Required: truthy(fields["required"]),
		}
		if truthy(fields["default"]) {
			arg.Default = text(fields["default"])
		}
		args = append(args, arg)
	}
	return args
}

func decodePermissions(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	perms := make([]string, 0, len(items))
	for _, item := range items {
		perms = append(perms, text(item))
	}
	return perms
}

// text renders a scalar for display: strings verbatim, null as empty and
// anything else as its JSON text.
func text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// truthy follows JavaScript truthiness, which the documents were written for:
// null, false, 0 and "" are false, everything else is true.
func truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch string(raw) {
	case "null", "false", `""`:
		return false
	}
	if c := raw[0]; c == '-' || (c >= '0' && c <= '9') {
		f, err := strconv.ParseFloat(string(raw), 64)
		return err != nil || f != 0
	}
	return true
}
