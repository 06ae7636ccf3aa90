package adapter

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// The remote JSON format is loose about scalar types: the same field may
// arrive as a string in one method and as a number in another. The flex types
// below accept both.

// flexString decodes a JSON string, number or boolean into its text form.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(b)
	return nil
}

func (s flexString) String() string {
	return string(s)
}

// flexInt decodes a JSON number or numeric string. An empty string is zero.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return err
	}
	*n = flexInt(v)
	return nil
}

// flexBool decodes 0/1 (as number or string) and true/false.
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	switch s {
	case "", "0", "false":
		*f = false
	default:
		*f = true
	}
	return nil
}

// content is the {"_content": "..."} wrapper used for free text. Some
// methods send the bare string instead, which is accepted too.
type content struct {
	Content flexString `json:"_content"`
}

func (c *content) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return c.Content.UnmarshalJSON(b)
	}

	var wrapped struct {
		Content flexString `json:"_content"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	c.Content = wrapped.Content
	return nil
}

func (c content) String() string {
	return string(c.Content)
}

type idRef struct {
	ID flexString `json:"id"`
}

type pageInfo struct {
	Page  flexInt `json:"page"`
	Pages flexInt `json:"pages"`
}

type apiStatus struct {
	Stat    string  `json:"stat"`
	Code    flexInt `json:"code"`
	Message string  `json:"message"`
}

func ids(refs []idRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, string(r.ID))
	}
	return out
}
