package catalog

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encode serialises the cursor to an opaque, URL-safe token. A nil cursor yields "".
func (c *Cursor) Encode() string {
	if c == nil {
		return ""
	}
	raw := fmt.Sprintf("%s|%s", c.ID, c.Name)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by Encode. An empty token yields nil.
func DecodeCursor(token string) (*Cursor, error) {
	if strings.TrimSpace(token) == "" {
		return nil, nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 || parts[0] == "" {
		return nil, fmt.Errorf("invalid cursor format")
	}
	return &Cursor{ID: parts[0], Name: parts[1]}, nil
}
