package icon

import (
	"encoding/json"
	"fmt"

	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

// SquareScope is the square-idiom half of the supported-platforms declaration:
// either the "shared" keyword or an explicit platform list.
type SquareScope struct {
	Shared    bool
	Platforms []string
}

// MarshalJSON emits "shared" or the platform array.
func (s SquareScope) MarshalJSON() ([]byte, error) {
	if s.Shared {
		return json.Marshal("shared")
	}
	return json.Marshal(s.Platforms)
}

// UnmarshalJSON probes string-then-array, mirroring the fill codec.
func (s *SquareScope) UnmarshalJSON(data []byte) error {
	var keyword string
	if err := json.Unmarshal(data, &keyword); err == nil {
		if keyword != "shared" {
			return iconerrors.NewParseError("", "supported-platforms.squares", fmt.Errorf("unknown keyword %q", keyword))
		}
		*s = SquareScope{Shared: true}
		return nil
	}

	var platforms []string
	if err := json.Unmarshal(data, &platforms); err != nil {
		return iconerrors.NewParseError("", "supported-platforms.squares", err)
	}
	*s = SquareScope{Platforms: platforms}
	return nil
}

// Platforms declares which platform names render the icon with each idiom.
type Platforms struct {
	Circles []string    `json:"circles,omitempty"`
	Squares SquareScope `json:"squares"`
}
