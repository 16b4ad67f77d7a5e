package area

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ID identifies an area. Upstream sends ids as numbers or numeric strings;
// both decode to the same ID.
type ID int64

// String returns the base-10 form of the id.
func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// UnmarshalJSON accepts either a JSON number or a string holding a base-10 integer.
func (id *ID) UnmarshalJSON(b []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	v, ok := ParseID(raw)
	if !ok {
		return fmt.Errorf("invalid area id %s", string(b))
	}
	*id = v
	return nil
}

// ParseID normalises v to an ID. Strings are parsed as base-10 integers,
// integer kinds are used as-is and floats only when they hold an integral value.
// ok is false for anything that does not normalise; such values never match.
func ParseID(v any) (ID, bool) {
	switch t := v.(type) {
	case ID:
		return t, true
	case *ID:
		if t == nil {
			return 0, false
		}
		return *t, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, false
		}
		return ID(n), true
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return ID(n), true
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return ParseID(f)
	case int:
		return ID(t), true
	case int32:
		return ID(t), true
	case int64:
		return ID(t), true
	case uint32:
		return ID(t), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) || t != math.Trunc(t) {
			return 0, false
		}
		return ID(t), true
	default:
		return 0, false
	}
}

// ParseIDs normalises every value and drops the ones that do not parse.
func ParseIDs[T any](values []T) []ID {
	ids := make([]ID, 0, len(values))
	for _, v := range values {
		if id, ok := ParseID(v); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Type tags the level of an area within the EA -> PSO -> RMA tree.
type Type string

const (
	TypeEAArea  Type = "EA Area"
	TypePSOArea Type = "PSO Area"
	TypeRMA     Type = "RMA"
)

// ParentType returns the type a parent of t must have, or "" for top-level areas.
func (t Type) ParentType() Type {
	switch t {
	case TypePSOArea:
		return TypeEAArea
	case TypeRMA:
		return TypePSOArea
	default:
		return ""
	}
}

// Valid reports whether t is one of the known area types.
func (t Type) Valid() bool {
	return t == TypeEAArea || t == TypePSOArea || t == TypeRMA
}

// Area is a node in the three-level area hierarchy.
type Area struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	AreaType Type   `json:"area_type"`
	ParentID *ID    `json:"parent_id,omitempty"`
}

// UnmarshalJSON decodes an area, normalising string or numeric ids.
// A parent_id that is missing, null or not numeric decodes to nil.
func (a *Area) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID       json.RawMessage `json:"id"`
		Name     string          `json:"name"`
		AreaType Type            `json:"area_type"`
		ParentID json.RawMessage `json:"parent_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw.ID) == 0 {
		return fmt.Errorf("area %q has no id", raw.Name)
	}
	var id ID
	if err := id.UnmarshalJSON(raw.ID); err != nil {
		return err
	}
	a.ID = id
	a.Name = raw.Name
	a.AreaType = raw.AreaType
	a.ParentID = nil
	if len(raw.ParentID) > 0 && string(raw.ParentID) != "null" {
		var pid ID
		if err := pid.UnmarshalJSON(raw.ParentID); err == nil {
			a.ParentID = &pid
		}
	}
	return nil
}

// HasParent reports whether the area's parent_id equals id.
func (a Area) HasParent(id ID) bool {
	return a.ParentID != nil && *a.ParentID == id
}

// Validate checks the forest invariant: every parent exists and has the type
// the child's level requires. It returns one error per violation.
func Validate(areas []Area) []error {
	byID := make(map[ID]Area, len(areas))
	for _, a := range areas {
		byID[a.ID] = a
	}
	var errs []error
	for _, a := range areas {
		want := a.AreaType.ParentType()
		switch {
		case a.ParentID == nil && want != "":
			errs = append(errs, fmt.Errorf("%s %d has no parent", a.AreaType, a.ID))
		case a.ParentID != nil && want == "":
			errs = append(errs, fmt.Errorf("%s %d must not have a parent", a.AreaType, a.ID))
		case a.ParentID != nil:
			p, ok := byID[*a.ParentID]
			if !ok {
				errs = append(errs, fmt.Errorf("%s %d references missing parent %d", a.AreaType, a.ID, *a.ParentID))
			} else if p.AreaType != want {
				errs = append(errs, fmt.Errorf("%s %d has parent %d of type %q, want %q", a.AreaType, a.ID, p.ID, p.AreaType, want))
			}
		}
	}
	return errs
}
