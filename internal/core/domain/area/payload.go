package area

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// ErrInvalidPayload is returned when a stored or fetched payload has no area list in it.
var ErrInvalidPayload = errors.New("invalid area payload")

// Envelope is the shape areas are written to a cache segment in.
type Envelope struct {
	Item   []Area `json:"item"`
	Stored int64  `json:"stored"`
	TTL    int64  `json:"ttl"`
}

// EncodeEnvelope serialises areas for storage with the given ttl.
func EncodeEnvelope(areas []Area, ttl time.Duration) ([]byte, error) {
	if areas == nil {
		areas = []Area{}
	}
	return json.Marshal(Envelope{
		Item:   areas,
		Stored: time.Now().UnixMilli(),
		TTL:    ttl.Milliseconds(),
	})
}

// DecodeList turns any of the shapes an area list can arrive in into a slice:
//
//   - a wrapper object holding the list under "item" (cache envelope) or "data" (API envelope)
//   - a plain JSON array
//   - an array-like object keyed "0", "1", ... which is put back in numeric order
//
// Entries that are not objects or whose id does not normalise are skipped.
func DecodeList(raw []byte) ([]Area, error) {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return nil, ErrInvalidPayload
	}
	return decodeResult(gjson.ParseBytes(raw), 0)
}

func decodeResult(r gjson.Result, depth int) ([]Area, error) {
	if depth > 2 {
		return nil, ErrInvalidPayload
	}
	switch {
	case r.IsArray():
		return decodeElements(r.Array()), nil
	case r.IsObject():
		for _, field := range []string{"item", "data"} {
			if inner := r.Get(field); inner.Exists() {
				return decodeResult(inner, depth+1)
			}
		}
		if elems, ok := arrayLike(r); ok {
			return decodeElements(elems), nil
		}
	}
	return nil, fmt.Errorf("%w: unexpected %s", ErrInvalidPayload, r.Type)
}

// arrayLike returns the values of an object whose keys are exactly 0..n-1.
func arrayLike(r gjson.Result) ([]gjson.Result, bool) {
	type indexed struct {
		i int
		v gjson.Result
	}
	var items []indexed
	ok := true
	r.ForEach(func(key, value gjson.Result) bool {
		i, err := strconv.Atoi(key.String())
		if err != nil || i < 0 {
			ok = false
			return false
		}
		items = append(items, indexed{i: i, v: value})
		return true
	})
	if !ok {
		return nil, false
	}
	sort.Slice(items, func(a, b int) bool { return items[a].i < items[b].i })
	out := make([]gjson.Result, len(items))
	for n, it := range items {
		if it.i != n {
			return nil, false
		}
		out[n] = it.v
	}
	return out, true
}

func decodeElements(elems []gjson.Result) []Area {
	areas := make([]Area, 0, len(elems))
	for _, e := range elems {
		if !e.IsObject() {
			continue
		}
		var a Area
		if err := json.Unmarshal([]byte(e.Raw), &a); err != nil {
			continue
		}
		areas = append(areas, a)
	}
	return areas
}
