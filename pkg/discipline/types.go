package discipline

import (
	"fmt"
	"strings"
)

// Key identifies a single climbing discipline.
type Key string

const (
	// DeepWaterSolo is free soloing above water
	DeepWaterSolo Key = "deepwatersolo"

	// Sport is bolt-protected lead climbing
	Sport Key = "sport"

	// Trad is lead climbing on removable protection
	Trad Key = "trad"

	// Bouldering is ropeless climbing on short problems
	Bouldering Key = "bouldering"

	// Aid is progress by weighting gear
	Aid Key = "aid"

	// Ice is climbing on frozen waterfalls or glacier ice
	Ice Key = "ice"

	// Alpine is mountain routes with objective hazards
	Alpine Key = "alpine"

	// Mixed is combined rock and ice climbing
	Mixed Key = "mixed"

	// TopRope is climbing with the rope anchored above
	TopRope Key = "tr"

	// Snow is snow climbing
	Snow Key = "snow"
)

// TypeTagKey is the reserved metadata field some producers attach to a
// discipline record. It is never a discipline.
const TypeTagKey = "__typename"

// Keys lists every known discipline in canonical order. All operations in
// this package iterate records in this order.
var Keys = []Key{
	DeepWaterSolo,
	Sport,
	Trad,
	Bouldering,
	Aid,
	Ice,
	Alpine,
	Mixed,
	TopRope,
	Snow,
}

// Validate checks that the Key is one of the known disciplines.
func (k Key) Validate() error {
	for _, known := range Keys {
		if k == known {
			return nil
		}
	}
	return fmt.Errorf("unknown discipline: %q", string(k))
}

// ParseKey converts a string into a Key, ignoring case and surrounding space.
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// Record maps disciplines to whether they apply.
// A Record may be partial: a missing key reads as false.
type Record map[Key]bool

// Active returns the disciplines set to true, in canonical order.
func (r Record) Active() []Key {
	active := make([]Key, 0, len(r))
	for _, k := range Keys {
		if r[k] {
			active = append(active, k)
		}
	}
	return active
}

// Merge returns a new Record holding every key of r overlaid with the keys
// present in other.
func (r Record) Merge(other Record) Record {
	merged := make(Record, len(Keys))
	for k, v := range r {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Default returns a full Record with every known discipline set to false.
func Default() Record {
	r := make(Record, len(Keys))
	for _, k := range Keys {
		r[k] = false
	}
	return r
}
