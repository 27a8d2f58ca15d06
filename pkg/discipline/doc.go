// Package discipline encodes climbing discipline records to and from their
// compact textual forms.
//
// # Overview
//
// A Record flags which of the ten known disciplines apply to a climb. It can
// be rendered as display names ("Trad", "Aid") or as short codes ("T A"), and
// a code string can be decoded back into a Record.
//
// # Codes
//
// Encoding is mechanical: the first letter of the key, uppercased, except for
// top-rope which encodes as "TR". Decoding only accepts the five codes of the
// canonical table:
//
//	S  → sport
//	T  → trad
//	A  → aid
//	TR → tr
//	B  → bouldering
//
// The two directions are deliberately asymmetric. Ice, alpine, mixed, snow and
// deep-water-solo encode to I, A, M, S and D, and A and S collide with aid and
// sport. Only records restricted to the five decodable disciplines survive a
// round trip.
//
// # Usage Example
//
//	import "github.com/dyluth/belay/pkg/discipline"
//
//	r := discipline.Record{discipline.Trad: true, discipline.Aid: true}
//	discipline.CodesString(r) // "T A"
//	discipline.Names(r)       // ["Trad", "Aid"]
//
//	decoded, hadError := discipline.Decode("T x")
//	// decoded = {trad: true}, hadError = true
//
// Every operation is a pure function and safe for concurrent use.
package discipline
