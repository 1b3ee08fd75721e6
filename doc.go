/*
Package gsm0338 converts text between Unicode and the GSM 03.38 7-bit default
alphabet used by SMS.

Every character of the default alphabet encodes to one byte holding its 7-bit
code. The characters of the extension table encode to two bytes, the Escape
code followed by the extension code. Characters outside both tables encode to
the Placeholder '?'.

	b := gsm0338.Encode("Price: 5€")      // "Price: 5" + {0x1B, 0x65}
	s, err := gsm0338.Decode(b)           // "Price: 5€"

The codec works on unpacked septets, one per byte. Packing septets into octets,
splitting long messages and choosing a different data coding are left to the
caller.

Streams are handled by Encoder and Decoder, and Encoding plugs the codec into
golang.org/x/text/transform.
*/
package gsm0338

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gsm0338'
func tracer() tracing.Trace {
	return tracing.Select("gsm0338")
}
