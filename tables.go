package gsm0338

const (
	// Escape is the code that selects the extension table for the following byte.
	Escape byte = 0x1B

	// Placeholder stands in for unencodable characters and undefined extension codes.
	Placeholder = '?'

	// placeholderCode is the basic table code of Placeholder.
	placeholderCode byte = 0x3F
)

// basicTable is the GSM 03.38 default alphabet indexed by 7-bit code.
// The entry at Escape is a sentinel and never produced by the decoder.
var basicTable = [128]rune{
	'@', '£', '$', '¥', 'è', 'é', 'ù', 'ì', 'ò', 'Ç', '\n', 'Ø', 'ø', '\r', 'Å', 'å',
	'Δ', '_', 'Φ', 'Γ', 'Λ', 'Ω', 'Π', 'Ψ', 'Σ', 'Θ', 'Ξ', '\u00a0', 'Æ', 'æ', 'ß', 'É',
	' ', '!', '"', '#', '¤', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
	'¡', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'Ä', 'Ö', 'Ñ', 'Ü', '§',
	'¿', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'ä', 'ö', 'ñ', 'ü', 'à',
}

// extensionTable holds the characters reached through Escape. Undefined
// slots hold Placeholder.
var extensionTable = func() (t [128]rune) {
	for i := range t {
		t[i] = Placeholder
	}
	t[0x0A] = '\f'
	t[0x14] = '^'
	t[0x28] = '{'
	t[0x29] = '}'
	t[0x2F] = '\\'
	t[0x3C] = '['
	t[0x3D] = '~'
	t[0x3E] = ']'
	t[0x40] = '|'
	t[0x65] = '€'
	return t
}()
