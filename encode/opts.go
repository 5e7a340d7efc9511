package encode

type EncodeOption func(*EncState)

// EncodePretty switches to multi-line output, one entry per line,
// indented with tabs. Container values in objects start on their own
// line.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// Depth sets the starting indent depth for pretty output.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
