package constvars

const (
	// RegexCSSLength accepts plain CSS lengths like "70%", "120px" or "2.5rem".
	RegexCSSLength = `^\d+(\.\d+)?(%|px|rem|em|vw|vh|ch)$`
)
