package openai

import "strings"

// repairJSON attempts to fix common JSON formatting issues seen in LLM
// responses before unmarshaling:
//   - a missing opening quote before an object key (`, summary":` -> `, "summary":`)
//   - a trailing comma before a closing brace or bracket
func repairJSON(s string) string {
	var out strings.Builder
	out.Grow(len(s) + 32)

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			out.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			out.WriteByte(c)

		case c == '{' || c == ',':
			out.WriteByte(c)
			// Look ahead past whitespace for a bare key followed by `":`.
			j := i + 1
			for j < len(s) && isJSONSpace(s[j]) {
				j++
			}
			start := j
			for j < len(s) && isKeyChar(s[j]) {
				j++
			}
			if j > start && j+1 < len(s) && s[j] == '"' && s[j+1] == ':' {
				out.WriteString(s[i+1 : start])
				out.WriteByte('"')
				out.WriteString(s[start:j])
				i = j - 1 // resume at the existing closing quote
			}

		default:
			// Drop a trailing comma before a closer.
			if c == '}' || c == ']' {
				trimmed := strings.TrimRight(out.String(), " \t\n\r")
				if strings.HasSuffix(trimmed, ",") {
					rebuilt := trimmed[:len(trimmed)-1]
					out.Reset()
					out.WriteString(rebuilt)
				}
			}
			out.WriteByte(c)
		}
	}

	return out.String()
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isKeyChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
