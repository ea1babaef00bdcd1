package llm

import "strings"

// CleanJSONBlock strips the wrapping models add around JSON payloads even
// when instructed to return bare JSON: markdown code fences and short
// conversational preambles. The result is the best-effort JSON substring;
// callers still validate it against a schema.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Drop a language identifier like "json" on the fence line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			fenceLine := strings.TrimSpace(text[:idx])
			if fenceLine != "" && len(fenceLine) < 20 && !strings.ContainsAny(fenceLine, " {[") {
				text = text[idx+1:]
			} else {
				text = strings.TrimSpace(fenceLine + text[idx:])
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Preamble text before the payload: cut to the first JSON delimiter,
	// but only when the response clearly ends with the matching closer.
	if start := strings.IndexAny(text, "{["); start > 0 {
		closer := "}"
		if text[start] == '[' {
			closer = "]"
		}
		if strings.HasSuffix(text, closer) {
			return text[start:]
		}
	}

	return text
}
