package respond

import (
	"regexp"
)

var (
	// anthropicKeyPattern は openaiKeyPattern より先に適用する
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9\-_]+`)
	// マスク済み文字列 (sk-****) にはマッチしない
	openaiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9\-_]{10,}`)

	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-_.=]+`)

	// URL に埋め込まれた認証情報 (OLLAMA_HOST など)
	urlCredentialPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
)

// SanitizeError returns the error message with API keys and credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error())
}

// SanitizeString masks API keys and credentials in s.
func SanitizeString(s string) string {
	s = bearerPattern.ReplaceAllString(s, "Bearer ****")
	s = anthropicKeyPattern.ReplaceAllString(s, "sk-ant-****")
	s = openaiKeyPattern.ReplaceAllString(s, "sk-****")
	s = urlCredentialPattern.ReplaceAllString(s, "://$1:****@")
	return s
}
