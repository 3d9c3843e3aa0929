package domain

import "strings"

// SupportedLanguages は出力テキストとしてサポートしている言語コードの一覧なのだ。
var SupportedLanguages = []string{"en", "zh"}

// NormalizeLanguage は入ってきたロケールコードをサポート言語に正規化します。
// "zh-TW" や "zh_CN" のような地域付きコードも "zh" に丸めるのだ。
func NormalizeLanguage(language string) string {
	code := strings.ToLower(strings.TrimSpace(language))
	if strings.HasPrefix(code, "zh") {
		return "zh"
	}
	return "en"
}
