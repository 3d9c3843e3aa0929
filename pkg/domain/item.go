package domain

import "strings"

// CatalogItem はカタログに登録された1つの選択肢（属性値）を保持します。
// カタログ読み込み時に一度だけ生成され、それ以降は不変です。
type CatalogItem struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	NameI18n map[string]string `json:"name_i18n,omitempty"`
	Aliases  []string          `json:"aliases,omitempty"`

	// カテゴリ固有の属性なのだ。CoversLegs は下半身アイテムのみ意味を持つのだよ。
	Category   string `json:"category,omitempty"`
	CoversLegs bool   `json:"covers_legs,omitempty"`
	UsesHands  bool   `json:"uses_hands,omitempty"`
}

// LocalizedName は指定言語の表示名を返します。
// フォールバック順序: 要求言語 → en → Name → ID。
func (it CatalogItem) LocalizedName(language string) string {
	lang := NormalizeLanguage(language)
	if it.NameI18n != nil {
		if localized := strings.TrimSpace(it.NameI18n[lang]); localized != "" {
			return localized
		}
		if localized := strings.TrimSpace(it.NameI18n["en"]); localized != "" {
			return localized
		}
	}
	if it.Name != "" {
		return it.Name
	}
	return it.ID
}

// Palette は名前付きのカラーパレット（カラートークンの厳選リスト）です。
type Palette struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	NameI18n map[string]string `json:"name_i18n,omitempty"`
	Colors   []string          `json:"colors"`
}

// LocalizedName はパレットの表示名を返します。フォールバックは CatalogItem と同じ規則です。
func (p Palette) LocalizedName(language string) string {
	lang := NormalizeLanguage(language)
	if p.NameI18n != nil {
		if localized := strings.TrimSpace(p.NameI18n[lang]); localized != "" {
			return localized
		}
		if localized := strings.TrimSpace(p.NameI18n["en"]); localized != "" {
			return localized
		}
	}
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}
