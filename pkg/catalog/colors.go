package catalog

import (
	"strings"

	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
)

// Palette はIDからパレットを検索します。
func (s *Store) Palette(paletteID string) (domain.Palette, bool) {
	p, ok := s.palettes[paletteID]
	return p, ok
}

// Palettes は定義順のパレット一覧を返すのだ。
func (s *Store) Palettes() []domain.Palette {
	list := make([]domain.Palette, 0, len(s.paletteOrder))
	for _, id := range s.paletteOrder {
		list = append(list, s.palettes[id])
	}
	return list
}

// IndividualColors は個別カラートークンの全プールを返します。
func (s *Store) IndividualColors() []string {
	return s.colors
}

// ColorI18n はカラートークンの訳語表（トークン → 言語 → 表示文字列）を返します。
func (s *Store) ColorI18n() map[string]map[string]string {
	return s.colorI18n
}

// LocalizeColorToken は正規カラートークンを指定言語の表示文字列に変換します。
// 訳語がなければトークンをそのまま返すのだ。
func (s *Store) LocalizeColorToken(colorToken, language string) string {
	if colorToken == "" {
		return ""
	}
	lang := domain.NormalizeLanguage(language)
	if names, ok := s.colorI18n[colorToken]; ok {
		if localized := strings.TrimSpace(names[lang]); localized != "" {
			return localized
		}
		if localized := strings.TrimSpace(names["en"]); localized != "" {
			return localized
		}
	}
	return colorToken
}
