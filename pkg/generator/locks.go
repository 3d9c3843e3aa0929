package generator

import (
	"log/slog"
	"strings"

	"github.com/shouni/go-chara-prompt-kit/pkg/catalog"
	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
)

// ApplyLocks は呼び出し元が指定したロック文字列でスロットの値を上書きします。
// 文字列はまずカタログのアイテムに解決し（大文字小文字は無視）、
// 解決できなければリテラル文字列を表示値としてそのまま採用するのだ。
// この失敗は呼び出し元へは伝播しません。
func ApplyLocks(store *catalog.Store, cfg *domain.GeneratorConfig, locks map[string]string) {
	for _, def := range domain.SlotDefinitions {
		raw, ok := locks[def.Name]
		if !ok {
			continue
		}
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}

		slot := cfg.Slot(def.Name)
		if item, ok := store.ResolveSlotItem(def.Name, "", value); ok {
			slot.Value = item.Name
			slot.ValueID = item.ID
		} else {
			// カタログに無い値でもロックとして尊重するのだ
			slog.Debug("ロック値がカタログに見つからないため、リテラルとして採用するのだ",
				"slot", def.Name, "value", value)
			slot.Value = value
			slot.ValueID = value
		}
		slot.Locked = true
	}
}
