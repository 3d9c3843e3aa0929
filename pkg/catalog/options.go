package catalog

import (
	"strings"

	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
)

// ItemByID はカタログ名とアイテムIDからアイテムを検索します。
func (s *Store) ItemByID(catalogName, itemID string) (domain.CatalogItem, bool) {
	if itemID == "" {
		return domain.CatalogItem{}, false
	}
	item, ok := s.itemsByID[catalogName][itemID]
	return item, ok
}

// ItemByName は表示名（または別名）からアイテムを検索します。大文字小文字は無視します。
func (s *Store) ItemByName(catalogName, name string) (domain.CatalogItem, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return domain.CatalogItem{}, false
	}
	id, ok := s.idByName[catalogName][key]
	if !ok {
		return domain.CatalogItem{}, false
	}
	return s.ItemByID(catalogName, id)
}

// SlotItemByID はスロット名とアイテムIDからアイテムを解決します。
func (s *Store) SlotItemByID(slotName, itemID string) (domain.CatalogItem, bool) {
	def, ok := domain.FindSlotDefinition(slotName)
	if !ok {
		return domain.CatalogItem{}, false
	}
	return s.ItemByID(def.Catalog, itemID)
}

// ResolveSlotItem は正規IDまたは表示名のどちらかからスロットのアイテムを解決するのだ。
// IDが優先で、見つからなければ名前引きにフォールバックするのだよ。
func (s *Store) ResolveSlotItem(slotName, valueID, valueName string) (domain.CatalogItem, bool) {
	def, ok := domain.FindSlotDefinition(slotName)
	if !ok {
		return domain.CatalogItem{}, false
	}
	if item, ok := s.ItemByID(def.Catalog, valueID); ok {
		return item, true
	}
	return s.ItemByName(def.Catalog, valueName)
}

// OptionsForSlot はスロットで選択可能なアイテム一覧をカタログの索引順で返します。
// カタログが読み込めていない場合は空のスライスを返します（エラーにはなりません）。
//
// 例外として、poses カタログのうち "gesture" カテゴリのアイテムは
// 汎用の pose スロットから除外します。ジェスチャー系は専用の gesture スロット
// からだけ出したいのだ。
func (s *Store) OptionsForSlot(slotName string) []domain.CatalogItem {
	def, ok := domain.FindSlotDefinition(slotName)
	if !ok {
		return nil
	}

	file, ok := s.catalogs[def.Catalog]
	if !ok {
		return nil
	}

	// expressions は index を持たず items 全体が選択肢になる
	if def.Catalog == "expressions" {
		return file.Items
	}

	if def.IndexKey == "" {
		if def.Catalog == "poses" && slotName == "pose" {
			var items []domain.CatalogItem
			for _, item := range file.Items {
				if item.Category != "gesture" {
					items = append(items, item)
				}
			}
			return items
		}
		return file.Items
	}

	index := file.IndexByCategory
	if def.Catalog == "clothing" {
		index = file.IndexByBodyPart
	}

	byID := s.itemsByID[def.Catalog]
	var items []domain.CatalogItem
	for _, id := range index[def.IndexKey] {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items
}

// LowerBodyCoversLegs は下半身アイテムIDが脚を覆うかどうかを返します。
func (s *Store) LowerBodyCoversLegs(itemID string) bool {
	if itemID == "" {
		return false
	}
	item, ok := s.SlotItemByID("lower_body", itemID)
	return ok && item.CoversLegs
}

// CoversLegsByID は下半身アイテムIDと脚を覆うかどうかの対応表を返します。
func (s *Store) CoversLegsByID() map[string]bool {
	mapping := make(map[string]bool)
	for _, item := range s.OptionsForSlot("lower_body") {
		if item.ID != "" {
			mapping[item.ID] = item.CoversLegs
		}
	}
	return mapping
}

// PoseUsesHandsByID はポーズアイテムIDと手を使うかどうかの対応表を返します。
func (s *Store) PoseUsesHandsByID() map[string]bool {
	mapping := make(map[string]bool)
	for _, item := range s.OptionsForSlot("pose") {
		if item.ID != "" {
			mapping[item.ID] = item.UsesHands
		}
	}
	return mapping
}
