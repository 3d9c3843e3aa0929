package domain

import (
	"testing"
)

func TestSlotDefinitions(t *testing.T) {
	t.Run("スロット数が31であること", func(t *testing.T) {
		if len(SlotDefinitions) != 31 {
			t.Errorf("期待値 31, 実際の値 %d", len(SlotDefinitions))
		}
	})

	t.Run("宣言順の先頭と末尾が正しいこと", func(t *testing.T) {
		if SlotDefinitions[0].Name != "hair_style" {
			t.Errorf("先頭スロットの期待値 'hair_style', 実際の値 '%s'", SlotDefinitions[0].Name)
		}
		if last := SlotDefinitions[len(SlotDefinitions)-1]; last.Name != "background" {
			t.Errorf("末尾スロットの期待値 'background', 実際の値 '%s'", last.Name)
		}
	})

	t.Run("スロット名に重複がないこと", func(t *testing.T) {
		seen := make(map[string]bool, len(SlotDefinitions))
		for _, def := range SlotDefinitions {
			if seen[def.Name] {
				t.Errorf("スロット名 '%s' が重複しています", def.Name)
			}
			seen[def.Name] = true
		}
	})

	t.Run("カラー対応は服カテゴリだけであること", func(t *testing.T) {
		for _, def := range SlotDefinitions {
			if def.HasColor && def.Category != "clothing" {
				t.Errorf("服以外のスロット '%s' がカラー対応になっています", def.Name)
			}
		}
	})
}

func TestFindSlotDefinition(t *testing.T) {
	def, ok := FindSlotDefinition("lower_body")
	if !ok {
		t.Fatal("lower_body の定義が見つかりませんでした")
	}
	if def.Catalog != "clothing" || def.IndexKey != "lower_body" {
		t.Errorf("定義内容が不正です: %+v", def)
	}

	if _, ok := FindSlotDefinition("no_such_slot"); ok {
		t.Error("存在しないスロット名で定義が返りました")
	}
}

func TestSlotNamesByCategory(t *testing.T) {
	names := SlotNamesByCategory("clothing")
	if len(names) != 11 {
		t.Fatalf("服スロット数の期待値 11, 実際の値 %d", len(names))
	}
	// カテゴリ内でも宣言順が保たれること
	if names[0] != "head" || names[len(names)-1] != "accessory" {
		t.Errorf("服スロットの順序が不正です: %v", names)
	}
}
