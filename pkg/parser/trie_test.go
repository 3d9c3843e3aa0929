package parser

import (
	"testing"
)

func TestColorTrie(t *testing.T) {
	trie := NewColorTrie()
	trie.Insert("red", "")
	trie.Insert("navy blue", "")
	trie.Insert("红色", "red")

	t.Run("語境界つきの前方一致が検出されること", func(t *testing.T) {
		canonical, consumed, ok := trie.FindPrefix("red dress")
		if !ok || canonical != "red" {
			t.Fatalf("一致結果が不正です: '%s', ok=%v", canonical, ok)
		}
		if consumed != len("red ") {
			t.Errorf("消費バイト数の期待値 %d, 実際の値 %d", len("red "), consumed)
		}
	})

	t.Run("語境界がなければ一致しないこと", func(t *testing.T) {
		if _, _, ok := trie.FindPrefix("reddress"); ok {
			t.Error("境界なしで一致しました")
		}
	})

	t.Run("カラー単独では一致しないこと", func(t *testing.T) {
		// 後続の空白がないので一致扱いにはならないのだ
		if _, _, ok := trie.FindPrefix("red"); ok {
			t.Error("カラー単独で一致しました")
		}
	})

	t.Run("複数語カラーは最長一致になること", func(t *testing.T) {
		canonical, consumed, ok := trie.FindPrefix("navy blue skirt")
		if !ok || canonical != "navy blue" {
			t.Fatalf("一致結果が不正です: '%s', ok=%v", canonical, ok)
		}
		if consumed != len("navy blue ") {
			t.Errorf("消費バイト数の期待値 %d, 実際の値 %d", len("navy blue "), consumed)
		}
	})

	t.Run("ローカライズ表記は正規トークンへ戻ること", func(t *testing.T) {
		canonical, _, ok := trie.FindPrefix("红色 连衣裙")
		if !ok || canonical != "red" {
			t.Errorf("期待値 'red', 実際の値 '%s', ok=%v", canonical, ok)
		}
	})

	t.Run("大文字でも一致すること", func(t *testing.T) {
		if canonical, _, ok := trie.FindPrefix("RED dress"); !ok || canonical != "red" {
			t.Errorf("大文字の一致に失敗しました: '%s', ok=%v", canonical, ok)
		}
	})
}
