package parser

import (
	"strings"
	"unicode/utf8"
)

// trieNode はカラートライの1ノードです。文字をキーにした子テーブルと、
// 単語終端の場合の正規トークンを持ちます。循環参照は存在しません。
type trieNode struct {
	children  map[rune]*trieNode
	canonical string
	terminal  bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// ColorTrie はカラー表記の最長前方一致を O(一致長) で検出するトライなのだ。
// 正規カラーとローカライズ表記の両方を挿入し、終端に正規トークンを記録するのだよ。
type ColorTrie struct {
	root *trieNode
}

// NewColorTrie は空のトライを生成します。
func NewColorTrie() *ColorTrie {
	return &ColorTrie{root: newTrieNode()}
}

// Insert はカラー表記をトライに追加します。canonical が空なら表記自身を正規形とします。
func (t *ColorTrie) Insert(word, canonical string) {
	if canonical == "" {
		canonical = word
	}
	node := t.root
	for _, r := range strings.ToLower(word) {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
		}
		node = child
	}
	node.terminal = true
	node.canonical = canonical
}

// FindPrefix はテキスト先頭からの最長カラー前方一致を探します。
// 一致は直後が空白（語境界）の場合だけ採用し、その空白まで含めた
// 消費バイト数を返すのだ。見つからなければ ok=false を返すのだよ。
func (t *ColorTrie) FindPrefix(text string) (canonical string, consumed int, ok bool) {
	node := t.root
	lower := strings.ToLower(text)

	for i, r := range lower {
		child, found := node.children[r]
		if !found {
			break
		}
		node = child
		if node.terminal {
			end := i + utf8.RuneLen(r)
			if end < len(lower) && lower[end] == ' ' {
				canonical = node.canonical
				consumed = end + 1 // 語境界の空白も読み飛ばすのだ
				ok = true
			}
		}
	}
	return canonical, consumed, ok
}
