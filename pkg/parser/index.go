package parser

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shouni/go-chara-prompt-kit/pkg/catalog"
	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
)

// Candidate は照合候補（スロットとアイテムIDの組）です。
type Candidate struct {
	Slot   string
	ItemID string
}

// wordEntry は単語索引の1エントリです。交差後の絞り込みで元の完全名も参照できるようにします。
type wordEntry struct {
	Candidate
	fullName string
}

// normalizeRegex は空白・ハイフン・アンダースコアをまとめて除去するための正規表現なのだ。
var normalizeRegex = regexp.MustCompile(`[\s\-_]+`)

// MatchIndex はカタログストアから一度だけ構築される読み取り専用の照合索引です。
// 完全一致・正規化一致・単語別の各テーブルと、カラートライを保持します。
// 構築完了後は並行リーダーからロックなしで参照できます。
type MatchIndex struct {
	store *catalog.Store

	exact      map[string][]Candidate // 小文字化した完全名/別名 → 候補
	exactKeys  []string               // ファジー照合用にソート済みのキー一覧
	normalized map[string][]Candidate // 空白・記号を除去したキー → 候補
	word       map[string][]wordEntry // 構成単語 → 候補
	colorTrie  *ColorTrie

	slotRank map[string]int // スロット名 → スキーマ宣言順
}

// BuildMatchIndex はストアの全スロットの選択肢から照合索引を構築するのだ。
// スキーマの宣言順に走査するため、同名の候補リストも宣言順に並ぶのだよ。
func BuildMatchIndex(store *catalog.Store) *MatchIndex {
	idx := &MatchIndex{
		store:      store,
		exact:      make(map[string][]Candidate),
		normalized: make(map[string][]Candidate),
		word:       make(map[string][]wordEntry),
		colorTrie:  NewColorTrie(),
		slotRank:   make(map[string]int, len(domain.SlotDefinitions)),
	}

	for rank, def := range domain.SlotDefinitions {
		idx.slotRank[def.Name] = rank

		for _, item := range store.OptionsForSlot(def.Name) {
			if item.ID == "" {
				continue
			}
			if item.Name != "" {
				idx.indexName(item.Name, def.Name, item.ID)
			}
			for _, localized := range item.NameI18n {
				if localized != "" && localized != item.Name {
					idx.indexName(localized, def.Name, item.ID)
				}
			}
			// 別名は完全一致の検索だけに使うのだ
			for _, alias := range item.Aliases {
				if key := strings.ToLower(strings.TrimSpace(alias)); key != "" {
					idx.exact[key] = append(idx.exact[key], Candidate{Slot: def.Name, ItemID: item.ID})
				}
			}
		}
	}

	// カラー索引: 正規カラーとローカライズ表記の両方をトライへ
	for _, color := range store.IndividualColors() {
		idx.colorTrie.Insert(color, color)
	}
	for color, i18n := range store.ColorI18n() {
		for _, localized := range i18n {
			if localized != "" {
				idx.colorTrie.Insert(localized, color)
			}
		}
	}

	idx.exactKeys = make([]string, 0, len(idx.exact))
	for key := range idx.exact {
		idx.exactKeys = append(idx.exactKeys, key)
	}
	sort.Strings(idx.exactKeys)

	return idx
}

// indexName は1つの表示名を関係する全索引へ登録します。
func (idx *MatchIndex) indexName(name, slotName, itemID string) {
	nameLower := strings.ToLower(strings.TrimSpace(name))
	if nameLower == "" {
		return
	}
	cand := Candidate{Slot: slotName, ItemID: itemID}

	idx.exact[nameLower] = append(idx.exact[nameLower], cand)

	// 正規化キーは元の小文字名と異なる場合だけ登録するのだ
	if normalized := normalize(nameLower); normalized != nameLower {
		idx.normalized[normalized] = append(idx.normalized[normalized], cand)
	}

	// 単語索引は複数語の名前だけが対象で、2文字以下の語は飛ばすのだ
	words := strings.Fields(nameLower)
	if len(words) > 1 {
		for _, word := range words {
			if utf8.RuneCountInString(word) > 2 {
				idx.word[word] = append(idx.word[word], wordEntry{Candidate: cand, fullName: nameLower})
			}
		}
	}
}

// normalize は空白・ハイフン・アンダースコアを除去した照合キーを返します。
func normalize(text string) string {
	return normalizeRegex.ReplaceAllString(strings.ToLower(text), "")
}

// sortByslotRank は候補をスキーマ宣言順（同順位はアイテムID順）に並べ替えます。
// 集合交差の結果を決定的な割り当て順にするために使うのだ。
func (idx *MatchIndex) sortBySlotRank(cands []Candidate) {
	sort.Slice(cands, func(i, j int) bool {
		if idx.slotRank[cands[i].Slot] != idx.slotRank[cands[j].Slot] {
			return idx.slotRank[cands[i].Slot] < idx.slotRank[cands[j].Slot]
		}
		return cands[i].ItemID < cands[j].ItemID
	})
}
