package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// 各戦略の固定信頼度なのだ。ファジーだけは算出した類似度をそのまま使うのだよ。
const (
	confidenceExact      = 1.0
	confidenceNormalized = 0.95
	confidenceWords      = 0.85

	// fuzzyThreshold を下回る類似度のファジー一致は採用しない
	fuzzyThreshold = 0.85
	// fuzzyMinLength 以下の短いテキストはファジー照合の対象外
	fuzzyMinLength = 3
)

// matchStrategy は照合パイプラインの1段です。
// 候補が空でない最初の戦略が勝者となり、その信頼度が採用されます。
type matchStrategy struct {
	name  string
	fuzzy bool
	match func(text string) ([]Candidate, float64)
}

// strategies は照合カスケードを高速な順に並べたリストを返すのだ。
// ネストした条件分岐ではなく、先頭から順に評価して早期脱出する構えなのだよ。
func (idx *MatchIndex) strategies() []matchStrategy {
	return []matchStrategy{
		{name: "exact", match: idx.matchExact},
		{name: "normalized", match: idx.matchNormalized},
		{name: "words", match: idx.matchWords},
		{name: "fuzzy", fuzzy: true, match: idx.matchFuzzy},
	}
}

// matchExact は完全一致を試みます。O(1)。
func (idx *MatchIndex) matchExact(text string) ([]Candidate, float64) {
	return idx.exact[strings.ToLower(text)], confidenceExact
}

// matchNormalized は記号・空白を無視した正規化一致を試みます。O(1)。
func (idx *MatchIndex) matchNormalized(text string) ([]Candidate, float64) {
	return idx.normalized[normalize(text)], confidenceNormalized
}

// matchWords は単語索引の集合交差による部分一致を試みます。O(語数)。
// 3文字以上の全単語が索引に存在し、候補集合の交差が空でないことが条件です。
func (idx *MatchIndex) matchWords(text string) ([]Candidate, float64) {
	var candidates map[Candidate]bool

	for _, word := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		entries := idx.word[word]
		wordSet := make(map[Candidate]bool, len(entries))
		for _, entry := range entries {
			wordSet[entry.Candidate] = true
		}

		if candidates == nil {
			candidates = wordSet
			continue
		}
		for cand := range candidates {
			if !wordSet[cand] {
				delete(candidates, cand)
			}
		}
	}

	if len(candidates) == 0 {
		return nil, confidenceWords
	}

	result := make([]Candidate, 0, len(candidates))
	for cand := range candidates {
		result = append(result, cand)
	}
	// 集合由来の順序ブレを抑えるため、スキーマ宣言順に整えるのだ
	idx.sortBySlotRank(result)
	return result, confidenceWords
}

// matchFuzzy は編集距離を正規化した類似度による最終手段の照合です。
// 完全一致索引の全キーを走査する最も高コストな戦略なので、
// 前段がすべて失敗したときにだけ呼ばれるのだ。
// 信頼度は算出した類似度そのものになるのだよ。
func (idx *MatchIndex) matchFuzzy(text string) ([]Candidate, float64) {
	textLower := strings.ToLower(text)
	textLen := utf8.RuneCountInString(textLower)

	var best []Candidate
	bestScore := 0.0

	// exactKeys はソート済みなので、同点のときも常に同じキーが勝つのだ
	for _, name := range idx.exactKeys {
		score := similarity(textLower, name, textLen)
		if score > bestScore && score >= fuzzyThreshold {
			bestScore = score
			best = idx.exact[name]
		}
	}

	return best, bestScore
}

// similarity は編集距離を最長文字数で正規化した類似度 [0,1] を返します。
func similarity(a, b string, aLen int) float64 {
	bLen := utf8.RuneCountInString(b)
	maxLen := aLen
	if bLen > maxLen {
		maxLen = bLen
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
