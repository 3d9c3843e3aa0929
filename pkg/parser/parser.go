package parser

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
)

// skipTokens は照合前に捨てる主題系トークンの集合なのだ。
// これらは一致数にも未一致数にも数えないのだよ。
var skipTokens = map[string]bool{
	"1girl": true,
	"1boy":  true,
	"girl":  true,
	"boy":   true,
	"solo":  true,
}

// Token はトークナイズ後の1トークン（ウェイト構文を剥がした状態）です。
type Token struct {
	Text   string
	Weight float64
}

// SlotMatch は1スロット分の復元結果です。
type SlotMatch struct {
	ValueID    string  `json:"value_id"`
	Color      string  `json:"color,omitempty"`
	Weight     float64 `json:"weight"`
	Enabled    bool    `json:"enabled"`
	Confidence float64 `json:"confidence"`
}

// Result はプロンプト1本分の復元結果まとめです。
// どんな入力でもエラーにはならず、最悪はすべてが Unmatched に落ちます。
type Result struct {
	Slots        map[string]SlotMatch `json:"slots"`
	Unmatched    []string             `json:"unmatched"`
	MatchedCount int                  `json:"matched_count"`
	TotalTokens  int                  `json:"total_tokens"`
	Confidence   float64              `json:"confidence"`
}

// Parser は組み立て済みプロンプト文字列をスロット設定へ逆変換する実体です。
// 照合索引への読み取り以外の状態を持たない純粋関数なので、
// 同じ入力に対して常にバイト単位で同一の結果を返すのだ。
type Parser struct {
	index *MatchIndex
}

// NewParser は共有の照合索引を参照するパーサを生成します。
// 索引は構築済みの読み取り専用オブジェクトを渡すこと（パーサは変更しません）。
func NewParser(index *MatchIndex) *Parser {
	return &Parser{index: index}
}

// Parse はプロンプト文字列を解析し、スロット設定の部分復元を返すのだ。
// useFuzzy が false のときはファジー照合の最終段を飛ばすのだよ。
func (p *Parser) Parse(prompt string, useFuzzy bool) *Result {
	result := &Result{
		Slots:     make(map[string]SlotMatch),
		Unmatched: make([]string, 0),
	}

	strategies := p.index.strategies()

	for _, token := range Tokenize(prompt) {
		if skipTokens[strings.ToLower(token.Text)] {
			continue
		}

		// カラー前方一致を剥がしてから本体を照合するのだ
		lower := strings.ToLower(token.Text)
		color, itemText := p.extractColor(lower)

		var (
			matches    []Candidate
			confidence float64
		)
		for _, s := range strategies {
			if s.fuzzy && (!useFuzzy || utf8.RuneCountInString(itemText) <= fuzzyMinLength) {
				continue
			}
			if cands, conf := s.match(itemText); len(cands) > 0 {
				matches = cands
				confidence = conf
				break
			}
		}

		if !p.assign(result, matches, color, token.Weight, confidence) {
			result.Unmatched = append(result.Unmatched, token.Text)
		}
	}

	total := result.MatchedCount + len(result.Unmatched)
	result.TotalTokens = total
	if total > 0 {
		result.Confidence = round3(float64(result.MatchedCount) / float64(total))
	}
	return result
}

// assign は勝者戦略の候補のうち、まだ埋まっていない最初のスロットへ結果を割り当てます。
// 候補スロットがすべて埋まっている場合は割り当てず false を返します
// （有効な一致があってもトークンは未一致として記録されるのだ）。
func (p *Parser) assign(result *Result, matches []Candidate, color string, weight, confidence float64) bool {
	for _, cand := range matches {
		if _, taken := result.Slots[cand.Slot]; taken {
			continue
		}

		// 抽出済みのカラーは色対応スロットにだけ付けるのだ。
		// 対象外スロットではカラーは破棄され、トークンへは戻らないのだよ。
		attachedColor := ""
		if def, ok := domain.FindSlotDefinition(cand.Slot); ok && def.HasColor {
			attachedColor = color
		}

		result.Slots[cand.Slot] = SlotMatch{
			ValueID:    cand.ItemID,
			Color:      attachedColor,
			Weight:     weight,
			Enabled:    true,
			Confidence: confidence,
		}
		result.MatchedCount++
		return true
	}
	return false
}

// extractColor はトークン先頭のカラー表記を検出して剥がします。
// 見つからなければ元のテキストをそのまま返すのだ。
func (p *Parser) extractColor(text string) (color, remaining string) {
	canonical, consumed, ok := p.index.colorTrie.FindPrefix(text)
	if !ok {
		return "", text
	}
	return canonical, strings.TrimSpace(text[consumed:])
}

// Tokenize はプロンプトをカンマで分割し、各トークンのウェイト構文
// "(text:weight)" を剥がして返します。ウェイトが無い・壊れている場合は 1.0 です。
// トークン内の連続する空白は1つに畳むのだ。
func Tokenize(prompt string) []Token {
	var tokens []Token

	for _, part := range strings.Split(prompt, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		weight := domain.DefaultWeight
		if strings.HasPrefix(part, "(") && strings.HasSuffix(part, ")") && strings.Contains(part, ":") {
			inner := part[1 : len(part)-1]
			// ウェイトは常に末尾にあるので最後のコロンで切るのだ
			if lastColon := strings.LastIndex(inner, ":"); lastColon > 0 {
				if w, err := strconv.ParseFloat(strings.TrimSpace(inner[lastColon+1:]), 64); err == nil {
					weight = w
					part = inner[:lastColon]
				}
			}
		}

		part = strings.Join(strings.Fields(part), " ")
		if part == "" {
			continue
		}
		tokens = append(tokens, Token{Text: part, Weight: weight})
	}

	return tokens
}

// round3 は信頼度を小数第3位へ丸めます。
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
