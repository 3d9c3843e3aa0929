package parser

import (
	"reflect"
	"testing"

	"github.com/shouni/go-chara-prompt-kit/pkg/catalog"
	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
	"github.com/shouni/go-chara-prompt-kit/pkg/prompt"
)

func newTestStore() *catalog.Store {
	return catalog.NewStore(map[string]*catalog.CatalogFile{
		"hair": {
			Items: []domain.CatalogItem{
				{ID: "hair_pink", Name: "pink hair"},
				{ID: "hair_twintails", Name: "twintails"},
			},
			IndexByCategory: map[string][]string{
				"style": {"hair_twintails"},
				"color": {"hair_pink"},
			},
		},
		"eyes": {
			Items: []domain.CatalogItem{
				{ID: "eyes_blue", Name: "blue eyes"},
			},
			IndexByCategory: map[string][]string{"color": {"eyes_blue"}},
		},
		"clothing": {
			Items: []domain.CatalogItem{
				{ID: "dress_casual", Name: "dress", Aliases: []string{"casual dress"}},
				{ID: "lower_pleated_skirt", Name: "pleated skirt"},
				{ID: "legs_thighhighs", Name: "thighhighs"},
			},
			IndexByBodyPart: map[string][]string{
				"full_body":  {"dress_casual"},
				"lower_body": {"lower_pleated_skirt"},
				"legs":       {"legs_thighhighs"},
			},
		},
		"backgrounds": {
			Items: []domain.CatalogItem{
				{ID: "bg_cherry_blossoms", Name: "cherry blossoms", Aliases: []string{"sakura"}},
			},
		},
	}, &catalog.ColorFile{
		IndividualColors: []string{"red", "navy blue"},
	})
}

func newTestParser() *Parser {
	return NewParser(BuildMatchIndex(newTestStore()))
}

func TestTokenize(t *testing.T) {
	t.Run("カンマ分割とウェイト構文の剥がし", func(t *testing.T) {
		got := Tokenize("1girl, (pink hair:1.3), blue eyes")
		want := []Token{
			{Text: "1girl", Weight: 1.0},
			{Text: "pink hair", Weight: 1.3},
			{Text: "blue eyes", Weight: 1.0},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("期待値 %+v, 実際の値 %+v", want, got)
		}
	})

	t.Run("壊れたウェイトは元のテキストのまま残ること", func(t *testing.T) {
		got := Tokenize("(broken:abc)")
		if len(got) != 1 || got[0].Text != "(broken:abc)" || got[0].Weight != 1.0 {
			t.Errorf("壊れたウェイトの扱いが不正です: %+v", got)
		}
	})

	t.Run("連続空白は1つに畳まれ、空トークンは捨てられること", func(t *testing.T) {
		got := Tokenize("pink   hair, , ,  ")
		if len(got) != 1 || got[0].Text != "pink hair" {
			t.Errorf("空白処理が不正です: %+v", got)
		}
	})
}

func TestParse(t *testing.T) {
	p := newTestParser()

	t.Run("カラー付き完全一致が復元されること", func(t *testing.T) {
		result := p.Parse("1girl, red dress, blue eyes", false)

		fullBody, ok := result.Slots["full_body"]
		if !ok || fullBody.ValueID != "dress_casual" || fullBody.Color != "red" {
			t.Errorf("full_body の復元が不正です: %+v", fullBody)
		}
		eyeColor, ok := result.Slots["eye_color"]
		if !ok || eyeColor.ValueID != "eyes_blue" || eyeColor.Color != "" {
			t.Errorf("eye_color の復元が不正です: %+v", eyeColor)
		}
		if result.MatchedCount != 2 || len(result.Unmatched) != 0 || result.Confidence != 1.0 {
			t.Errorf("集計が不正です: %+v", result)
		}
	})

	t.Run("主題トークンは数えられないこと", func(t *testing.T) {
		result := p.Parse("1girl, solo", false)
		if result.TotalTokens != 0 || result.Confidence != 0 {
			t.Errorf("主題トークンが集計に混ざっています: %+v", result)
		}
	})

	t.Run("色非対応スロットでは抽出済みカラーが破棄されること", func(t *testing.T) {
		// "red pink hair" は red が剥がれて pink hair に一致するが、
		// hair_color はカラー非対応なので色は捨てられるのだ
		result := p.Parse("red pink hair", false)
		match, ok := result.Slots["hair_color"]
		if !ok || match.ValueID != "hair_pink" || match.Color != "" {
			t.Errorf("カラー破棄の挙動が不正です: %+v", match)
		}
	})

	t.Run("正規化一致は信頼度0.95になること", func(t *testing.T) {
		result := p.Parse("blue_eyes", false)
		match, ok := result.Slots["eye_color"]
		if !ok || match.Confidence != 0.95 {
			t.Errorf("正規化一致の復元が不正です: %+v", match)
		}
	})

	t.Run("単語交差一致は信頼度0.85になること", func(t *testing.T) {
		result := p.Parse("cherry petals blossoms", false)
		match, ok := result.Slots["background"]
		if ok {
			t.Fatalf("全単語が索引に無いのに一致しました: %+v", match)
		}

		result = p.Parse("blossoms cherry", false)
		match, ok = result.Slots["background"]
		if !ok || match.ValueID != "bg_cherry_blossoms" || match.Confidence != 0.85 {
			t.Errorf("単語交差一致の復元が不正です: %+v", match)
		}
	})

	t.Run("エイリアスでも一致すること", func(t *testing.T) {
		result := p.Parse("sakura", false)
		if match, ok := result.Slots["background"]; !ok || match.ValueID != "bg_cherry_blossoms" {
			t.Errorf("エイリアス一致に失敗しました: %+v", result)
		}
	})

	t.Run("未知トークンは元の表記のままUnmatchedに入ること", func(t *testing.T) {
		result := p.Parse("1girl, Xyzzy_Unknown_Tag, blue eyes", true)
		if len(result.Unmatched) != 1 || result.Unmatched[0] != "Xyzzy_Unknown_Tag" {
			t.Errorf("未知トークンの扱いが不正です: %+v", result.Unmatched)
		}
		if result.Confidence >= 1.0 {
			t.Errorf("未知トークンがあるのに信頼度が %v です", result.Confidence)
		}
	})

	t.Run("ウェイト構文が復元されること", func(t *testing.T) {
		result := p.Parse("(pleated skirt:1.3)", false)
		match, ok := result.Slots["lower_body"]
		if !ok || match.Weight != 1.3 {
			t.Errorf("ウェイト復元が不正です: %+v", match)
		}
	})

	t.Run("同名トークンの2つ目は未一致になること", func(t *testing.T) {
		result := p.Parse("twintails, twintails", false)
		if result.MatchedCount != 1 || len(result.Unmatched) != 1 {
			t.Errorf("重複トークンの扱いが不正です: %+v", result)
		}
	})
}

func TestParseFuzzy(t *testing.T) {
	p := newTestParser()

	t.Run("打ち間違いがファジーで救われること", func(t *testing.T) {
		result := p.Parse("twintailz", true)
		match, ok := result.Slots["hair_style"]
		if !ok || match.ValueID != "hair_twintails" {
			t.Fatalf("ファジー一致に失敗しました: %+v", result)
		}
		if match.Confidence < fuzzyThreshold || match.Confidence >= 1.0 {
			t.Errorf("ファジー信頼度が不正です: %v", match.Confidence)
		}
	})

	t.Run("無効化するとファジーは行われないこと", func(t *testing.T) {
		result := p.Parse("twintailz", false)
		if len(result.Slots) != 0 || len(result.Unmatched) != 1 {
			t.Errorf("ファジー無効時の挙動が不正です: %+v", result)
		}
	})

	t.Run("短いテキストはファジー対象外であること", func(t *testing.T) {
		result := p.Parse("drs", true)
		if len(result.Slots) != 0 {
			t.Errorf("3文字以下でファジーが動いています: %+v", result)
		}
	})

	t.Run("類似度が閾値未満なら一致しないこと", func(t *testing.T) {
		result := p.Parse("completely different", true)
		if _, ok := result.Slots["hair_style"]; ok {
			t.Error("かけ離れたテキストがファジー一致しました")
		}
	})
}

func TestAssembleParseRoundTrip(t *testing.T) {
	store := newTestStore()
	p := NewParser(BuildMatchIndex(store))
	assembler := prompt.NewAssembler(store)

	cfg := domain.NewDefaultConfig()
	cfg.Slot("hair_style").ValueID = "hair_twintails"
	cfg.Slot("eye_color").ValueID = "eyes_blue"
	fullBody := cfg.Slot("full_body")
	fullBody.ValueID = "dress_casual"
	fullBody.Color = "red"
	fullBody.ColorEnabled = true
	background := cfg.Slot("background")
	background.ValueID = "bg_cherry_blossoms"
	background.Weight = 1.3

	promptText := assembler.Build(cfg, "en", "")
	result := p.Parse(promptText, false)

	want := map[string]SlotMatch{
		"hair_style": {ValueID: "hair_twintails", Weight: 1.0, Enabled: true, Confidence: 1.0},
		"eye_color":  {ValueID: "eyes_blue", Weight: 1.0, Enabled: true, Confidence: 1.0},
		"full_body":  {ValueID: "dress_casual", Color: "red", Weight: 1.0, Enabled: true, Confidence: 1.0},
		"background": {ValueID: "bg_cherry_blossoms", Weight: 1.3, Enabled: true, Confidence: 1.0},
	}
	if !reflect.DeepEqual(result.Slots, want) {
		t.Errorf("往復でスロットが一致しません:\nprompt %q\n期待値 %+v\n実際の値 %+v", promptText, want, result.Slots)
	}
	if len(result.Unmatched) != 0 || result.Confidence != 1.0 {
		t.Errorf("往復で未一致が発生しました: %+v", result)
	}
}

func TestParseIdempotence(t *testing.T) {
	p := newTestParser()
	prompt := "1girl, red dress, blue eyes, (pleated skirt:1.3), mystery_token"

	first := p.Parse(prompt, true)
	second := p.Parse(prompt, true)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("同一入力で結果が揺れています:\n1回目 %+v\n2回目 %+v", first, second)
	}
}
