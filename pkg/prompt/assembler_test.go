package prompt

import (
	"strings"
	"testing"

	"github.com/shouni/go-chara-prompt-kit/pkg/catalog"
	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
)

func newTestStore() *catalog.Store {
	return catalog.NewStore(map[string]*catalog.CatalogFile{
		"hair": {
			Items: []domain.CatalogItem{
				{ID: "hair_pink", Name: "pink hair", NameI18n: map[string]string{"en": "pink hair", "zh": "粉色头发"}},
			},
			IndexByCategory: map[string][]string{"color": {"hair_pink"}},
		},
		"clothing": {
			Items: []domain.CatalogItem{
				{ID: "upper_blouse", Name: "blouse"},
				{ID: "lower_jeans", Name: "jeans", CoversLegs: true},
				{ID: "lower_shorts", Name: "shorts"},
				{ID: "dress_casual", Name: "dress", NameI18n: map[string]string{"en": "dress", "zh": "连衣裙"}},
				{ID: "legs_thighhighs", Name: "thighhighs"},
			},
			IndexByBodyPart: map[string][]string{
				"upper_body": {"upper_blouse"},
				"lower_body": {"lower_jeans", "lower_shorts"},
				"full_body":  {"dress_casual"},
				"legs":       {"legs_thighhighs"},
			},
		},
		"backgrounds": {
			Items: []domain.CatalogItem{
				{ID: "bg_beach", Name: "beach"},
			},
		},
	}, &catalog.ColorFile{
		IndividualColors:     []string{"red", "navy blue"},
		IndividualColorsI18n: map[string]map[string]string{"red": {"zh": "红色"}},
	})
}

func TestBuild(t *testing.T) {
	assembler := NewAssembler(newTestStore())

	t.Run("主題トークンが必ず先頭に来ること", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		got := assembler.Build(cfg, "en", "")
		if got != SubjectMarker {
			t.Errorf("空コンフィグの期待値 '%s', 実際の値 '%s'", SubjectMarker, got)
		}
	})

	t.Run("prefixは主題トークンの前に置かれること", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		got := assembler.Build(cfg, "en", "masterpiece, best quality")
		if got != "masterpiece, best quality, 1girl" {
			t.Errorf("prefix付き出力が不正です: '%s'", got)
		}
	})

	t.Run("無効・空値のスロットは出力されないこと", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		slot := cfg.Slot("background")
		slot.ValueID = "bg_beach"
		slot.Enabled = false

		got := assembler.Build(cfg, "en", "")
		if strings.Contains(got, "beach") {
			t.Errorf("無効スロットが出力に含まれています: '%s'", got)
		}
	})

	t.Run("ウェイト1.0は裸で、それ以外は括弧構文になること", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.Slot("hair_color").ValueID = "hair_pink"
		cfg.Slot("background").ValueID = "bg_beach"
		cfg.Slot("background").Weight = 1.3

		got := assembler.Build(cfg, "en", "")
		if got != "1girl, pink hair, (beach:1.3)" {
			t.Errorf("ウェイト出力が不正です: '%s'", got)
		}
	})

	t.Run("カラーが表示名の前置になること", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		slot := cfg.Slot("lower_body")
		slot.ValueID = "lower_shorts"
		slot.Color = "red"
		slot.ColorEnabled = true

		got := assembler.Build(cfg, "en", "")
		if !strings.Contains(got, "red shorts") {
			t.Errorf("カラー前置が不正です: '%s'", got)
		}
	})

	t.Run("zh指定で表示名とカラーがローカライズされること", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.Slot("hair_color").ValueID = "hair_pink"
		slot := cfg.Slot("full_body")
		slot.ValueID = "dress_casual"
		slot.Color = "red"
		slot.ColorEnabled = true

		got := assembler.Build(cfg, "zh-CN", "")
		if !strings.Contains(got, "粉色头发") || !strings.Contains(got, "红色 连衣裙") {
			t.Errorf("zhローカライズが不正です: '%s'", got)
		}
	})

	t.Run("カタログに無い値は表示値そのままで出力されること", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		slot := cfg.Slot("hair_color")
		slot.Value = "galaxy hair"
		slot.ValueID = "galaxy hair"

		got := assembler.Build(cfg, "en", "")
		if !strings.Contains(got, "galaxy hair") {
			t.Errorf("リテラル値が出力されていません: '%s'", got)
		}
	})
}

func TestBuildSuppression(t *testing.T) {
	assembler := NewAssembler(newTestStore())

	t.Run("full_bodyがあるとき上下の個別服が出ないこと", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.Slot("full_body").ValueID = "dress_casual"
		cfg.Slot("upper_body").ValueID = "upper_blouse"
		cfg.Slot("lower_body").ValueID = "lower_shorts"

		got := assembler.Build(cfg, "en", "")
		if strings.Contains(got, "blouse") || strings.Contains(got, "shorts") {
			t.Errorf("フルボディ優先の抑制が効いていません: '%s'", got)
		}
	})

	t.Run("FullBodyModeを切ると個別服も出ること", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.FullBodyMode = false
		cfg.Slot("full_body").ValueID = "dress_casual"
		cfg.Slot("upper_body").ValueID = "upper_blouse"

		got := assembler.Build(cfg, "en", "")
		if !strings.Contains(got, "blouse") {
			t.Errorf("個別服が出力されていません: '%s'", got)
		}
	})

	t.Run("脚を覆う下半身のときlegsが出ないこと", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.FullBodyMode = false
		cfg.Slot("lower_body").ValueID = "lower_jeans"
		cfg.Slot("legs").ValueID = "legs_thighhighs"

		got := assembler.Build(cfg, "en", "")
		if strings.Contains(got, "thighhighs") {
			t.Errorf("脚カバーの抑制が効いていません: '%s'", got)
		}
	})

	t.Run("組み立て順が正規順であること", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.Slot("background").ValueID = "bg_beach"
		cfg.Slot("hair_color").ValueID = "hair_pink"

		got := assembler.Build(cfg, "en", "")
		if got != "1girl, pink hair, beach" {
			t.Errorf("組み立て順が不正です: '%s'", got)
		}
	})
}
