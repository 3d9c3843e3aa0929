package generator

import (
	"math/rand"

	"github.com/shouni/go-chara-prompt-kit/pkg/catalog"
	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
)

// Engine はカタログストアを基にスロットへランダムな値を割り当てる実体です。
// 乱数源はリクエストごとに1つだけ持ち、同じシードと入力なら常に同じ結果を
// 再現します（共有の乱数状態は持たないのだ）。
type Engine struct {
	store *catalog.Store
	rng   *rand.Rand
}

// New は指定シードで初期化したエンジンを生成するのだ。
// シード再現性のため、1回の生成リクエストにつき1つのエンジンを作るのだよ。
func New(store *catalog.Store, seed int64) *Engine {
	return &Engine{
		store: store,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// SampleSlot はスロットの選択肢から一様ランダムに1つ選びます。
// 選択肢が空のときは nil を返します（エラーにはなりません）。
func (e *Engine) SampleSlot(slotName string) *domain.CatalogItem {
	options := e.store.OptionsForSlot(slotName)
	if len(options) == 0 {
		return nil
	}
	item := options[e.rng.Intn(len(options))]
	return &item
}

// SampleColorFromPalette はパレットのカラーリストから1色を選びます。
func (e *Engine) SampleColorFromPalette(paletteID string) string {
	palette, ok := e.store.Palette(paletteID)
	if !ok || len(palette.Colors) == 0 {
		return ""
	}
	return palette.Colors[e.rng.Intn(len(palette.Colors))]
}

// SampleRandomColor は個別カラーの全プールから1色を選びます。
// プールが空のときは基本色にフォールバックするのだ。
func (e *Engine) SampleRandomColor() string {
	colors := e.store.IndividualColors()
	if len(colors) == 0 {
		colors = []string{"white", "black", "red", "blue", "pink", "purple", "green", "yellow"}
	}
	return colors[e.rng.Intn(len(colors))]
}

// RandomizeSlot は1スロットをランダム化します。ロック中のスロットは何もしません。
// 色は、スロットが色対応かつ includeColor のときだけ付与するのだ。
// パレット指定はカラーモードによるランダム抽選より優先されるのだよ。
func (e *Engine) RandomizeSlot(cfg *domain.GeneratorConfig, slotName string, includeColor bool, paletteID string) {
	def, ok := domain.FindSlotDefinition(slotName)
	if !ok {
		return
	}

	slot := cfg.Slot(slotName)
	if slot.Locked {
		return
	}

	if item := e.SampleSlot(slotName); item != nil {
		slot.Value = item.Name
		slot.ValueID = item.ID
	} else {
		slot.ClearValue()
	}

	if includeColor && def.HasColor {
		if _, ok := e.store.Palette(paletteID); paletteID != "" && ok {
			slot.Color = e.SampleColorFromPalette(paletteID)
			slot.ColorEnabled = true
		} else if cfg.ColorMode == domain.ColorModeRandom {
			slot.Color = e.SampleRandomColor()
			slot.ColorEnabled = true
		}
	}
}

// RandomizeSlots は指定されたスロット群だけをランダム化します（セクション単位の再抽選用）。
// 走査はスキーマの宣言順に行い、名前に含まれないスロットとロック中のスロットは飛ばすのだ。
func (e *Engine) RandomizeSlots(cfg *domain.GeneratorConfig, slotNames []string, includeColor bool, paletteID string) {
	requested := make(map[string]bool, len(slotNames))
	for _, name := range slotNames {
		requested[name] = true
	}
	for _, def := range domain.SlotDefinitions {
		if requested[def.Name] {
			e.RandomizeSlot(cfg, def.Name, includeColor, paletteID)
		}
	}
}

// RandomizeAll は全スロットをスキーマの宣言順にランダム化し、最後に
// スロット間制約（フルボディ優先 → 脚カバー）をこの順で適用するのだ。
// 順序は将来の制約が前段の結果に依存できるように固定しているのだよ。
func (e *Engine) RandomizeAll(cfg *domain.GeneratorConfig, includeColor bool, paletteID string) {
	for _, def := range domain.SlotDefinitions {
		if slot, ok := cfg.Slots[def.Name]; ok && slot.Locked {
			continue
		}
		e.RandomizeSlot(cfg, def.Name, includeColor, paletteID)
	}

	if cfg.FullBodyMode {
		applyFullBodyOverride(cfg)
	}
	e.applyLegCoverage(cfg)
}
