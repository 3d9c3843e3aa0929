package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/go-chara-prompt-kit/pkg/catalog"
	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
)

// SubjectMarker はプロンプト先頭に必ず置く主題トークンなのだ。
const SubjectMarker = "1girl"

// assemblyOrder はプロンプトに並べる際の正規のスロット順です。
// カテゴリ順（外見 → 体 → 表情 → 服 → ポーズ → 背景）で、服は外側のレイヤーを
// 内側より先に出します。スキーマの宣言順とは別物なので注意なのだ。
var assemblyOrder = []string{
	"hair_color", "hair_length", "hair_style", "hair_texture",
	"eye_color", "eye_expression_quality", "eye_shape", "eye_pupil_state",
	"eye_state", "eye_accessories",
	"body_type", "height", "skin", "age_appearance", "special_features",
	"expression",
	"full_body", "head", "neck", "upper_body", "waist", "lower_body",
	"outerwear", "hands", "legs", "feet", "accessory",
	"view_angle", "pose", "gesture",
	"background",
}

// Assembler は解決済みコンフィグをローカライズ済みのプロンプト文字列へ直列化します。
type Assembler struct {
	store *catalog.Store
}

// NewAssembler は新しい Assembler を生成します。
func NewAssembler(store *catalog.Store) *Assembler {
	return &Assembler{store: store}
}

// Build はコンフィグからプロンプト文字列を組み立てるのだ。
// prefix が空でなければ主題トークンの前に ", " 区切りで前置されるのだよ。
func (a *Assembler) Build(cfg *domain.GeneratorConfig, language, prefix string) string {
	parts := []string{SubjectMarker}

	// lower_body が脚を覆うかどうかを先に判定しておくのだ
	lowerCoversLegs := false
	if lower, ok := cfg.Slots["lower_body"]; ok && lower.Enabled && lower.HasValue() {
		lowerCoversLegs = a.store.LowerBodyCoversLegs(lower.ValueID)
	}

	for _, slotName := range assemblyOrder {
		slot, ok := cfg.Slots[slotName]
		if !ok || !slot.Enabled || !slot.HasValue() {
			continue
		}

		// フルボディ優先: full_body が有効な値を持つ間は upper/lower を出さない
		if cfg.FullBodyMode && (slotName == "upper_body" || slotName == "lower_body") {
			if fullBody, ok := cfg.Slots["full_body"]; ok && fullBody.Enabled && fullBody.HasValue() {
				continue
			}
		}

		// 脚カバー: lower_body が脚を覆うなら legs は出さない
		if slotName == "legs" && lowerCoversLegs {
			continue
		}

		parts = append(parts, a.buildSegment(slotName, slot, language))
	}

	text := strings.Join(parts, ", ")
	if trimmed := strings.TrimSpace(prefix); trimmed != "" {
		text = trimmed + ", " + text
	}
	return text
}

// buildSegment は1スロット分のテキスト片を組み立てます。
// 表示名のフォールバック順序: 要求言語 → en → 生の表示値 → 生のID。
func (a *Assembler) buildSegment(slotName string, slot *domain.SlotState, language string) string {
	segment := ""
	if item, ok := a.store.ResolveSlotItem(slotName, slot.ValueID, slot.Value); ok {
		segment = item.LocalizedName(language)
	}
	if segment == "" {
		segment = slot.Value
	}
	if segment == "" {
		segment = slot.ValueID
	}

	if slot.ColorEnabled && slot.Color != "" {
		colorText := a.store.LocalizeColorToken(slot.Color, language)
		segment = colorText + " " + segment
	}

	if slot.Weight != domain.DefaultWeight {
		segment = fmt.Sprintf("(%s:%.1f)", segment, slot.Weight)
	}
	return segment
}
