package generator

import "github.com/shouni/go-chara-prompt-kit/pkg/domain"

// applyFullBodyOverride はフルボディ優先の制約を適用します。
// full_body に値が入っている場合、個別ロックされていない upper_body / lower_body の
// 値を取り消すのだ。
func applyFullBodyOverride(cfg *domain.GeneratorConfig) {
	fullBody, ok := cfg.Slots["full_body"]
	if !ok || !fullBody.Enabled || !fullBody.HasValue() {
		return
	}
	for _, name := range []string{"upper_body", "lower_body"} {
		if slot, ok := cfg.Slots[name]; ok && !slot.Locked {
			slot.ClearValue()
		}
	}
}

// applyLegCoverage は脚カバーの制約を適用します。
// lower_body のアイテムが脚を覆う場合、legs スロットの値を取り消すのだ。
func (e *Engine) applyLegCoverage(cfg *domain.GeneratorConfig) {
	lower, ok := cfg.Slots["lower_body"]
	if !ok || !lower.Enabled || !lower.HasValue() {
		return
	}
	legs, ok := cfg.Slots["legs"]
	if !ok {
		return
	}
	if e.store.LowerBodyCoversLegs(lower.ValueID) {
		legs.ClearValue()
	}
}

// upperBodyModeSlots は上半身モードで無効化するスロット群なのだ。
var upperBodyModeSlots = []string{"waist", "lower_body", "full_body", "legs", "feet"}

// ApplyUpperBodyMode は上半身モードを適用し、下半身系のスロットを無効化します。
func ApplyUpperBodyMode(cfg *domain.GeneratorConfig) {
	for _, name := range upperBodyModeSlots {
		if slot, ok := cfg.Slots[name]; ok {
			slot.Enabled = false
		}
	}
}
