package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shouni/go-chara-prompt-kit/internal/config"
	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
)

// slotListing は slots コマンドが出力する1スロット分の情報です。
type slotListing struct {
	Category string   `json:"category"`
	HasColor bool     `json:"has_color"`
	Options  []option `json:"options"`
}

type option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// slotsReport は slots コマンドの出力全体です。
type slotsReport struct {
	Slots                map[string]slotListing `json:"slots"`
	LowerBodyCoversLegs  map[string]bool        `json:"lower_body_covers_legs_by_id"`
	PoseUsesHandsByID    map[string]bool        `json:"pose_uses_hands_by_id"`
	CategorySlotOrdering map[string][]string    `json:"slots_by_category"`
}

// ExecuteSlots は全スロットの定義と選択肢の一覧をJSONで標準出力へ書き出すのだ。
func ExecuteSlots(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	report := slotsReport{
		Slots:                make(map[string]slotListing, len(domain.SlotDefinitions)),
		LowerBodyCoversLegs:  appCtx.Store.CoversLegsByID(),
		PoseUsesHandsByID:    appCtx.Store.PoseUsesHandsByID(),
		CategorySlotOrdering: make(map[string][]string, len(domain.Categories)),
	}

	for _, category := range domain.Categories {
		report.CategorySlotOrdering[category] = domain.SlotNamesByCategory(category)
	}

	for _, def := range domain.SlotDefinitions {
		listing := slotListing{Category: def.Category, HasColor: def.HasColor}
		for _, item := range appCtx.Store.OptionsForSlot(def.Name) {
			listing.Options = append(listing.Options, option{
				ID:   item.ID,
				Name: item.LocalizedName(cfg.Language),
			})
		}
		report.Slots[def.Name] = listing
	}

	return printJSON(report)
}

// paletteListing は palettes コマンドが出力する1パレット分の情報です。
type paletteListing struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// ExecutePalettes は利用可能なカラーパレットの一覧をJSONで標準出力へ書き出すのだ。
func ExecutePalettes(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	listings := make([]paletteListing, 0)
	for _, p := range appCtx.Store.Palettes() {
		listings = append(listings, paletteListing{
			ID:     p.ID,
			Name:   p.LocalizedName(cfg.Language),
			Colors: p.Colors,
		})
	}

	return printJSON(listings)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("一覧のJSON変換に失敗しました: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
