package cmd

import (
	"fmt"

	"github.com/shouni/go-chara-prompt-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// slotsCmd は、スロットスキーマと選択肢の一覧をJSONで出力するのだ。
var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "スロット定義と選択肢の一覧を出力しますなのだ。",
	Long: `31スロットのスキーマ、カテゴリ分け、各スロットで選べるカタログアイテムを
JSONで出力するのだ。UIのフォーム構築やカタログの点検に使うのだよ。`,
	RunE: slotsCommand,
}

func init() {
}

func slotsCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := loadMergedConfig()

	if err := pipeline.ExecuteSlots(ctx, cfg); err != nil {
		return fmt.Errorf("スロット一覧の出力中にエラーが発生したのだ: %w", err)
	}

	return nil
}
