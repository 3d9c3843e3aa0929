package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-chara-prompt-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、カタログからキャラクタープロンプトをランダム生成するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "キャラクタープロンプトをランダム生成しますなのだ。",
	Long: `スロットスキーマに沿ってカタログからアイテムを抽選し、
画像生成AI向けのカンマ区切りプロンプトを組み立てるのだ。
--seed を固定すれば同じ結果が再現できるのだよ。`,
	RunE: generateCommand,
}

func init() {
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 環境変数等から基本設定をロードして、フラグで上書きするのだ
	cfg := loadMergedConfig()

	slog.Info("プロンプト生成パイプラインを起動するのだ！",
		"data_dir", cfg.DataDir,
		"language", cfg.Language,
		"seed", opts.Seed,
		"palette", opts.PaletteID)

	if err := pipeline.ExecuteGenerate(ctx, cfg); err != nil {
		return fmt.Errorf("生成パイプラインの実行中にエラーが発生したのだ: %w", err)
	}

	return nil
}
