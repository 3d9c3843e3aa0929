package cmd

import (
	"fmt"

	"github.com/shouni/go-chara-prompt-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// palettesCmd は、カラーパレットと個別色の一覧をJSONで出力するのだ。
var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "カラーパレットと個別色の一覧を出力しますなのだ。",
	RunE:  palettesCommand,
}

func init() {
}

func palettesCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := loadMergedConfig()

	if err := pipeline.ExecutePalettes(ctx, cfg); err != nil {
		return fmt.Errorf("パレット一覧の出力中にエラーが発生したのだ: %w", err)
	}

	return nil
}
