package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shouni/go-chara-prompt-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// parseCmd は、既存プロンプトを解析してスロット状態へ逆変換するのだ。
var parseCmd = &cobra.Command{
	Use:   "parse [prompt]",
	Short: "プロンプト文字列をスロット状態へ逆解析しますなのだ。",
	Long: `カンマ区切りのプロンプトをトークン分割し、カタログ照合の多段カスケードで
各スロットへ割り当てるのだ。結果は信頼度つきのJSONで出力するのだよ。
引数を省略した場合は標準入力からプロンプトを読むのだ。`,
	RunE: parseCommand,
}

func init() {
}

func parseCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	promptText := strings.TrimSpace(strings.Join(args, " "))
	if promptText == "" && isStdin() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("標準入力の読み込みに失敗したのだ: %w", err)
		}
		promptText = strings.TrimSpace(string(data))
	}
	if promptText == "" {
		return fmt.Errorf("解析対象のプロンプトを引数か標準入力で渡してほしいのだ")
	}

	cfg := loadMergedConfig()

	if err := pipeline.ExecuteParse(ctx, cfg, promptText); err != nil {
		return fmt.Errorf("解析パイプラインの実行中にエラーが発生したのだ: %w", err)
	}

	return nil
}

func isStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
