package cmd

import (
	"log/slog"

	"github.com/shouni/go-chara-prompt-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var opts config.GenerateOptions

// loadMergedConfig は、環境変数ベースの設定にコマンドラインフラグを上書きするのだ。
func loadMergedConfig() *config.Config {
	cfg := config.LoadConfig()
	cfg.Options = opts
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}
	if opts.Language != "" {
		cfg.Language = opts.Language
	}
	return cfg
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- データと言語 ---
	rootCmd.PersistentFlags().StringVarP(&opts.DataDir, "data-dir", "d", "", "カタログJSON一式のディレクトリ（ローカル or gs://...、既定: "+config.DefaultDataDir+"）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.Language, "language", "l", "", "出力言語（en / zh、既定: "+config.DefaultLanguage+"）なのだ。")

	// --- 生成制御 ---
	generateCmd.Flags().Int64VarP(&opts.Seed, "seed", "s", 0, "再現用のランダムシード。0 なら毎回変わるのだ。")
	generateCmd.Flags().StringSliceVar(&opts.OnlySlots, "only", nil, "指定したスロットだけを再抽選するのだ（--load-config との併用を想定、繰り返し可）。")
	generateCmd.Flags().StringVarP(&opts.PaletteID, "palette", "p", "", "服の色に使うカラーパレットIDなのだ。")
	generateCmd.Flags().StringVar(&opts.ColorMode, "color-mode", "", "カラーモード（none / palette / random）なのだ。")
	generateCmd.Flags().BoolVar(&opts.FullBodyMode, "full-body-mode", true, "full_body の服があるとき上下の個別服を省くのだ。")
	generateCmd.Flags().BoolVar(&opts.UpperBodyMode, "upper-body-mode", false, "下半身系のスロットをまとめて無効化するのだ。")
	generateCmd.Flags().StringVar(&opts.Prefix, "prefix", "", "生成プロンプトの先頭に前置する自由テキスト（品質タグなど）なのだ。")
	generateCmd.Flags().StringToStringVar(&opts.Locks, "lock", nil, "スロットの値を固定するのだ（例: --lock hair_color='pink hair'、繰り返し可）。")

	// --- コンフィグの保存と復元 ---
	generateCmd.Flags().StringVar(&opts.LoadConfigPath, "load-config", "", "保存済みコンフィグJSONを復元してから生成するのだ。")
	generateCmd.Flags().StringVar(&opts.SaveConfigPath, "save-config", "", "生成後のコンフィグをこのパスへ保存するのだ。")
	generateCmd.Flags().StringVar(&opts.ConfigName, "config-name", "", "保存レコードに付ける名前なのだ。")
	generateCmd.Flags().StringVarP(&opts.OutputFile, "output-file", "o", "", "プロンプトの保存先（ローカル or gs://...）。空なら標準出力のみなのだ。")

	// --- 解析制御 ---
	parseCmd.Flags().BoolVar(&opts.UseFuzzy, "fuzzy", true, "ファジー照合の最終段を有効にするのだ。")
}

// preRunAppE は、コマンド実行前の共通準備を行うのだ。
// .env があれば環境変数として取り込むのだよ（無くてもエラーにはしない）。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env は見つからなかったのだ。環境変数だけで続行するのだよ", "error", err)
	}
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"chara-prompt",
		addAppFlags,
		preRunAppE,
		generateCmd,
		parseCmd,
		slotsCmd,
		palettesCmd,
	)
}
