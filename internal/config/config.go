package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultDataDir       = "examples/prompt_data" // カタログJSON一式のディレクトリ（ローカル or gs://...）
	DefaultLanguage      = "en"
	DefaultParseCacheTTL = 30 * time.Minute // 解析結果キャッシュの保持時間
	DefaultCacheSweep    = 1 * time.Hour    // キャッシュの掃除間隔
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	DataDir  string // カタログデータのルートディレクトリ
	Language string // 出力言語の既定値

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		DataDir:  envutil.GetEnv("CHARA_PROMPT_DATA_DIR", DefaultDataDir),
		Language: envutil.GetEnv("CHARA_PROMPT_LANGUAGE", DefaultLanguage),
	}
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// データと言語
	DataDir  string // --data-dir
	Language string // --language: en / zh

	// 生成制御
	Seed          int64             // --seed: 0 なら時刻ベースの自動シード
	OnlySlots     []string          // --only: 指定スロットだけを再抽選する
	PaletteID     string            // --palette: カラーパレットID
	ColorMode     string            // --color-mode: none / palette / random
	FullBodyMode  bool              // --full-body-mode
	UpperBodyMode bool              // --upper-body-mode: 下半身系スロットを無効化
	Prefix        string            // --prefix: プロンプト先頭に前置する自由テキスト
	Locks         map[string]string // --lock slot=value（繰り返し指定可）

	// コンフィグの保存と復元
	LoadConfigPath string // --load-config: 保存済みコンフィグJSONのパス
	SaveConfigPath string // --save-config: 生成後のコンフィグを保存するパス
	ConfigName     string // --config-name: 保存レコードの名前

	// 出力
	OutputFile string // --output-file: 空なら標準出力のみ

	// 解析（parse コマンド用）
	UseFuzzy bool // --fuzzy: ファジー照合の最終段を有効にする
}
