package builder

import (
	"log/slog"
	"time"

	"github.com/shouni/go-chara-prompt-kit/pkg/generator"
	"github.com/shouni/go-chara-prompt-kit/pkg/parser"
	"github.com/shouni/go-chara-prompt-kit/pkg/prompt"
)

// BuildEngine は1回の生成リクエスト用のランダム化エンジンを構築します。
// シードが 0 のときは時刻からシードを起こし、再現したい場合に備えてログへ残すのだ。
func BuildEngine(appCtx *AppContext, seed int64) *generator.Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
		slog.Info("シード未指定のため自動生成したのだ", "seed", seed)
	}
	return generator.New(appCtx.Store, seed)
}

// BuildAssembler はプロンプト組み立て器を構築します。
func BuildAssembler(appCtx *AppContext) *prompt.Assembler {
	return prompt.NewAssembler(appCtx.Store)
}

// BuildParser は共有索引を参照する逆解析パーサを構築します。
func BuildParser(appCtx *AppContext) *parser.Parser {
	return parser.NewParser(appCtx.MatchIndex())
}
