package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/shouni/go-chara-prompt-kit/internal/builder"
	"github.com/shouni/go-chara-prompt-kit/internal/config"
	"github.com/shouni/go-chara-prompt-kit/pkg/parser"

	"github.com/patrickmn/go-cache"
)

// ExecuteParse はプロンプト文字列の逆解析フローを実行し、結果をJSONで標準出力へ書き出すのだ。
// 同じプロンプトの再解析はTTLキャッシュから即答するのだよ。
func ExecuteParse(ctx context.Context, cfg *config.Config, promptText string) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	result := parsePrompt(appCtx, promptText, cfg.Options.UseFuzzy)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("解析結果のJSON変換に失敗しました: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))

	slog.Info("解析が完了したのだ",
		"matched", result.MatchedCount,
		"total", result.TotalTokens,
		"confidence", result.Confidence)
	return nil
}

// parsePrompt はキャッシュ越しに逆解析を呼び出します。
// キーはファジー設定とプロンプト本文の組なのだ。
func parsePrompt(appCtx *builder.AppContext, promptText string, useFuzzy bool) *parser.Result {
	key := strconv.FormatBool(useFuzzy) + "|" + promptText
	if cached, ok := appCtx.ParseCache.Get(key); ok {
		if result, ok := cached.(*parser.Result); ok {
			slog.Debug("解析キャッシュにヒットしたのだ", "prompt", promptText)
			return result
		}
	}

	result := builder.BuildParser(appCtx).Parse(promptText, useFuzzy)
	appCtx.ParseCache.Set(key, result, cache.DefaultExpiration)
	return result
}
