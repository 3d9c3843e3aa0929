package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shouni/go-chara-prompt-kit/internal/builder"
	"github.com/shouni/go-chara-prompt-kit/internal/config"
	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
	"github.com/shouni/go-chara-prompt-kit/pkg/generator"

	"github.com/google/uuid"
)

// ExecuteGenerate はランダム化からプロンプト組み立てまでの生成フローを実行するのだ。
// 出来上がったプロンプトは標準出力へ書き出し、指定があればファイルにも保存するのだよ。
func ExecuteGenerate(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}
	opts := appCtx.Options

	genCfg, err := loadGeneratorConfig(ctx, appCtx)
	if err != nil {
		return err
	}
	genCfg.FullBodyMode = opts.FullBodyMode
	if opts.ColorMode != "" {
		genCfg.ColorMode = opts.ColorMode
	}
	if opts.PaletteID != "" {
		genCfg.ColorMode = domain.ColorModePalette
		genCfg.ActivePaletteID = opts.PaletteID
	}

	// 色はパレット指定かランダムモードのときだけ出力に含めるのだ
	includeColor := opts.PaletteID != "" || genCfg.ColorMode == domain.ColorModeRandom

	engine := builder.BuildEngine(appCtx, opts.Seed)
	if len(opts.OnlySlots) > 0 {
		// 部分再抽選ではスロット間制約は適用しないのだ（残りの状態を尊重する）
		engine.RandomizeSlots(genCfg, opts.OnlySlots, includeColor, opts.PaletteID)
	} else {
		engine.RandomizeAll(genCfg, includeColor, opts.PaletteID)
	}

	if opts.UpperBodyMode {
		generator.ApplyUpperBodyMode(genCfg)
	}
	if len(opts.Locks) > 0 {
		generator.ApplyLocks(appCtx.Store, genCfg, opts.Locks)
	}

	assembler := builder.BuildAssembler(appCtx)
	promptText := assembler.Build(genCfg, appCtx.Config.Language, opts.Prefix)

	fmt.Fprintln(os.Stdout, promptText)

	if opts.OutputFile != "" {
		reader := strings.NewReader(promptText + "\n")
		if err := appCtx.Writer.Write(ctx, opts.OutputFile, reader, "text/plain"); err != nil {
			return fmt.Errorf("プロンプトの保存に失敗したのだ (%s): %w", opts.OutputFile, err)
		}
		slog.Info("プロンプトを保存したのだ", "path", opts.OutputFile)
	}

	if opts.SaveConfigPath != "" {
		if err := saveGeneratorConfig(ctx, appCtx, genCfg); err != nil {
			return err
		}
	}

	return nil
}

// saveGeneratorConfig は生成に使ったコンフィグを名前付きレコードとして保存するのだ。
func saveGeneratorConfig(ctx context.Context, appCtx *builder.AppContext, genCfg *domain.GeneratorConfig) error {
	opts := appCtx.Options

	if genCfg.ID == "" {
		genCfg.ID = uuid.NewString()
	}
	if opts.ConfigName != "" {
		genCfg.Name = opts.ConfigName
	}

	data, err := domain.MarshalConfig(genCfg)
	if err != nil {
		return err
	}

	if err := appCtx.Writer.Write(ctx, opts.SaveConfigPath, bytes.NewReader(data), "application/json"); err != nil {
		return fmt.Errorf("コンフィグの保存に失敗したのだ (%s): %w", opts.SaveConfigPath, err)
	}

	slog.Info("コンフィグを保存したのだ", "path", opts.SaveConfigPath, "id", genCfg.ID, "name", genCfg.Name)
	return nil
}
