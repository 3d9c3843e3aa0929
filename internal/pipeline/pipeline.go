package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shouni/go-chara-prompt-kit/internal/builder"
	"github.com/shouni/go-chara-prompt-kit/internal/config"
	"github.com/shouni/go-chara-prompt-kit/pkg/catalog"
	"github.com/shouni/go-chara-prompt-kit/pkg/domain"

	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
// カタログの読み込みは起動時の一度きりの外部呼び出しで、失敗は即座に呼び出し元へ返すのだよ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	rioFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("GCSクライアントファクトリの生成に失敗したのだ: %w", err)
	}

	reader, err := rioFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := rioFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	store, err := catalog.Load(ctx, reader, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("カタログストアの構築に失敗したのだ: %w", err)
	}

	return builder.NewAppContext(cfg, reader, writer, store), nil
}

// loadGeneratorConfig は保存済みコンフィグの復元、または既定コンフィグの生成を行うのだ。
func loadGeneratorConfig(ctx context.Context, appCtx *builder.AppContext) (*domain.GeneratorConfig, error) {
	path := appCtx.Options.LoadConfigPath
	if path == "" {
		return domain.NewDefaultConfig(), nil
	}

	rc, err := appCtx.Reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("保存済みコンフィグのオープンに失敗しました (%s): %w", path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("保存済みコンフィグの読み込みに失敗しました (%s): %w", path, err)
	}

	genCfg, err := domain.UnmarshalConfig(data)
	if err != nil {
		return nil, err
	}

	// 保存後にスキーマへ追加されたスロットも既定状態で持たせるのだ
	for _, def := range domain.SlotDefinitions {
		if _, ok := genCfg.Slots[def.Name]; !ok {
			genCfg.Slots[def.Name] = domain.NewSlotState()
		}
	}

	slog.Info("保存済みコンフィグを復元したのだ", "path", path, "name", genCfg.Name)
	return genCfg, nil
}
