package builder

import (
	"sync"

	"github.com/shouni/go-chara-prompt-kit/internal/config"
	"github.com/shouni/go-chara-prompt-kit/pkg/catalog"
	"github.com/shouni/go-chara-prompt-kit/pkg/parser"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config  *config.Config         // Configは、環境変数から読み込まれたグローバルな設定です。
	Options config.GenerateOptions // Optionsは、コマンドラインから渡された実行時の設定です。
	Reader  remoteio.InputReader   // Readerは、カタログや保存済みコンフィグの読み込みに使用する入力元です。
	Writer  remoteio.OutputWriter  // Writerは、プロンプトやコンフィグを保存するための出力先です。
	Store   *catalog.Store         // Storeは、読み込み済みカタログの共有読み取り専用ストアです。

	ParseCache *cache.Cache // 解析結果のTTLキャッシュ（同一プロンプトの再解析を省くのだ）

	// 照合索引は重いので一度だけ構築して共有するのだ。
	// 並行呼び出しが重複構築しないように sync.Once でガードするのだよ。
	indexOnce sync.Once
	index     *parser.MatchIndex
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
	store *catalog.Store,
) *AppContext {
	return &AppContext{
		Config:     cfg,
		Options:    cfg.Options,
		Reader:     reader,
		Writer:     writer,
		Store:      store,
		ParseCache: cache.New(config.DefaultParseCacheTTL, config.DefaultCacheSweep),
	}
}

// MatchIndex は共有の照合索引を返します。初回呼び出しで一度だけ構築されます。
func (appCtx *AppContext) MatchIndex() *parser.MatchIndex {
	appCtx.indexOnce.Do(func() {
		appCtx.index = parser.BuildMatchIndex(appCtx.Store)
	})
	return appCtx.index
}
