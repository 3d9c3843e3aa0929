package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/shouni/go-chara-prompt-kit/pkg/domain"
	"github.com/shouni/go-utils/urlpath"
	"golang.org/x/sync/errgroup"
)

// ErrNoCatalogs はカタログが1つも読み込めなかったときの起動時致命エラーなのだ。
var ErrNoCatalogs = errors.New("カタログが1つも読み込めませんでした")

// InputReader はカタログデータの入力元を抽象化するインターフェースです。
// remoteio.InputReader（ローカル/GCS両対応）をそのまま渡せるのだ。
type InputReader interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// CatalogFile は1カテゴリ分のカタログJSONの構造です。
type CatalogFile struct {
	Items           []domain.CatalogItem `json:"items"`
	IndexByCategory map[string][]string  `json:"index_by_category,omitempty"`
	IndexByBodyPart map[string][]string  `json:"index_by_body_part,omitempty"`
}

// ColorFile は専用カラーファイル（パレット・個別カラープール・カラー訳語表）の構造です。
type ColorFile struct {
	Palettes             []domain.Palette             `json:"palettes"`
	IndividualColors     []string                     `json:"individual_colors"`
	IndividualColorsI18n map[string]map[string]string `json:"individual_colors_i18n"`
}

// catalogPaths はカテゴリ名とデータディレクトリ内の相対パスの対応表なのだ。
var catalogPaths = map[string]string{
	"clothing":    "clothing/clothing_list.json",
	"expressions": "expressions/female_expressions.json",
	"hair":        "hair/hair_catalog.json",
	"eyes":        "eyes/eye_catalog.json",
	"body":        "body/body_features.json",
	"poses":       "poses/poses.json",
	"view_angles": "view_angles/view_angles.json",
	"backgrounds": "backgrounds/backgrounds.json",
}

const colorsPath = "colors/color_palettes.json"

// Store は全カテゴリのカタログをメモリに保持する読み取り専用ストアです。
// 構築完了後は並行リーダーからロックなしで参照できます。
type Store struct {
	catalogs map[string]*CatalogFile

	palettes     map[string]domain.Palette
	paletteOrder []string
	colors       []string
	colorI18n    map[string]map[string]string

	// 検索用マップ（カタログ → id → アイテム / カタログ → 小文字名 → id）
	itemsByID map[string]map[string]domain.CatalogItem
	idByName  map[string]map[string]string
}

// Load は指定ディレクトリから全カタログJSONを並列で読み込み、ストアを構築するのだ。
// 個別カテゴリの欠損・破損は警告して空の選択肢に退避し、
// 全カテゴリが欠けているときだけ致命エラーを返すのだよ。
func Load(ctx context.Context, reader InputReader, dataDir string) (*Store, error) {
	var (
		mu       sync.Mutex
		catalogs = make(map[string]*CatalogFile, len(catalogPaths))
		colors   *ColorFile
	)

	eg, egCtx := errgroup.WithContext(ctx)
	for name, rel := range catalogPaths {
		name, rel := name, rel // ゴルーチンのクロージャ対策なのだ
		eg.Go(func() error {
			file, err := loadCatalogFile(egCtx, reader, dataDir, rel)
			if err != nil {
				// 欠けたカテゴリは空の選択肢として退避するのだ（クエリ時には決して落ちない）
				slog.Warn("カタログの読み込みをスキップしたのだ", "catalog", name, "error", err)
				return nil
			}
			mu.Lock()
			catalogs[name] = file
			mu.Unlock()
			return nil
		})
	}
	eg.Go(func() error {
		file, err := loadColorFile(egCtx, reader, dataDir)
		if err != nil {
			slog.Warn("カラーファイルの読み込みをスキップしたのだ", "error", err)
			return nil
		}
		mu.Lock()
		colors = file
		mu.Unlock()
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("%w: dir=%s", ErrNoCatalogs, dataDir)
	}

	store := NewStore(catalogs, colors)
	slog.Info("カタログストアを構築したのだ", "catalogs", len(catalogs), "palettes", len(store.paletteOrder))
	return store, nil
}

// NewStore は解析済みのカタログ群から検索マップ込みのストアを組み立てます。
// colors は nil を許容します（カラー機能が空になるだけです）。
func NewStore(catalogs map[string]*CatalogFile, colors *ColorFile) *Store {
	store := &Store{
		catalogs:  catalogs,
		palettes:  make(map[string]domain.Palette),
		colorI18n: make(map[string]map[string]string),
		itemsByID: make(map[string]map[string]domain.CatalogItem, len(catalogs)),
		idByName:  make(map[string]map[string]string, len(catalogs)),
	}

	for name, file := range catalogs {
		byID := make(map[string]domain.CatalogItem, len(file.Items))
		byName := make(map[string]string, len(file.Items))
		for _, item := range file.Items {
			if item.ID == "" {
				continue
			}
			byID[item.ID] = item
			if label := strings.ToLower(strings.TrimSpace(item.Name)); label != "" {
				byName[label] = item.ID
			}
			for _, alias := range item.Aliases {
				if key := strings.ToLower(strings.TrimSpace(alias)); key != "" {
					byName[key] = item.ID
				}
			}
		}
		store.itemsByID[name] = byID
		store.idByName[name] = byName
	}

	if colors != nil {
		for _, p := range colors.Palettes {
			store.palettes[p.ID] = p
			store.paletteOrder = append(store.paletteOrder, p.ID)
		}
		store.colors = colors.IndividualColors
		if colors.IndividualColorsI18n != nil {
			store.colorI18n = colors.IndividualColorsI18n
		}
	}

	return store
}

func loadCatalogFile(ctx context.Context, reader InputReader, dataDir, rel string) (*CatalogFile, error) {
	fullPath, err := urlpath.ResolvePath(dataDir, rel)
	if err != nil {
		return nil, fmt.Errorf("カタログパスの解決に失敗しました (%s): %w", rel, err)
	}

	rc, err := reader.Open(ctx, fullPath)
	if err != nil {
		return nil, fmt.Errorf("カタログファイルのオープンに失敗しました (%s): %w", fullPath, err)
	}
	defer rc.Close()

	file := &CatalogFile{}
	if err := json.NewDecoder(rc).Decode(file); err != nil {
		return nil, fmt.Errorf("カタログJSONのパースに失敗しました (%s): %w", fullPath, err)
	}
	return file, nil
}

func loadColorFile(ctx context.Context, reader InputReader, dataDir string) (*ColorFile, error) {
	fullPath, err := urlpath.ResolvePath(dataDir, colorsPath)
	if err != nil {
		return nil, fmt.Errorf("カラーパスの解決に失敗しました: %w", err)
	}

	rc, err := reader.Open(ctx, fullPath)
	if err != nil {
		return nil, fmt.Errorf("カラーファイルのオープンに失敗しました (%s): %w", fullPath, err)
	}
	defer rc.Close()

	file := &ColorFile{}
	if err := json.NewDecoder(rc).Decode(file); err != nil {
		return nil, fmt.Errorf("カラーJSONのパースに失敗しました (%s): %w", fullPath, err)
	}
	return file, nil
}
