package domain

// SlotDefinition は1つのスロットとカタログの対応を表す静的な記述子です。
// 実行時に変更されることはありません。
type SlotDefinition struct {
	Name     string // スロット名（例: "hair_color"）
	Category string // セクション分類（appearance / body / expression / clothing / pose / background）
	Catalog  string // 参照するカタログ名
	IndexKey string // カタログ内インデックスのサブキー。空文字は items 全体を使う
	HasColor bool   // 色修飾子を付けられるスロットかどうか
}

// SlotDefinitions は全スロットを宣言順で保持するテーブルなのだ。
// この順序はランダム化の走査順およびパーサの割り当て順のタイブレークに使われるため、
// 並び替えてはいけないのだよ。
var SlotDefinitions = []SlotDefinition{
	// Appearance
	{Name: "hair_style", Category: "appearance", Catalog: "hair", IndexKey: "style"},
	{Name: "hair_length", Category: "appearance", Catalog: "hair", IndexKey: "length"},
	{Name: "hair_color", Category: "appearance", Catalog: "hair", IndexKey: "color"},
	{Name: "hair_texture", Category: "appearance", Catalog: "hair", IndexKey: "texture"},
	{Name: "eye_color", Category: "appearance", Catalog: "eyes", IndexKey: "color"},
	{Name: "eye_expression_quality", Category: "appearance", Catalog: "eyes", IndexKey: "expression_quality"},
	{Name: "eye_shape", Category: "appearance", Catalog: "eyes", IndexKey: "eye_shape"},
	{Name: "eye_pupil_state", Category: "appearance", Catalog: "eyes", IndexKey: "pupil_state"},
	{Name: "eye_state", Category: "appearance", Catalog: "eyes", IndexKey: "eye_state"},
	{Name: "eye_accessories", Category: "appearance", Catalog: "eyes", IndexKey: "eye_accessories"},

	// Body
	{Name: "body_type", Category: "body", Catalog: "body", IndexKey: "body_type"},
	{Name: "height", Category: "body", Catalog: "body", IndexKey: "height"},
	{Name: "skin", Category: "body", Catalog: "body", IndexKey: "skin"},
	{Name: "age_appearance", Category: "body", Catalog: "body", IndexKey: "age_appearance"},
	{Name: "special_features", Category: "body", Catalog: "body", IndexKey: "special_features"},

	// Expression
	{Name: "expression", Category: "expression", Catalog: "expressions"},

	// Clothing
	{Name: "head", Category: "clothing", Catalog: "clothing", IndexKey: "head", HasColor: true},
	{Name: "neck", Category: "clothing", Catalog: "clothing", IndexKey: "neck", HasColor: true},
	{Name: "upper_body", Category: "clothing", Catalog: "clothing", IndexKey: "upper_body", HasColor: true},
	{Name: "waist", Category: "clothing", Catalog: "clothing", IndexKey: "waist", HasColor: true},
	{Name: "lower_body", Category: "clothing", Catalog: "clothing", IndexKey: "lower_body", HasColor: true},
	{Name: "full_body", Category: "clothing", Catalog: "clothing", IndexKey: "full_body", HasColor: true},
	{Name: "outerwear", Category: "clothing", Catalog: "clothing", IndexKey: "outerwear", HasColor: true},
	{Name: "hands", Category: "clothing", Catalog: "clothing", IndexKey: "hands", HasColor: true},
	{Name: "legs", Category: "clothing", Catalog: "clothing", IndexKey: "legs", HasColor: true},
	{Name: "feet", Category: "clothing", Catalog: "clothing", IndexKey: "feet", HasColor: true},
	{Name: "accessory", Category: "clothing", Catalog: "clothing", IndexKey: "accessory", HasColor: true},

	// Pose
	{Name: "pose", Category: "pose", Catalog: "poses"},
	{Name: "gesture", Category: "pose", Catalog: "poses", IndexKey: "gesture"},
	{Name: "view_angle", Category: "pose", Catalog: "view_angles"},

	// Background
	{Name: "background", Category: "background", Catalog: "backgrounds"},
}

// Categories はセクション単位のランダム化で使うカテゴリ一覧です。
var Categories = []string{"appearance", "body", "expression", "clothing", "pose", "background"}

// slotDefByName は名前引きの検索用マップなのだ。SlotDefinitions から一度だけ構築するのだよ。
var slotDefByName = func() map[string]SlotDefinition {
	m := make(map[string]SlotDefinition, len(SlotDefinitions))
	for _, def := range SlotDefinitions {
		m[def.Name] = def
	}
	return m
}()

// FindSlotDefinition はスロット名から定義を検索します。
func FindSlotDefinition(name string) (SlotDefinition, bool) {
	def, ok := slotDefByName[name]
	return def, ok
}

// SlotNames は全スロット名を宣言順で返します。
func SlotNames() []string {
	names := make([]string, len(SlotDefinitions))
	for i, def := range SlotDefinitions {
		names[i] = def.Name
	}
	return names
}

// SlotNamesByCategory は指定カテゴリに属するスロット名を宣言順で返します。
func SlotNamesByCategory(category string) []string {
	var names []string
	for _, def := range SlotDefinitions {
		if def.Category == category {
			names = append(names, def.Name)
		}
	}
	return names
}
