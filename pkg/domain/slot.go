package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// カラーモードの取りうる値なのだ。
const (
	ColorModeNone    = "none"
	ColorModePalette = "palette"
	ColorModeRandom  = "random"
)

// ウェイトの定義域なのだ。範囲外の値は ClampWeight で丸めるのだよ。
const (
	MinWeight     = 0.1
	MaxWeight     = 2.0
	DefaultWeight = 1.0
)

// SlotState は1つのスロットの現在の解決済み状態を保持します。
// ValueID が空文字のときは「値なし」を意味します。
type SlotState struct {
	Enabled      bool    `json:"enabled"`
	Locked       bool    `json:"locked"` // ロック中はランダム化の対象外になる
	Value        string  `json:"value,omitempty"`
	ValueID      string  `json:"value_id,omitempty"`
	Color        string  `json:"color,omitempty"` // 正規カラートークン
	ColorEnabled bool    `json:"color_enabled"`
	Weight       float64 `json:"weight"`
}

// NewSlotState は既定値（有効・値なし・ウェイト1.0）のスロット状態を返します。
func NewSlotState() *SlotState {
	return &SlotState{Enabled: true, Weight: DefaultWeight}
}

// HasValue は値が選択されているかどうかを返します。
func (s *SlotState) HasValue() bool {
	return s != nil && s.ValueID != ""
}

// ClearValue は選択中の値を取り消します。色やウェイトは維持するのだ。
func (s *SlotState) ClearValue() {
	s.Value = ""
	s.ValueID = ""
}

// ClampWeight はウェイトを定義域 [0.1, 2.0] に丸めます。
// ゼロ値（未設定）はデフォルトの 1.0 として扱うのだ。
func ClampWeight(w float64) float64 {
	if w == 0 {
		return DefaultWeight
	}
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}

// GeneratorConfig は生成リクエスト1回分の全スロット状態と全体設定を保持します。
// ランダム化とロック適用の間は同一インスタンスが書き換えられ、
// プロンプト生成後は呼び出し元が明示的に保存しない限り破棄されます。
type GeneratorConfig struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`

	ColorMode       string `json:"color_mode"`
	ActivePaletteID string `json:"active_palette_id,omitempty"`
	FullBodyMode    bool   `json:"full_body_mode"`

	Slots map[string]*SlotState `json:"slots"`
}

// NewDefaultConfig は全スロットを既定状態で持つコンフィグを生成するのだ。
func NewDefaultConfig() *GeneratorConfig {
	cfg := &GeneratorConfig{
		Name:         "Untitled",
		ColorMode:    ColorModeNone,
		FullBodyMode: true,
		Slots:        make(map[string]*SlotState, len(SlotDefinitions)),
	}
	for _, def := range SlotDefinitions {
		cfg.Slots[def.Name] = NewSlotState()
	}
	return cfg
}

// Slot は指定名のスロット状態を返します。未登録なら既定状態を追加して返すのだ。
func (c *GeneratorConfig) Slot(name string) *SlotState {
	if slot, ok := c.Slots[name]; ok {
		return slot
	}
	slot := NewSlotState()
	c.Slots[name] = slot
	return slot
}

// MarshalConfig はコンフィグを保存用のJSONバイト列に変換します。
// CreatedAt が未設定なら現在時刻を補うのだ。
func MarshalConfig(cfg *GeneratorConfig) ([]byte, error) {
	if cfg.CreatedAt == "" {
		cfg.CreatedAt = time.Now().Format(time.RFC3339)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("コンフィグのJSON変換に失敗しました: %w", err)
	}
	return data, nil
}

// UnmarshalConfig は保存されたJSONバイト列からコンフィグを復元します。
// ウェイトは定義域へ丸め、欠けているフィールドは既定値のままにするのだ。
func UnmarshalConfig(data []byte) (*GeneratorConfig, error) {
	cfg := &GeneratorConfig{
		ColorMode:    ColorModeNone,
		FullBodyMode: true,
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("コンフィグのJSONパースに失敗しました: %w", err)
	}
	if cfg.Slots == nil {
		cfg.Slots = make(map[string]*SlotState)
	}
	for _, slot := range cfg.Slots {
		slot.Weight = ClampWeight(slot.Weight)
	}
	return cfg, nil
}
