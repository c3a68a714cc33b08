package game

import "testing"

// TestDeriveNarrativeState 叙事状态推导的优先级表
func TestDeriveNarrativeState(t *testing.T) {
	tests := []struct {
		name      string
		distance  float32
		triggered bool
		aligned   bool
		expected  NarrativeState
	}{
		{"初始状态是寻觅", 20, false, false, StateSearching},
		{"对齐后是折影", 20, false, true, StateAligning},
		{"机关触发是相连", 20, true, false, StateConnected},
		{"距离小于阈值是团聚", 3, false, false, StateReunited},
		{"距离规则优先于对齐标志", 3, false, true, StateReunited},
		{"距离规则优先于触发标志", 3, true, true, StateReunited},
		{"恰好等于阈值不算团聚", 5, false, true, StateAligning},
		{"触发优先于对齐", 20, true, true, StateConnected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveNarrativeState(tt.distance, 5.0, tt.triggered, tt.aligned)
			if got != tt.expected {
				t.Errorf("DeriveNarrativeState = %v, 期望 %v", got, tt.expected)
			}
		})
	}
}

// TestNarrativeText 每个状态都有固定文案
func TestNarrativeText(t *testing.T) {
	states := []NarrativeState{StateSearching, StateAligning, StateConnected, StateReunited}
	for _, s := range states {
		title, hint := NarrativeText(s)
		if title == "" || hint == "" {
			t.Errorf("状态 %v 缺少文案: title=%q hint=%q", s, title, hint)
		}
	}

	// 未知状态返回空文案而不是崩溃
	if title, _ := NarrativeText(NarrativeState(99)); title != "" {
		t.Errorf("未知状态文案 = %q, 期望空", title)
	}
}

// TestNarrativeStateString 日志标识
func TestNarrativeStateString(t *testing.T) {
	tests := []struct {
		state    NarrativeState
		expected string
	}{
		{StateSearching, "searching"},
		{StateAligning, "aligning"},
		{StateConnected, "connected"},
		{StateReunited, "reunited"},
		{NarrativeState(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("String() = %q, 期望 %q", got, tt.expected)
		}
	}
}
