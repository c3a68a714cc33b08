package game

// NarrativeState 叙事状态
//
// 每帧由桥状态与角色距离纯函数推导，不单独作为事实来源存储，
// 只驱动界面上显示的文案。
type NarrativeState int

const (
	// StateSearching 断桥相隔，尚未找到对齐视角
	StateSearching NarrativeState = iota
	// StateAligning 视角已对齐，幻象读作相连
	StateAligning
	// StateConnected 桥体机关已触发（见 DeriveNarrativeState 注释）
	StateConnected
	// StateReunited 母子距离小于团聚阈值
	StateReunited
)

// String 返回状态的英文标识（日志用）
func (s NarrativeState) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StateAligning:
		return "aligning"
	case StateConnected:
		return "connected"
	case StateReunited:
		return "reunited"
	default:
		return "unknown"
	}
}

// DeriveNarrativeState 从当前输入纯函数推导叙事状态
//
// 优先级（高到低）：
//  1. 角色距离 < reunionDistance       → reunited（距离规则优先于一切标志）
//  2. bridgeTriggered                  → connected
//  3. isAligned                        → aligning
//  4. 其余                             → searching
//
// bridgeTriggered 目前没有任何置位路径，始终为 false；
// 保留该输入以维持状态集完整，不要假设它有进一步语义。
func DeriveNarrativeState(characterDistance, reunionDistance float32, bridgeTriggered, isAligned bool) NarrativeState {
	if characterDistance < reunionDistance {
		return StateReunited
	}
	if bridgeTriggered {
		return StateConnected
	}
	if isAligned {
		return StateAligning
	}
	return StateSearching
}

// narrativeTexts 每个状态对应的固定文案对：标题 + 提示行
var narrativeTexts = map[NarrativeState][2]string{
	StateSearching: {"寻觅", "断桥相隔，拖动视角寻找彼此"},
	StateAligning:  {"折影", "幻象成形，桥在此刻读作相连"},
	StateConnected: {"相连", "桥体已经接通"},
	StateReunited:  {"团聚", "母亲与孩子终于重逢"},
}

// NarrativeText 返回状态的显示文案（标题，提示）
func NarrativeText(s NarrativeState) (title, hint string) {
	texts, ok := narrativeTexts[s]
	if !ok {
		return "", ""
	}
	return texts[0], texts[1]
}
