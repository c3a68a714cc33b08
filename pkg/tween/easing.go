// Package tween 提供补间调度器与缓动函数
//
// 所有动画（相机过渡、桥段位移、角色团聚）都注册为补间，
// 由场景每帧以固定步长推进，便于测试时注入合成时间。
package tween

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInOutSine 正弦缓入缓出
// 特点：起止平滑、对称（相机过渡与桥段位移使用）
// 公式：f(t) = 0.5 - 0.5·cos(π·t)
func EaseInOutSine(t float64) float64 {
	return 0.5 - 0.5*math.Cos(math.Pi*t)
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（推荐用于"飞向目标"动画）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（比 Cubic 更柔和）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
