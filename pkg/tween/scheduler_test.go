package tween

import (
	"math"
	"testing"
)

// TestSchedulerFinalSampleIsExact 最后一帧必须收到精确的 1.0
// 这样补间目标才能严格落在终点值上
func TestSchedulerFinalSampleIsExact(t *testing.T) {
	s := NewScheduler()

	var last float64
	var doneCalled bool
	s.Start(&Tween{
		Duration: 1.0,
		Ease:     EaseInOutSine,
		OnUpdate: func(eased float64) { last = eased },
		OnDone:   func() { doneCalled = true },
	})

	// 以不能整除时长的步长推进，最后一步会越过终点
	for i := 0; i < 10; i++ {
		s.Update(0.13)
	}

	if last != 1.0 {
		t.Errorf("最后采样值 = %v, 期望精确的 1.0", last)
	}
	if !doneCalled {
		t.Error("完成回调未被调用")
	}
	if s.ActiveCount() != 0 {
		t.Errorf("完成后仍有 %d 个活动补间", s.ActiveCount())
	}
}

// TestSchedulerDeterministicProgress 合成步长下的进度可预测
func TestSchedulerDeterministicProgress(t *testing.T) {
	s := NewScheduler()

	var samples []float64
	s.Start(&Tween{
		Duration: 2.0,
		Ease:     EaseLinear,
		OnUpdate: func(eased float64) { samples = append(samples, eased) },
	})

	for i := 0; i < 4; i++ {
		s.Update(0.5)
	}

	expected := []float64{0.25, 0.5, 0.75, 1.0}
	if len(samples) != len(expected) {
		t.Fatalf("采样次数 = %d, 期望 %d", len(samples), len(expected))
	}
	for i, want := range expected {
		if math.Abs(samples[i]-want) > 1e-9 {
			t.Errorf("第 %d 次采样 = %v, 期望 %v", i, samples[i], want)
		}
	}
}

// TestSchedulerChaining 完成回调里启动的补间从下一帧开始推进
// 机关→团聚的动画链依赖这一语义
func TestSchedulerChaining(t *testing.T) {
	s := NewScheduler()

	var secondStarted, secondDone bool
	s.Start(&Tween{
		Duration: 0.5,
		OnDone: func() {
			s.Start(&Tween{
				Duration: 0.5,
				OnUpdate: func(eased float64) { secondStarted = true },
				OnDone:   func() { secondDone = true },
			})
		},
	})

	s.Update(0.5) // 第一个补间完成，链式注册第二个
	if secondStarted {
		t.Error("链式补间不应在注册帧内被推进")
	}
	if s.ActiveCount() != 1 {
		t.Fatalf("活动补间数 = %d, 期望 1", s.ActiveCount())
	}

	s.Update(0.5)
	if !secondStarted || !secondDone {
		t.Errorf("链式补间未完成: started=%v done=%v", secondStarted, secondDone)
	}
}

// TestSchedulerZeroDuration 零时长补间立即完成
func TestSchedulerZeroDuration(t *testing.T) {
	s := NewScheduler()

	var last float64
	var done bool
	s.Start(&Tween{
		Duration: 0,
		OnUpdate: func(eased float64) { last = eased },
		OnDone:   func() { done = true },
	})

	if last != 1.0 || !done {
		t.Errorf("零时长补间应同步完成: last=%v done=%v", last, done)
	}
	if s.ActiveCount() != 0 {
		t.Errorf("零时长补间不应进入活动列表")
	}
}

// TestSchedulerParallelTweens 多个补间互不干扰地并行推进
func TestSchedulerParallelTweens(t *testing.T) {
	s := NewScheduler()

	var a, b float64
	s.Start(&Tween{Duration: 1.0, OnUpdate: func(e float64) { a = e }})
	s.Start(&Tween{Duration: 2.0, OnUpdate: func(e float64) { b = e }})

	s.Update(1.0)
	if a != 1.0 {
		t.Errorf("短补间应已完成: a=%v", a)
	}
	if math.Abs(b-0.5) > 1e-9 {
		t.Errorf("长补间进度 = %v, 期望 0.5", b)
	}
	if s.ActiveCount() != 1 {
		t.Errorf("活动补间数 = %d, 期望 1", s.ActiveCount())
	}
}
