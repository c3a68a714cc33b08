package tween

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// Tween 单个补间：固定时长的缓动插值
//
// OnUpdate 每帧收到缓动后的进度值；最后一帧保证收到精确的 1.0，
// 使目标属性严格落在终点值上。补间一旦启动就运行到结束，不支持取消；
// 对同一目标重复启动补间不做保护，同帧内后写入者生效。
type Tween struct {
	Duration float64                 // 总时长（秒），必须 > 0
	Ease     EasingFunc              // 缓动函数，nil 按线性处理
	OnUpdate func(eased float64)     // 每帧回调，参数为缓动后进度
	OnDone   func()                  // 完成回调，可为 nil（用于动画链）

	elapsed float64
	done    bool
}

// advance 推进补间，返回是否已完成
func (t *Tween) advance(dt float64) bool {
	if t.done {
		return true
	}
	t.elapsed += dt

	progress := t.elapsed / t.Duration
	if progress >= 1 {
		progress = 1
	}

	eased := progress
	if t.Ease != nil {
		eased = t.Ease(progress)
	}
	if t.OnUpdate != nil {
		t.OnUpdate(eased)
	}

	if progress >= 1 {
		t.done = true
		if t.OnDone != nil {
			t.OnDone()
		}
	}
	return t.done
}

// Scheduler 补间调度器
//
// 持有活动补间列表，由驱动循环每帧调用 Update 统一推进。
// 多个补间可以同时在场（相机、桥段、角色互不共享状态），无需加锁：
// 整个调度在单线程协作式帧循环中运行。
type Scheduler struct {
	active []*Tween
}

// NewScheduler 创建空调度器
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start 注册补间并立即采样一次 t=0 之后的首帧（下一次 Update 生效）
// Duration <= 0 的补间视为立即完成：同步回调 OnUpdate(1) 与 OnDone
func (s *Scheduler) Start(t *Tween) {
	if t == nil {
		return
	}
	if t.Duration <= 0 {
		if t.OnUpdate != nil {
			t.OnUpdate(1)
		}
		t.done = true
		if t.OnDone != nil {
			t.OnDone()
		}
		return
	}
	s.active = append(s.active, t)
}

// Update 以步长 dt（秒）推进所有活动补间，移除已完成者
//
// 完成回调里新注册的补间（动画链）从下一帧开始推进。
func (s *Scheduler) Update(dt float64) {
	// 快照当前列表：OnDone 可能向调度器追加新补间，
	// 不能与快照共享底层数组
	batch := s.active
	s.active = nil

	for _, t := range batch {
		if !t.advance(dt) {
			s.active = append(s.active, t)
		}
	}
}

// ActiveCount 返回当前活动补间数量（测试与调试用）
func (s *Scheduler) ActiveCount() int {
	return len(s.active)
}
