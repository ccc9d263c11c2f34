package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 记录调用次数的测试场景
type stubScene struct {
	updates int
	saved   bool
}

func (s *stubScene) Update(deltaTime float64) { s.updates++ }
func (s *stubScene) Draw(screen *ebiten.Image) {}
func (s *stubScene) SaveOnExit() bool {
	s.saved = true
	return true
}

// TestSceneManagerSwitchTo 测试场景切换与空场景安全性
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()

	if sm.GetCurrentScene() != nil {
		t.Error("new manager should have no active scene")
	}

	// 无场景时 Update 不崩溃
	sm.Update(1.0 / 60.0)

	scene := &stubScene{}
	sm.SwitchTo(scene)
	if sm.GetCurrentScene() != Scene(scene) {
		t.Error("GetCurrentScene() should return the switched scene")
	}

	sm.Update(1.0 / 60.0)
	sm.Update(1.0 / 60.0)
	if scene.updates != 2 {
		t.Errorf("scene updates = %d, want 2", scene.updates)
	}

	// 切换后旧场景不再被更新
	second := &stubScene{}
	sm.SwitchTo(second)
	sm.Update(1.0 / 60.0)
	if scene.updates != 2 {
		t.Errorf("old scene updated after switch: %d", scene.updates)
	}
	if second.updates != 1 {
		t.Errorf("new scene updates = %d, want 1", second.updates)
	}
}

// TestSaveableInterface 测试场景通过 Saveable 接口参与退出保存
func TestSaveableInterface(t *testing.T) {
	sm := NewSceneManager()
	scene := &stubScene{}
	sm.SwitchTo(scene)

	s, ok := sm.GetCurrentScene().(Saveable)
	if !ok {
		t.Fatal("stubScene should implement Saveable")
	}
	if !s.SaveOnExit() {
		t.Error("SaveOnExit() = false, want true")
	}
	if !scene.saved {
		t.Error("SaveOnExit was not dispatched to the scene")
	}
}
