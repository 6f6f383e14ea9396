package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestClearKeepsIDCounter(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.CreateEntity()

	em.Clear()
	if em.EntityCount() != 0 {
		t.Fatalf("Expected 0 entities after Clear, got %d", em.EntityCount())
	}

	// 清空后 ID 继续递增，旧 ID 不会被复用
	id := em.CreateEntity()
	if id != 3 {
		t.Errorf("Expected ID 3 after Clear, got %d", id)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	// 反射版本获取
	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}

	// 泛型版本获取同一个组件
	generic, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Generic GetComponent should find the component")
	}
	if generic != pos {
		t.Error("Generic GetComponent should return the same pointer")
	}
}

func TestGenericAddComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testVelocityComponent{VX: 3, VY: 4})

	if !HasComponent[*testVelocityComponent](em, id) {
		t.Fatal("Should have component after generic add")
	}
	if !em.HasComponent(id, reflect.TypeOf(&testVelocityComponent{})) {
		t.Error("Reflection API should see component added by generic API")
	}

	RemoveComponent[*testVelocityComponent](em, id)
	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("Component should be gone after RemoveComponent")
	}
}

func TestGetComponentMissingEntity(t *testing.T) {
	em := NewEntityManager()

	if _, ok := GetComponent[*testPositionComponent](em, EntityID(42)); ok {
		t.Error("GetComponent on missing entity should return false")
	}
	if em.Exists(InvalidEntity) {
		t.Error("InvalidEntity should never exist")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	// 查询拥有 Position+Velocity 的实体
	entities := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("Expected only id1, got %v", entities)
	}

	// 查询只拥有 Position 的实体
	posEntities := GetEntitiesWith1[*testPositionComponent](em)
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
}

func TestGetEntitiesWithSorted(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
	}

	ids := GetEntitiesWith1[*testPositionComponent](em)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("Query result not sorted at %d: %v", i, ids)
		}
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	// 创建多个实体
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id3, &testPositionComponent{})

	// 标记两个实体删除
	em.DestroyEntity(id1)
	em.DestroyEntity(id3)

	// 清理
	em.RemoveMarkedEntities()

	// 验证只有id2存在
	if em.Exists(id1) {
		t.Error("id1 should be removed")
	}
	if !em.Exists(id2) {
		t.Error("id2 should still exist")
	}
	if em.Exists(id3) {
		t.Error("id3 should be removed")
	}
}

// BenchmarkGetEntitiesWith2 测量每帧查询目标实体的开销
func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 64; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			em.AddComponent(id, &testVelocityComponent{VX: 1})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	}
}
