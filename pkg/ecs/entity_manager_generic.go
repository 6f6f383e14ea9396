package ecs

import "reflect"

// 泛型组件访问 API
//
// 与反射版本共享同一份存储，区别在于调用方无需手写 reflect.TypeOf 和类型断言：
//
//	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)

// typeOf 返回类型参数 T 对应的 reflect.Type
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体添加组件（泛型版本）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[typeOf[T]()] = component
	}
}

// GetComponent 获取实体的特定类型组件（泛型版本）
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[typeOf[T]()]
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 检查实体是否拥有特定类型组件（泛型版本）
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	compMap, exists := em.components[id]
	if !exists {
		return false
	}
	_, found := compMap[typeOf[T]()]
	return found
}

// RemoveComponent 从实体移除指定类型的组件（泛型版本）
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, typeOf[T]())
	}
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有组件 T1、T2、T3 的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}
