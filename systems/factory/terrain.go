package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/physics"
	"github.com/automoto/summit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type archetypeSpawner interface {
	Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry
}

func CreateTerrain(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createCollider(ecs, archetypes.Terrain, x, y, w, h, tags.ResolvSolid, true)
}

// CreatePlatform creates a one-way wooden stand.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createCollider(ecs, archetypes.Platform, x, y, w, h, tags.ResolvPlatform, true)
}

func CreateSnowPile(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createCollider(ecs, archetypes.SnowPile, x, y, w, h, tags.ResolvSnowPile, true)
}

func CreateHazard(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createCollider(ecs, archetypes.Hazard, x, y, w, h, tags.ResolvHazard, false)
}

func CreateSpring(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createCollider(ecs, archetypes.Spring, x, y, w, h, tags.ResolvSpring, false)
}

// createCollider adds a static resolv object and, for anything debris can
// rest on, a matching chipmunk box.
func createCollider(ecs *ecs.ECS, a archetypeSpawner, x, y, w, h float64, tag string, debrisSolid bool) *donburi.Entry {
	entry := a.Spawn(ecs)

	space := GetSpace(ecs)
	obj := space.World.AddStatic(x, y, w, h, tag)
	obj.Data = entry
	components.Collider.SetValue(entry, components.ColliderData{Object: obj, Kind: physics.KindOf(obj)})

	if debrisSolid {
		if field := GetDebris(ecs); field != nil {
			field.AddTerrain(obj, x, y, w, h)
		}
	}
	return entry
}

// RemoveCollider takes a static entity out of both worlds and destroys it.
func RemoveCollider(ecs *ecs.ECS, entry *donburi.Entry) {
	collider := components.Collider.Get(entry)
	if space := GetSpace(ecs); space != nil {
		space.World.RemoveObject(collider.Object)
	}
	if field := GetDebris(ecs); field != nil {
		field.RemoveTerrain(collider.Object)
	}
	entry.Remove()
}

// ColliderEntry resolves a contact partner or effect source back to the
// static entity that owns it.
func ColliderEntry(ref any) (*donburi.Entry, bool) {
	obj, ok := ref.(*resolv.Object)
	if !ok || obj == nil {
		return nil, false
	}
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return nil, false
	}
	return entry, true
}
