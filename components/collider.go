package components

import (
	"github.com/automoto/summit/movement"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ColliderData links a static level entity to its resolv object.
type ColliderData struct {
	*resolv.Object
	Kind movement.Kind
}

var Collider = donburi.NewComponentType[ColliderData]()
