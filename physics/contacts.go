package physics

import (
	"slices"

	"github.com/automoto/summit/movement"
	"github.com/solarlune/resolv"
)

// diffContacts compares what b touches now against the previous step and
// appends a record for every contact that began or ended.
func (w *World) diffContacts(b *Body, contacts []movement.Contact) []movement.Contact {
	obj := b.Object
	now := w.query(obj.X-contactSlop, obj.Y-contactSlop, obj.W+2*contactSlop, obj.H+2*contactSlop, contactTags)
	now = slices.DeleteFunc(now, func(o *resolv.Object) bool { return o == obj })

	self := movement.Collider{Ref: b}
	for _, o := range now {
		if !slices.Contains(b.touching, o) {
			contacts = append(contacts, movement.Contact{
				A: self, B: movement.Collider{Ref: o, Kind: KindOf(o)}, Phase: movement.Started,
			})
		}
	}
	for _, o := range b.touching {
		if !slices.Contains(now, o) {
			contacts = append(contacts, movement.Contact{
				A: self, B: movement.Collider{Ref: o, Kind: KindOf(o)}, Phase: movement.Stopped,
			})
		}
	}
	b.touching = now
	return contacts
}

// query returns the tagged objects whose boxes overlap the given box.
func (w *World) query(x, y, width, height float64, objTags []string) []*resolv.Object {
	p := w.probe
	p.X, p.Y = x, y
	p.W, p.H = max(width, minProbe), max(height, minProbe)
	p.Update()

	check := p.Check(0, 0, objTags...)
	if check == nil {
		return nil
	}
	var hits []*resolv.Object
	for _, o := range check.ObjectsByTags(objTags...) {
		if overlapsX(p, o) && overlapsY(p, o) {
			hits = append(hits, o)
		}
	}
	return hits
}
