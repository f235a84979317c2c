package store

import (
	"github.com/thenoetrevino/tasklist/internal/database"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// pending holds deferred mutations not yet committed.
// A record appears in at most one of inserts, updates or deletes.
type pending struct {
	inserts     []*models.Task
	updates     map[string]*models.Task
	updateOrder []string
	deletes     []string
	deleted     map[string]struct{}
}

func newPending() *pending {
	return &pending{
		updates: make(map[string]*models.Task),
		deleted: make(map[string]struct{}),
	}
}

func (p *pending) empty() bool {
	return len(p.inserts) == 0 && len(p.updates) == 0 && len(p.deletes) == 0
}

func (p *pending) insertIndex(id string) int {
	for i, t := range p.inserts {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (p *pending) addInsert(t *models.Task) {
	p.inserts = append(p.inserts, t)
}

// addUpdate records a rename; renaming a pending insert rewrites the insert instead
func (p *pending) addUpdate(t *models.Task) {
	if i := p.insertIndex(t.ID); i >= 0 {
		p.inserts[i] = t
		return
	}
	if _, ok := p.updates[t.ID]; !ok {
		p.updateOrder = append(p.updateOrder, t.ID)
	}
	p.updates[t.ID] = t
}

// addDelete records a removal; deleting a pending insert cancels it outright
func (p *pending) addDelete(id string) {
	if i := p.insertIndex(id); i >= 0 {
		p.inserts = append(p.inserts[:i], p.inserts[i+1:]...)
		return
	}
	if _, ok := p.updates[id]; ok {
		delete(p.updates, id)
		for i, uid := range p.updateOrder {
			if uid == id {
				p.updateOrder = append(p.updateOrder[:i], p.updateOrder[i+1:]...)
				break
			}
		}
	}
	if _, ok := p.deleted[id]; !ok {
		p.deleted[id] = struct{}{}
		p.deletes = append(p.deletes, id)
	}
}

func (p *pending) changeSet() database.ChangeSet {
	cs := database.ChangeSet{}
	for _, t := range p.inserts {
		cs.Inserts = append(cs.Inserts, t.Clone())
	}
	for _, id := range p.updateOrder {
		cs.Updates = append(cs.Updates, p.updates[id].Clone())
	}
	cs.Deletes = append(cs.Deletes, p.deletes...)
	return cs
}

// overlay applies the buffered mutations to a freshly read enumeration
func (p *pending) overlay(persisted []*models.Task) []*models.Task {
	out := make([]*models.Task, 0, len(persisted)+len(p.inserts))
	for _, t := range persisted {
		if _, gone := p.deleted[t.ID]; gone {
			continue
		}
		if u, ok := p.updates[t.ID]; ok {
			out = append(out, u.Clone())
			continue
		}
		out = append(out, t)
	}
	for _, t := range p.inserts {
		out = append(out, t.Clone())
	}
	return out
}
