package orderform

import (
	"errors"

	"go.uber.org/zap"
)

// Observer is called after every update that changed the state.
type Observer func(prev, next State)

type subscription struct {
	id int
	fn Observer
}

// Controller owns the live form state. It is driven from a single UI event
// loop and is not safe for concurrent use.
type Controller struct {
	state  State
	log    *zap.Logger
	subs   []subscription
	nextID int
}

// New returns a controller holding a fresh form. A nil logger disables logging.
func New(log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{state: NewState(), log: log.Named("orderform")}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Subscribe registers fn and returns a func that removes it.
func (c *Controller) Subscribe(fn Observer) func() {
	if fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// UpdateField replaces one top-level field.
func (c *Controller) UpdateField(name Field, v Value) error {
	next, err := c.state.WithField(name, v)
	if err != nil {
		c.log.Warn("update field rejected", zap.String("field", string(name)), zap.Error(err))
		return err
	}
	c.commit(next, zap.String("op", "update_field"), zap.String("field", string(name)), zap.Stringer("value", v))
	return nil
}

// AddFabricEntry appends an empty fabric entry.
func (c *Controller) AddFabricEntry() {
	next := c.state.WithFabricAdded()
	c.commit(next, zap.String("op", "add_fabric"), zap.Int("fabrics", len(next.Form.Fabrics)))
}

// RemoveFabricEntry removes the entry at index. Out-of-range indexes are ignored.
func (c *Controller) RemoveFabricEntry(index int) {
	next := c.state.WithFabricRemoved(index)
	c.commit(next, zap.String("op", "remove_fabric"), zap.Int("index", index))
}

// UpdateFabricField replaces one field of the entry at index.
func (c *Controller) UpdateFabricField(index int, field FabricField, v Value) error {
	next, err := c.state.WithFabricField(index, field, v)
	if err != nil {
		c.log.Warn("update fabric field rejected",
			zap.Int("index", index), zap.String("field", string(field)), zap.Error(err))
		return err
	}
	c.commit(next, zap.String("op", "update_fabric_field"),
		zap.Int("index", index), zap.String("field", string(field)), zap.Stringer("value", v))
	return nil
}

// SetChinaFabricPresence records the Yes/No answer; "No" clears the selection.
func (c *Controller) SetChinaFabricPresence(value string) error {
	next, err := c.state.WithChinaFabricPresence(value)
	if err != nil {
		c.log.Warn("china fabric presence rejected", zap.String("value", value), zap.Error(err))
		return err
	}
	c.commit(next, zap.String("op", "set_china_fabric_presence"), zap.String("value", value))
	return nil
}

// SelectChinaFabrics replaces the China fabric selection while presence is "Yes".
func (c *Controller) SelectChinaFabrics(values ...string) {
	next := c.state.WithChinaFabrics(values)
	c.commit(next, zap.String("op", "select_china_fabrics"), zap.Strings("values", next.ChinaFabrics))
}

// Validate checks the current form without storing the result.
func (c *Controller) Validate() ValidationErrors {
	return Validate(c.state.Form)
}

// Submit validates and, when valid, captures and resets the form. A rejected
// submit returns ValidationErrors and leaves the form untouched.
func (c *Controller) Submit() (*Snapshot, error) {
	next, err := c.state.Submit()
	c.commit(next, zap.String("op", "submit"), zap.Int("errors", len(next.Errors)))
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		c.log.Info("submit rejected", zap.Any("errors", map[string]string(verrs)))
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	c.log.Info("order submitted",
		zap.String("start", next.Last.data.StartDate),
		zap.String("end", next.Last.data.EndDate),
		zap.Int("fabrics", len(next.Last.data.Fabrics)))
	return next.Last, nil
}

func (c *Controller) commit(next State, fields ...zap.Field) {
	prev := c.state
	if next.rev == prev.rev {
		c.log.Debug("no-op", fields...)
		return
	}
	c.state = next
	c.log.Debug("state updated", append(fields, zap.Uint64("rev", next.rev))...)
	for _, s := range append([]subscription(nil), c.subs...) {
		s.fn(prev, next)
	}
}
