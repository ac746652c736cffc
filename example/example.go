// Package example is a small Moo ← Bar ← Foo object graph wired through
// the container, plus the HTTP routes that expose it.
package example

import (
	"github.com/google/uuid"

	"github.com/km-arc/go-injector/framework/container"
)

// Keys of the example bindings.
var (
	MooKey = container.TypeKey((*Moo)(nil))
	BarKey = container.TypeKey((*Bar)(nil))
	FooKey = container.TypeKey((*Foo)(nil))
)

// Identified is implemented by instances that carry a per-instance id. The
// id shows whether two resolutions returned the same instance.
type Identified interface {
	InstanceID() uuid.UUID
}

// Moo makes a sound.
type Moo struct {
	ID    uuid.UUID
	Sound string
}

func NewMoo(sound string) *Moo {
	return &Moo{ID: uuid.New(), Sound: sound}
}

func (m *Moo) Blah() string           { return m.Sound }
func (m *Moo) InstanceID() uuid.UUID { return m.ID }

// Bar forwards to its Moo.
type Bar struct {
	ID  uuid.UUID
	Moo *Moo
}

func NewBar(moo *Moo) *Bar {
	return &Bar{ID: uuid.New(), Moo: moo}
}

func (b *Bar) Blah() string           { return b.Moo.Blah() }
func (b *Bar) InstanceID() uuid.UUID { return b.ID }

// Foo forwards to its Bar.
type Foo struct {
	ID  uuid.UUID
	Bar *Bar
}

func NewFoo(bar *Bar) *Foo {
	return &Foo{ID: uuid.New(), Bar: bar}
}

func (f *Foo) Lala() string           { return f.Bar.Blah() }
func (f *Foo) InstanceID() uuid.UUID { return f.ID }
