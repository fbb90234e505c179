package models

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Part kind tags used in the serialized envelope.
const (
	PartKindGeneric = "generic"
	PartKindEngine  = "engine"
	PartKindBody    = "body"
)

// Part is a priced spare part. Each kind contributes its own flat labor cost
// to the bill. Parts are immutable after construction.
type Part interface {
	Name() string
	Price() float64
	LaborCost() float64
}

// GenericPart is a part with no kind-specific attributes.
type GenericPart struct {
	name  string
	price float64
}

// NewGenericPart constructs a GenericPart.
func NewGenericPart(name string, price float64) GenericPart {
	return GenericPart{name: name, price: price}
}

func (p GenericPart) Name() string       { return p.name }
func (p GenericPart) Price() float64     { return p.price }
func (p GenericPart) LaborCost() float64 { return 500 }

// EnginePart is a performance part fitted by the engine bay.
type EnginePart struct {
	name               string
	price              float64
	horsepowerIncrease int
}

// NewEnginePart constructs an EnginePart.
func NewEnginePart(name string, price float64, horsepowerIncrease int) EnginePart {
	return EnginePart{name: name, price: price, horsepowerIncrease: horsepowerIncrease}
}

func (p EnginePart) Name() string            { return p.name }
func (p EnginePart) Price() float64          { return p.price }
func (p EnginePart) LaborCost() float64      { return 1000 }
func (p EnginePart) HorsepowerIncrease() int { return p.horsepowerIncrease }

// BodyPart is an exterior panel or trim part.
type BodyPart struct {
	name  string
	price float64
	color string
}

// NewBodyPart constructs a BodyPart.
func NewBodyPart(name string, price float64, color string) BodyPart {
	return BodyPart{name: name, price: price, color: color}
}

func (p BodyPart) Name() string       { return p.name }
func (p BodyPart) Price() float64     { return p.price }
func (p BodyPart) LaborCost() float64 { return 700 }
func (p BodyPart) Color() string      { return p.color }

// partEnvelope is the serialized form of a Part. The kind tag must survive
// every round trip so the labor cost dispatches to the right variant after a
// reload.
type partEnvelope struct {
	Kind               string  `json:"kind"`
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	HorsepowerIncrease int     `json:"horsepower_increase,omitempty"`
	Color              string  `json:"color,omitempty"`
}

func envelopeFor(p Part) (partEnvelope, error) {
	switch v := p.(type) {
	case EnginePart:
		return partEnvelope{
			Kind:               PartKindEngine,
			Name:               v.Name(),
			Price:              v.Price(),
			HorsepowerIncrease: v.HorsepowerIncrease(),
		}, nil
	case BodyPart:
		return partEnvelope{Kind: PartKindBody, Name: v.Name(), Price: v.Price(), Color: v.Color()}, nil
	case GenericPart:
		return partEnvelope{Kind: PartKindGeneric, Name: v.Name(), Price: v.Price()}, nil
	default:
		return partEnvelope{}, fmt.Errorf("unknown part type %T", p)
	}
}

func (e partEnvelope) part() (Part, error) {
	switch e.Kind {
	case PartKindEngine:
		return NewEnginePart(e.Name, e.Price, e.HorsepowerIncrease), nil
	case PartKindBody:
		return NewBodyPart(e.Name, e.Price, e.Color), nil
	case PartKindGeneric:
		return NewGenericPart(e.Name, e.Price), nil
	default:
		return nil, fmt.Errorf("unknown part kind %q", e.Kind)
	}
}
