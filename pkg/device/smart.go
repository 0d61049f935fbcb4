package device

import "fmt"

// SmartDevice is the capability set shared by every device the hub can own.
// The set of implementations is closed: only Television and Light satisfy it.
type SmartDevice interface {
	// Name returns the device's immutable name
	Name() string

	// Category returns the device's immutable category
	Category() string

	// DeviceType returns the variant label (e.g. "Smart TV")
	DeviceType() string

	// Status returns the current power status
	Status() Status

	// TurnOn powers the device up and applies variant side effects
	TurnOn()

	// TurnOff powers the device down and applies variant side effects
	TurnOff()

	// Describe returns a human-readable snapshot of name, category and type
	Describe() string

	// State returns a copy of the device's current status and tunables
	State() DeviceState

	sealed()
}

// base carries the identity and power status shared by all variants.
// status only changes through turnOn and turnOff.
type base struct {
	name     string
	category string
	status   Status
}

func newBase(name, category string) base {
	return base{name: name, category: category, status: StatusOnline}
}

func (b *base) Name() string     { return b.name }
func (b *base) Category() string { return b.category }
func (b *base) Status() Status   { return b.status }

func (b *base) turnOn()  { b.status = StatusOn }
func (b *base) turnOff() { b.status = StatusOff }

func (b *base) describe(deviceType string) string {
	return fmt.Sprintf("Device Info:\nName: %s\nCategory: %s\nDevice: %s", b.name, b.category, deviceType)
}

func (b *base) sealed() {}

var (
	_ SmartDevice = (*Television)(nil)
	_ SmartDevice = (*Light)(nil)
)
