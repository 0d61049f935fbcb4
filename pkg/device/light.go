package device

import "github.com/rs/zerolog/log"

// Light brightness range and power-cycle levels.
const (
	MinBrightness     = 2
	MaxBrightness     = 100
	DefaultBrightness = 10

	// OffBrightness is stored on power-down. It sits below MinBrightness.
	OffBrightness = 0
)

// Light is a dimmable smart light.
type Light struct {
	base
	brightnessLevel *Bounded
}

// NewLight creates a Light at default brightness.
func NewLight(name, category string) *Light {
	return &Light{
		base:            newBase(name, category),
		brightnessLevel: NewBounded(MinBrightness, MaxBrightness, DefaultBrightness),
	}
}

func (l *Light) DeviceType() string { return TypeLight }

// Brightness returns the current brightness level.
func (l *Light) Brightness() int { return l.brightnessLevel.Read() }

// TurnOn powers the light up and resets brightness to DefaultBrightness,
// whatever level was held before.
func (l *Light) TurnOn() {
	l.turnOn()
	l.brightnessLevel.Write(DefaultBrightness)
	log.Info().Str("device", l.name).Int("brightness", l.Brightness()).Msg("Light turned on")
}

// TurnOff powers the light down and stores OffBrightness, bypassing the
// range check.
func (l *Light) TurnOff() {
	l.turnOff()
	l.brightnessLevel.force(OffBrightness)
	log.Info().Str("device", l.name).Int("brightness", l.Brightness()).Msg("Light turned off")
}

func (l *Light) IncreaseBrightness() {
	l.brightnessLevel.Write(l.brightnessLevel.Read() + 1)
	l.reportBrightness()
}

func (l *Light) DecreaseBrightness() {
	l.brightnessLevel.Write(l.brightnessLevel.Read() - 1)
	l.reportBrightness()
}

func (l *Light) Describe() string {
	return l.describe(l.DeviceType())
}

func (l *Light) State() DeviceState {
	return DeviceState{
		"status":     string(l.status),
		"brightness": l.Brightness(),
	}
}

func (l *Light) reportBrightness() {
	log.Info().Str("device", l.name).Int("brightness", l.Brightness()).Msg("Brightness set")
}
