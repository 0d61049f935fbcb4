package device

import "github.com/rs/zerolog/log"

// Television volume and channel ranges.
const (
	MinVolume     = 0
	MaxVolume     = 100
	DefaultVolume = 2

	MinChannel     = 0
	MaxChannel     = 200
	DefaultChannel = 1
)

// Television is a smart TV with a speaker volume and a channel selector.
type Television struct {
	base
	speakerVolume *Bounded
	channelNumber *Bounded
}

// NewTelevision creates a Television at default volume and channel.
func NewTelevision(name, category string) *Television {
	return &Television{
		base:          newBase(name, category),
		speakerVolume: NewBounded(MinVolume, MaxVolume, DefaultVolume),
		channelNumber: NewBounded(MinChannel, MaxChannel, DefaultChannel),
	}
}

func (t *Television) DeviceType() string { return TypeTelevision }

// Volume returns the current speaker volume.
func (t *Television) Volume() int { return t.speakerVolume.Read() }

// Channel returns the current channel number.
func (t *Television) Channel() int { return t.channelNumber.Read() }

// TurnOn powers the TV up and reports volume and channel.
func (t *Television) TurnOn() {
	t.turnOn()
	log.Info().
		Str("device", t.name).
		Int("volume", t.Volume()).
		Int("channel", t.Channel()).
		Msg("Television turned on")
}

// TurnOff powers the TV down.
func (t *Television) TurnOff() {
	t.turnOff()
	log.Info().Str("device", t.name).Msg("Television turned off")
}

func (t *Television) IncreaseVolume() {
	t.speakerVolume.Write(t.speakerVolume.Read() + 1)
	t.reportVolume()
}

func (t *Television) DecreaseVolume() {
	t.speakerVolume.Write(t.speakerVolume.Read() - 1)
	t.reportVolume()
}

func (t *Television) NextChannel() {
	t.channelNumber.Write(t.channelNumber.Read() + 1)
	t.reportChannel()
}

func (t *Television) PreviousChannel() {
	t.channelNumber.Write(t.channelNumber.Read() - 1)
	t.reportChannel()
}

func (t *Television) Describe() string {
	return t.describe(t.DeviceType())
}

func (t *Television) State() DeviceState {
	return DeviceState{
		"status":  string(t.status),
		"volume":  t.Volume(),
		"channel": t.Channel(),
	}
}

func (t *Television) reportVolume() {
	log.Info().Str("device", t.name).Int("volume", t.Volume()).Msg("Speaker volume set")
}

func (t *Television) reportChannel() {
	log.Info().Str("device", t.name).Int("channel", t.Channel()).Msg("Channel changed")
}
