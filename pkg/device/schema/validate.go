package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/urmzd/homehub/pkg/device"
)

// Validator validates command payloads against JSON Schema documents.
// It caches compiled schemas keyed by their raw bytes.
type Validator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// NewValidator creates a new Validator with an empty cache.
func NewValidator() *Validator {
	return &Validator{
		cache: make(map[string]*jsonschema.Schema),
	}
}

// Command is a decoded, validated action command.
type Command struct {
	Action device.Action
	Repeat int
}

// ValidateCommand checks payload against the device's action schema and
// decodes it. A missing repeat defaults to 1. Failures wrap device.ErrValidation.
func (v *Validator) ValidateCommand(d *device.Device, payload map[string]any) (Command, error) {
	if err := v.Validate(d.ActionSchema, payload); err != nil {
		return Command{}, fmt.Errorf("%w: %v", device.ErrValidation, err)
	}

	action, ok := payload["action"].(string)
	if !ok {
		return Command{}, fmt.Errorf("%w: action must be a string", device.ErrValidation)
	}

	cmd := Command{Action: device.Action(action), Repeat: 1}
	switch r := payload["repeat"].(type) {
	case nil:
	case float64:
		cmd.Repeat = int(r)
	case int:
		cmd.Repeat = r
	case json.Number:
		n, err := r.Int64()
		if err != nil {
			return Command{}, fmt.Errorf("%w: repeat: %v", device.ErrValidation, err)
		}
		cmd.Repeat = int(n)
	default:
		return Command{}, fmt.Errorf("%w: invalid repeat type %T", device.ErrValidation, r)
	}

	return cmd, nil
}

// Validate validates payload against the given JSON Schema document.
// Returns nil if valid, or an error describing the validation failures.
func (v *Validator) Validate(schemaDoc json.RawMessage, payload map[string]any) error {
	if len(schemaDoc) == 0 || string(schemaDoc) == "{}" || string(schemaDoc) == "null" {
		return nil // No schema = no validation
	}

	compiled, err := v.compile(schemaDoc)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	return compiled.Validate(payload)
}

func (v *Validator) compile(schemaDoc json.RawMessage) (*jsonschema.Schema, error) {
	key := string(schemaDoc)

	v.mu.RLock()
	if s, ok := v.cache[key]; ok {
		v.mu.RUnlock()
		return s, nil
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	// Double-check after acquiring write lock
	if s, ok := v.cache[key]; ok {
		return s, nil
	}

	var schemaMap any
	if err := json.Unmarshal(schemaDoc, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("command.json", schemaMap); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}
	compiled, err := c.Compile("command.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile: %w", err)
	}

	v.cache[key] = compiled
	return compiled, nil
}
