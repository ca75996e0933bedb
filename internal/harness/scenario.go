package harness

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSource string

// Scenario is a named list of calendar operations.
//
// The json tags are the field names the CUE schema sees; the yaml tags are
// the field names scenario files use. They must stay identical.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps" json:"steps"`
}

// Step is one calendar operation with its inputs and optional expected output.
type Step struct {
	// Op selects the operation (see package documentation).
	Op string `yaml:"op" json:"op"`

	// Date is "YYYY-MM-DD" in the calendar the op reads.
	Date string `yaml:"date,omitempty" json:"date,omitempty"`

	// Time is "HH:MM" or "HH:MM AM|PM" (epoch_seconds).
	Time string `yaml:"time,omitempty" json:"time,omitempty"`

	// Year and Month address a Jalali month. Month is a pointer so that an
	// explicit month 0 (invalid, length 0) survives encoding for schema
	// validation instead of reading as absent.
	Year  int  `yaml:"year,omitempty" json:"year,omitempty"`
	Month *int `yaml:"month,omitempty" json:"month,omitempty"`

	// Millis is an epoch-millisecond timestamp (from_epoch). A pointer so
	// that the epoch itself is distinguishable from an absent field.
	Millis *int64 `yaml:"millis,omitempty" json:"millis,omitempty"`

	// Locale is "fa" or "en" (month_name). Defaults to "fa", like the CLI.
	Locale string `yaml:"locale,omitempty" json:"locale,omitempty"`

	// Clock is "12" or "24" (from_epoch). Defaults to "24".
	Clock string `yaml:"clock,omitempty" json:"clock,omitempty"`

	// Expect is the expected output. Empty means record only.
	Expect string `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// SchemaError reports a scenario that does not satisfy schema.cue.
type SchemaError struct {
	Message string
	Pos     token.Pos
}

func (e *SchemaError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or fails schema validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenario, nil
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "expected:" vs "expect:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// ValidateScenario unifies s with the #Scenario definition of schema.cue.
func ValidateScenario(s *Scenario) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("failed to compile scenario schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Scenario"))

	v := ctx.Encode(s)
	if err := v.Err(); err != nil {
		return formatCUEError(err)
	}

	if err := def.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// formatCUEError keeps the first CUE error, with its position when it has one.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	positions := errors.Positions(first)
	if len(positions) > 0 {
		return &SchemaError{Message: first.Error(), Pos: positions[0]}
	}
	return &SchemaError{Message: first.Error()}
}
