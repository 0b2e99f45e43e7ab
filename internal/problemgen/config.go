package problemgen

// Config controls the behavior of the PoolGenerator.
type Config struct {
	// MaxAttempts bounds how many templates are tried before the
	// fallback question is served.
	MaxAttempts int

	// Validators run in order on every generated question. A failure
	// counts as a spent attempt. The standard pool never trips the gate
	// or math-check validators, since Template.Generate already refuses
	// levels below the gate and computes answers from the same operands.
	// They guard custom pools passed to NewWithPool.
	Validators []Validator
}

// DefaultConfig returns the standard generator settings.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 20,
		Validators: []Validator{
			&StructuralValidator{},
			&GateValidator{},
			&MathCheckValidator{},
		},
	}
}
