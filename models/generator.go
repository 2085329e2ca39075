package models

// GeneratorOptions configures password generation.
type GeneratorOptions struct {
	Length           int  `json:"length"`
	Lower            bool `json:"lower"`
	Upper            bool `json:"upper"`
	Numbers          bool `json:"numbers"`
	Symbols          bool `json:"symbols"`
	ExcludeLookAlike bool `json:"excludeLookAlike"`
}

// DefaultGeneratorOptions returns the options used when the user does not
// pick any: 16 characters from every class, look-alikes excluded.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:           16,
		Lower:            true,
		Upper:            true,
		Numbers:          true,
		Symbols:          true,
		ExcludeLookAlike: true,
	}
}
