package reader

const (
	// ReservedPathChars не допускаются в путях трассы
	ReservedPathChars = `$^*%#@!();:\<>?,&`

	fieldCount = 4

	initialBufferSize = 64 * 1024
	maxLineSize       = 1024 * 1024
)
