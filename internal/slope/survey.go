package slope

// First is the vector whose count is reported on its own.
var First = New(1, 3)

// Survey returns the vectors whose counts are multiplied together.
func Survey() []Vector {
	return []Vector{
		New(1, 1),
		New(1, 3),
		New(1, 5),
		New(1, 7),
		New(2, 1),
	}
}
