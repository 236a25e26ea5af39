package crt

// SeedPerturbation - Collision Resolution Technique where attempt a re-hashes the key with seed + a
const SeedPerturbation int = 0

// QuadraticProbing - Collision Resolution Technique where attempt a is hf1 + (a*a + a)/2 in a power of 2 table
const QuadraticProbing int = 1

// LinearProbing - Collision Resolution Technique where attempt a is hf1 + a
const LinearProbing int = 2

// DoubleHashing - Collision Resolution Technique where attempt a is hf1 + a*hf2 in a prime sized table
const DoubleHashing int = 3

// Name - Returns a printable name for a collision resolution technique
func Name(technique int) string {
	switch technique {
	case SeedPerturbation:
		return "SeedPerturbation"
	case QuadraticProbing:
		return "QuadraticProbing"
	case LinearProbing:
		return "LinearProbing"
	case DoubleHashing:
		return "DoubleHashing"
	default:
		return "Unknown"
	}
}

// Parse - Returns the collision resolution technique with the given Name, ok is false if there is none
func Parse(name string) (technique int, ok bool) {
	for _, t := range []int{SeedPerturbation, QuadraticProbing, LinearProbing, DoubleHashing} {
		if Name(t) == name {
			return t, true
		}
	}

	return
}
